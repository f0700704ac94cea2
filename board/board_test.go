// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package board

import (
	"math/rand"
	"testing"
)

func TestTableSizes(t *testing.T) {
	if len(Cells) != 33 {
		t.Errorf("len(Cells) = %d, want 33", len(Cells))
	}
	if len(Jumps) != 76 {
		t.Errorf("len(Jumps) = %d, want 76", len(Jumps))
	}
	if len(Transforms) != 8 {
		t.Errorf("len(Transforms) = %d, want 8", len(Transforms))
	}
	if len(Labels) != 84 {
		t.Errorf("len(Labels) = %d, want 84", len(Labels))
	}
}

func TestJumpReversal(t *testing.T) {
	for j := 0; j < 38; j++ {
		fwd := Jumps[j]
		back := Jumps[j+38]
		want := Jump{fwd.End, fwd.Middle, fwd.Start}
		if back != want {
			t.Errorf("Jumps[%d] = %+v, want %+v", j+38, back, want)
		}
	}
}

func TestTransformInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for t2 := 0; t2 < NumTransforms; t2++ {
		var pegs [NumCells]bool
		for i := range pegs {
			pegs[i] = rng.Intn(2) == 1
		}
		got := Apply(ReverseTransforms[t2], Apply(t2, pegs))
		if got != pegs {
			t.Errorf("transform %d is not undone by its reverse %d", t2, ReverseTransforms[t2])
		}
	}
}

func TestLabelsDisjointFromRange(t *testing.T) {
	seen := make(map[string]bool, NumLabels)
	for i, l := range Labels {
		if l == "" {
			t.Errorf("Labels[%d] is empty", i)
		}
		if seen[l] {
			t.Errorf("Labels[%d] = %q is a duplicate", i, l)
		}
		seen[l] = true
	}
}
