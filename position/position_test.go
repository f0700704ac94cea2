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

package position

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pegsolitaire/treestep/board"
)

func randomPosition(rng *rand.Rand) Position {
	var pegs [board.NumCells]bool
	n := rng.Intn(board.NumCells + 1)
	for i := 0; i < n; i++ {
		pegs[rng.Intn(board.NumCells)] = true
	}
	h := make([]int, rng.Intn(21))
	for i := range h {
		h[i] = rng.Intn(board.NumLabels)
	}
	return Position{Pegs: pegs, History: h}
}

func TestCodecRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		p := randomPosition(rng)
		enc, err := Encode(p)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !got.Equal(p) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode([]byte{0x80, 0x80})
	if _, ok := err.(*CodecError); !ok {
		t.Fatalf("Decode of truncated record: got %v, want *CodecError", err)
	}
}

func TestDecodeRejectsUntaggedPegByte(t *testing.T) {
	rec := []byte{0x80, 0x80, 0x80, 0x80, 0x7f, '\n'}
	_, err := Decode(rec)
	if _, ok := err.(*CodecError); !ok {
		t.Fatalf("Decode of record with untagged peg byte: got %v, want *CodecError", err)
	}
}

func TestEncodeHistoryOutOfRange(t *testing.T) {
	p := Position{History: []int{84}}
	_, err := Encode(p)
	if _, ok := err.(*CodecError); !ok {
		t.Fatalf("Encode with bad event: got %v, want *CodecError", err)
	}
}

func TestCanonicalizeIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		var pegs [board.NumCells]bool
		for c := range pegs {
			pegs[c] = rng.Intn(2) == 1
		}
		c := Canonicalize(Position{Pegs: pegs})
		cKey := PackPegs(c.Pegs)
		for tr := 0; tr < board.NumTransforms; tr++ {
			k := PackPegs(board.Apply(tr, pegs))
			if bytes.Compare(cKey[:], k[:]) > 0 {
				t.Fatalf("canonical key %v is not <= transform %d's key %v", cKey, tr, k)
			}
		}
	}
}

func TestUncanonicalizeUndoesCanonicalize(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 2000; i++ {
		var pegs [board.NumCells]bool
		for c := range pegs {
			pegs[c] = rng.Intn(2) == 1
		}
		p := Position{Pegs: pegs}
		c := Canonicalize(p)
		back, err := Uncanonicalize(c)
		if err != nil {
			t.Fatalf("Uncanonicalize: %v", err)
		}
		if back.Pegs != p.Pegs {
			t.Fatalf("uncanonicalize(canonicalize(p)).Pegs != p.Pegs")
		}
		if len(back.History) != len(p.History) {
			t.Fatalf("history length changed: got %d, want %d", len(back.History), len(p.History))
		}
	}
}

func TestUncanonicalizeRejectsJumpTrailer(t *testing.T) {
	_, err := Uncanonicalize(Position{History: []int{3}})
	if _, ok := err.(*StateError); !ok {
		t.Fatalf("got %v, want *StateError", err)
	}
}

func TestUncanonicalizeRejectsEmptyHistory(t *testing.T) {
	_, err := Uncanonicalize(Position{})
	if _, ok := err.(*StateError); !ok {
		t.Fatalf("got %v, want *StateError", err)
	}
}

func TestChildrenNoAliasing(t *testing.T) {
	p := Start()
	kids := Children(p)
	if len(kids) != 4 {
		t.Fatalf("start position has %d children, want 4", len(kids))
	}
	for i := range kids {
		for j := range kids {
			if i == j {
				continue
			}
			if &kids[i].History[0] == &kids[j].History[0] {
				t.Fatalf("children %d and %d alias the same history backing array", i, j)
			}
		}
	}
}

func TestStartPosition(t *testing.T) {
	s := Start()
	for i := 0; i < board.NumCells; i++ {
		want := i != 16
		if s.Pegs[i] != want {
			t.Errorf("start pegs[%d] = %v, want %v", i, s.Pegs[i], want)
		}
	}
	if len(s.History) != 1 || s.History[0] != board.NumJumps {
		t.Errorf("start history = %v, want [%d]", s.History, board.NumJumps)
	}
}
