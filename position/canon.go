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
	"fmt"

	"github.com/pegsolitaire/treestep/board"
)

// StateError is returned by Uncanonicalize when the position it is
// given does not end in a transform event.
type StateError struct {
	Op  string
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("position state: %s: %s", e.Op, e.Msg)
}

// Canonicalize returns the symmetry image of p with the
// lexicographically smallest packed peg key, with one transform
// event (76 + the chosen transform index) appended to its history.
// Ties occur when a position has a non-trivial symmetry: distinct
// transforms then produce identical peg keys. The lowest such
// transform index is chosen, which is what this loop does by only
// replacing the best candidate on a strictly smaller key.
func Canonicalize(p Position) Position {
	bestPegs := p.Pegs
	bestKey := PackPegs(p.Pegs)
	bestT := 0
	for t := 1; t < board.NumTransforms; t++ {
		pegs := board.Apply(t, p.Pegs)
		key := PackPegs(pegs)
		if bytes.Compare(key[:], bestKey[:]) < 0 {
			bestPegs = pegs
			bestKey = key
			bestT = t
		}
	}
	return Position{
		Pegs:    bestPegs,
		History: appendHistory(p.History, board.NumJumps+bestT),
	}
}

// Uncanonicalize reverses the transform recorded by the most recent
// call to Canonicalize, returning a new position with that trailing
// history event popped and its pegs transformed back. It returns a
// StateError if p's history is empty or its last event is a jump
// rather than a transform.
func Uncanonicalize(p Position) (Position, error) {
	if len(p.History) == 0 {
		return Position{}, &StateError{"uncanonicalize", "history is empty"}
	}
	last := p.History[len(p.History)-1]
	if last < board.NumJumps {
		return Position{}, &StateError{"uncanonicalize", "trailing history event is a jump, not a transform"}
	}
	tFwd := last - board.NumJumps
	rev := board.ReverseTransforms[tFwd]
	pegs := board.Apply(rev, p.Pegs)
	history := make([]int, len(p.History)-1)
	copy(history, p.History[:len(p.History)-1])
	return Position{Pegs: pegs, History: history}, nil
}
