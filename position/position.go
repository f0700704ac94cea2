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

import "github.com/pegsolitaire/treestep/board"

// Position is a board position together with the history of events
// (jumps and transforms) that produced it.
//
// Pegs is a fixed-size array so that copying a Position copies its
// pegs by value; History is append-only and must never be shared
// between two Positions that will be extended independently (use
// appendHistory, not append, when deriving a child).
type Position struct {
	Pegs    [board.NumCells]bool
	History []int
}

// Start returns the canonical standard starting position: every
// cell occupied except the center.
func Start() Position {
	var pegs [board.NumCells]bool
	for i := range pegs {
		pegs[i] = true
	}
	pegs[centerCell] = false
	return Canonicalize(Position{Pegs: pegs})
}

// centerCell is the cell index of the middle hole of the cross.
// The reading-order enumeration in board.Cells places it at index
// 16 (row 3, column 3, the exact center of the 7x7 grid).
const centerCell = 16

// appendHistory returns a new history slice equal to h with event
// appended, without aliasing h's backing array. Plain append is not
// safe here: several children are derived from the same parent
// History, and if their appends reused spare capacity they would
// silently overwrite one another's trailing event.
func appendHistory(h []int, event int) []int {
	out := make([]int, len(h)+1)
	copy(out, h)
	out[len(h)] = event
	return out
}

// PegCount returns the number of occupied cells.
func (p Position) PegCount() int {
	n := 0
	for _, v := range p.Pegs {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether p and q have identical pegs and history.
func (p Position) Equal(q Position) bool {
	if p.Pegs != q.Pegs {
		return false
	}
	if len(p.History) != len(q.History) {
		return false
	}
	for i := range p.History {
		if p.History[i] != q.History[i] {
			return false
		}
	}
	return true
}
