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

// NumJumps is the number of legal jumps: 38 forward jumps plus
// their 38 reverses.
const NumJumps = 76

// Jump is a triple of cell indices. A jump applies to a position
// when its Start and Middle cells are occupied and its End cell is
// empty; applying it toggles all three.
type Jump struct {
	Start, Middle, End int
}

// Jumps holds all 76 legal jumps. Indices 0..37 are the forward
// jumps (derived from walking each cell in the "up" and "right"
// directions); indices 38..75 are their reverses, in the same
// order, so that Jumps[j+38] == Jump{Jumps[j].End, Jumps[j].Middle,
// Jumps[j].Start} for j in 0..37.
var Jumps [NumJumps]Jump

// jumpNames holds the label for each entry in Jumps, in the same
// order, of the form "<cell><direction>".
var jumpNames [NumJumps]string

type delta struct{ dRow, dCol int }

var directionDeltas = map[byte]delta{
	'u': {-1, 0},
	'd': {1, 0},
	'l': {0, -1},
	'r': {0, 1},
}

var reverseDirection = map[byte]byte{
	'u': 'd',
	'd': 'u',
	'l': 'r',
	'r': 'l',
}

// neighbor looks up the cell reached from cell by moving one step
// in the given direction. It reports (-1, false) if that location
// is off the board.
func neighbor(cell int, dir byte) (int, bool) {
	p := Cells[cell]
	d := directionDeltas[dir]
	n, ok := cellIndex[Point{p.Row + d.dRow, p.Col + d.dCol}]
	return n, ok
}

// buildJumps enumerates the 38 forward jumps in the canonical order
// (middle cell ascending, then direction "u" before "r"), then
// appends their 38 reverses.
func buildJumps() {
	var forward [38]Jump
	var forwardNames, backwardNames [38]string
	n := 0
	for middle := 0; middle < NumCells; middle++ {
		for _, dir := range [2]byte{'u', 'r'} {
			end, ok := neighbor(middle, dir)
			if !ok {
				continue
			}
			rev := reverseDirection[dir]
			start, ok := neighbor(middle, rev)
			if !ok {
				continue
			}
			forward[n] = Jump{start, middle, end}
			forwardNames[n] = Names[start] + string(dir)
			backwardNames[n] = Names[end] + string(rev)
			n++
		}
	}
	if n != 38 {
		panic(&InvariantError{"forward-jump-count", "expected exactly 38 forward jumps"})
	}
	for i, j := range forward {
		Jumps[i] = j
		Jumps[i+38] = Jump{j.End, j.Middle, j.Start}
		jumpNames[i] = forwardNames[i]
		jumpNames[i+38] = backwardNames[i]
	}
}
