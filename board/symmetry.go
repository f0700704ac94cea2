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

// NumTransforms is the number of symmetries of the board: four
// rotations and four reflected rotations.
const NumTransforms = 8

// Transforms holds the 8 symmetry permutations. Transforms[t][i] is
// the source cell index that supplies the peg at destination cell i
// under transform t, i.e. pegs'[i] = pegs[Transforms[t][i]].
var Transforms [NumTransforms][NumCells]int

// ReverseTransforms[t] is the transform index that undoes
// Transforms[t]: applying Transforms[t] and then
// Transforms[ReverseTransforms[t]] recovers the original pegs.
var ReverseTransforms = [NumTransforms]int{0, 3, 2, 1, 4, 5, 6, 7}

// transformNames labels each entry of Transforms, in order.
var transformNames = [NumTransforms]string{
	"R0n", "R1n", "R2n", "R3n", "R0f", "R1f", "R2f", "R3f",
}

// compose returns the permutation equivalent to first applying b,
// then applying a: compose(a, b)[k] == a[b[k]].
func compose(a, b [NumCells]int) [NumCells]int {
	var out [NumCells]int
	for k := range out {
		out[k] = a[b[k]]
	}
	return out
}

func identityPermutation() [NumCells]int {
	var out [NumCells]int
	for i := range out {
		out[i] = i
	}
	return out
}

// buildTransforms derives the 8 symmetry permutations from the
// 90-degree rotation map (r,c) -> (c, 6-r) and the horizontal flip
// map (r,c) -> (r, 6-c), both applied to a cell's own coordinates to
// find the cell that supplies its peg.
func buildTransforms() {
	r0n := identityPermutation()

	var r1n [NumCells]int
	for i, p := range Cells {
		r1n[i] = cellIndex[Point{p.Col, 6 - p.Row}]
	}
	r2n := compose(r1n, r1n)
	r3n := compose(r2n, r1n)

	var r0f [NumCells]int
	for i, p := range Cells {
		r0f[i] = cellIndex[Point{p.Row, 6 - p.Col}]
	}
	r1f := compose(r1n, r0f)
	r2f := compose(r2n, r0f)
	r3f := compose(r3n, r0f)

	Transforms = [NumTransforms][NumCells]int{r0n, r1n, r2n, r3n, r0f, r1f, r2f, r3f}
}

// Apply returns the pegs resulting from applying transform t to
// pegs: the returned value satisfies out[i] == pegs[Transforms[t][i]].
func Apply(t int, pegs [NumCells]bool) [NumCells]bool {
	var out [NumCells]bool
	tr := Transforms[t]
	for i := range out {
		out[i] = pegs[tr[i]]
	}
	return out
}
