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

/*
Package board holds the compile-time-constant geometry of the
33-hole English peg solitaire cross: the cell layout, the legal
jumps, and the symmetry group of the board.

Cells

Cells are numbered 0..32 in reading order over the playable cross:
rows 0, 1, 5 and 6 have only columns 2..4 playable, rows 2..4 have
all seven columns playable.

Jumps

Jumps are numbered 0..75. The first 38 are derived by walking every
cell as the middle of a jump in the "up" and "right" directions; the
remaining 38 are their reverses. A jump applies to a board position
when its start and middle cells are occupied and its end cell is
empty; applying it toggles all three.

Symmetries

The board has eight symmetries: the four multiples of a 90-degree
rotation, and those four composed with a horizontal flip. Transforms
are stored so that Transforms[t][i] gives the source cell that
supplies the peg at destination cell i, matching the convention
pegs'[i] = pegs[Transforms[t][i]].
*/
package board
