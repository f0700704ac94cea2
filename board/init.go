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

// init builds the geometry tables once, in dependency order, and
// verifies they are internally consistent. A failure here means the
// board shape constants are wrong; there is no sensible way to
// proceed, so the process aborts.
func init() {
	buildCells()
	buildJumps()
	buildTransforms()
	buildLabels()
	if err := checkInvariants(); err != nil {
		panic(err)
	}
}

// checkInvariants verifies the table cardinalities and the two
// structural properties the rest of the package depends on: that
// the backward jump list is the exact reverse of the forward list,
// and that each transform's recorded reverse actually undoes it.
func checkInvariants() error {
	if len(Cells) != NumCells {
		return &InvariantError{"cell-count", "wrong number of cells"}
	}
	if len(Jumps) != NumJumps {
		return &InvariantError{"jump-count", "wrong number of jumps"}
	}
	if len(Transforms) != NumTransforms {
		return &InvariantError{"transform-count", "wrong number of transforms"}
	}
	if len(Labels) != NumLabels {
		return &InvariantError{"label-count", "wrong number of labels"}
	}
	for j := 0; j < 38; j++ {
		fwd := Jumps[j]
		back := Jumps[j+38]
		if back != (Jump{fwd.End, fwd.Middle, fwd.Start}) {
			return &InvariantError{"jump-reversal", "backward jump is not the reverse of its forward counterpart"}
		}
	}
	identity := identityPermutation()
	for t := 0; t < NumTransforms; t++ {
		rev := ReverseTransforms[t]
		if rev < 0 || rev >= NumTransforms {
			return &InvariantError{"reverse-transform-range", "reverse transform index out of range"}
		}
		combined := compose(Transforms[t], Transforms[rev])
		if combined != identity {
			return &InvariantError{"reverse-transform-inverse", "reverse transform does not undo its transform"}
		}
	}
	return nil
}
