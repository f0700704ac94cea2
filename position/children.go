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

// applies reports whether jump j is legal against pegs: its start
// and middle cells must be occupied and its end cell empty.
func applies(pegs [board.NumCells]bool, j board.Jump) bool {
	return pegs[j.Start] && pegs[j.Middle] && !pegs[j.End]
}

// apply returns the pegs resulting from performing jump j against
// pegs. It does not check that j is legal; callers must use applies
// first.
func apply(pegs [board.NumCells]bool, j board.Jump) [board.NumCells]bool {
	out := pegs
	out[j.Start] = !out[j.Start]
	out[j.Middle] = !out[j.Middle]
	out[j.End] = !out[j.End]
	return out
}

// Children returns every legal single-jump child of p, in ascending
// jump-index order. Both the 38 forward jumps and their 38 reverses
// are considered, so the child relation is the undirected
// reachability graph, not a directed solution tree: a "child" here
// may, in game terms, remove a peg or restore one.
//
// p is never mutated, and each returned child owns an independent
// history slice.
func Children(p Position) []Position {
	children := make([]Position, 0, board.NumJumps)
	for j, jump := range board.Jumps {
		if !applies(p.Pegs, jump) {
			continue
		}
		children = append(children, Position{
			Pegs:    apply(p.Pegs, jump),
			History: appendHistory(p.History, j),
		})
	}
	return children
}
