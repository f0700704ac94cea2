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

package ply

// Stats aggregates the counters produced by one Advance or Bootstrap
// call. Field names and the child-count histogram's shape match the
// YAML statistics sink's document layout; package statsio copies
// these fields into its Document alongside the ambient fingerprint
// and run-ID fields.
type Stats struct {
	// InBoards is the number of input positions expanded.
	InBoards int `json:"inboards" yaml:"inboards"`
	// InBoardsChildCounts maps a child count to the number of input
	// positions that produced exactly that many children.
	InBoardsChildCounts map[int]int `json:"inboards_childcounts" yaml:"inboards_childcounts"`
	// OutBoardsUnfiltered is the total number of children generated,
	// before deduplication.
	OutBoardsUnfiltered int `json:"outboards_unfil" yaml:"outboards_unfil"`
	// OutBoardsFiltered is the number of records written to the
	// output file, after deduplication.
	OutBoardsFiltered int `json:"outboards_fil" yaml:"outboards_fil"`
	// Runtime is the wall-clock duration of the call, in seconds.
	Runtime float64 `json:"runtime" yaml:"runtime"`
}

func newStats() Stats {
	return Stats{InBoardsChildCounts: make(map[int]int)}
}
