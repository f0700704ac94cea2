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

import (
	"time"

	"github.com/pegsolitaire/treestep/position"
	"github.com/pegsolitaire/treestep/radix"
)

// Bootstrap writes the single canonicalized starting position to out.
// It is not a ply advance: there is no input file and no radix
// cascade, just the one record that seeds the very first file.
func Bootstrap(out radix.Writer) (Stats, error) {
	start := time.Now()
	stats := newStats()

	rec, err := position.Encode(position.Start())
	if err != nil {
		return stats, err
	}
	if err := out.Write(rec); err != nil {
		return stats, err
	}

	stats.OutBoardsUnfiltered = 1
	stats.OutBoardsFiltered = 1
	stats.Runtime = time.Since(start).Seconds()
	return stats, nil
}
