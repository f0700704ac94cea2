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
	"fmt"
	"io"
	"time"

	"github.com/pegsolitaire/treestep/position"
	"github.com/pegsolitaire/treestep/radix"
)

// Advance reads every record from in, un-canonicalizes it, expands
// its legal single-jump children, canonicalizes each child, and
// routes the result through factory's five-pass radix cascade and
// dedup filter, writing the surviving records to out in ascending
// peg-key order. It implements the Init -> Generating ->
// Cascading(3..0) -> Filtering state machine in one call: on any
// error it returns immediately, leaving whatever bucket files and
// partial output already exist on disk for inspection.
//
// If progress is non-nil, it is called once per state-machine
// transition with a short state name ("generating", "cascading-3",
// ..., "cascading-0", "filtering", "done"); callers use it to drive a
// progress log. progress may be nil.
func Advance(in radix.Reader, factory radix.Factory, out radix.Writer, progress func(state string)) (Stats, error) {
	if progress == nil {
		progress = func(string) {}
	}
	start := time.Now()
	stats := newStats()

	writers, err := factory.NewWriters(4)
	if err != nil {
		return stats, err
	}
	progress("generating")

	for {
		rec, err := in.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}

		p, err := position.Decode(rec)
		if err != nil {
			return stats, err
		}
		p, err = position.Uncanonicalize(p)
		if err != nil {
			return stats, err
		}

		children := position.Children(p)
		stats.InBoards++
		stats.InBoardsChildCounts[len(children)]++

		for _, child := range children {
			c := position.Canonicalize(child)
			b, err := position.Encode(c)
			if err != nil {
				return stats, err
			}
			if err := radix.RouteWrite(writers, b, 4); err != nil {
				return stats, err
			}
			stats.OutBoardsUnfiltered++
		}
	}
	for _, w := range writers {
		if err := w.Close(); err != nil {
			return stats, err
		}
	}

	for pass := 3; pass >= 0; pass-- {
		progress(fmt.Sprintf("cascading-%d", pass))
		if err := radix.Cascade(factory, pass); err != nil {
			return stats, err
		}
	}

	progress("filtering")
	n, err := radix.Filter(factory, out)
	if err != nil {
		return stats, err
	}
	stats.OutBoardsFiltered = n
	stats.Runtime = time.Since(start).Seconds()
	progress("done")
	return stats, nil
}
