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

package statsio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/pegsolitaire/treestep/ply"
)

// ChildHistogram is ply.Stats.InBoardsChildCounts with a MarshalJSON
// that renders its keys in ascending numeric order. The stock
// encoding/json map marshaler sorts map[int]int keys as strings,
// which puts "10" before "2"; the statistics sink requires ascending
// numeric order instead.
type ChildHistogram map[int]int

func (h ChildHistogram) MarshalJSON() ([]byte, error) {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%d", strconv.Itoa(k), h[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (h *ChildHistogram) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ChildHistogram, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("statsio: child histogram key %q is not an integer", k)
		}
		out[n] = v
	}
	*h = out
	return nil
}

// Document is the full shape of a stats/move_<NN>.yaml file: the
// CORE's per-ply statistics plus the ambient fingerprint and run ID
// that never feed back into dedup correctness.
type Document struct {
	InBoards            int            `json:"inboards" yaml:"inboards"`
	InBoardsChildCounts ChildHistogram `json:"inboards_childcounts" yaml:"inboards_childcounts"`
	OutBoardsUnfiltered int            `json:"outboards_unfil" yaml:"outboards_unfil"`
	OutBoardsFiltered   int            `json:"outboards_fil" yaml:"outboards_fil"`
	Runtime             float64        `json:"runtime" yaml:"runtime"`
	Fingerprint         uint64         `json:"fingerprint" yaml:"fingerprint"`
	RunID               string         `json:"run_id" yaml:"run_id"`
}

// FromStats builds a Document from a ply's statistics plus the two
// ambient values computed around it.
func FromStats(s ply.Stats, fingerprint uint64, runID string) Document {
	h := make(ChildHistogram, len(s.InBoardsChildCounts))
	for k, v := range s.InBoardsChildCounts {
		h[k] = v
	}
	return Document{
		InBoards:            s.InBoards,
		InBoardsChildCounts: h,
		OutBoardsUnfiltered: s.OutBoardsUnfiltered,
		OutBoardsFiltered:   s.OutBoardsFiltered,
		Runtime:             s.Runtime,
		Fingerprint:         fingerprint,
		RunID:               runID,
	}
}

// Stats rebuilds a ply.Stats from d's statistics fields, discarding
// the ambient fields.
func (d Document) Stats() ply.Stats {
	h := make(map[int]int, len(d.InBoardsChildCounts))
	for k, v := range d.InBoardsChildCounts {
		h[k] = v
	}
	return ply.Stats{
		InBoards:            d.InBoards,
		InBoardsChildCounts: h,
		OutBoardsUnfiltered: d.OutBoardsUnfiltered,
		OutBoardsFiltered:   d.OutBoardsFiltered,
		Runtime:             d.Runtime,
	}
}
