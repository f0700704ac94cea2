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

package radix

import (
	"fmt"
	"io"

	"github.com/pegsolitaire/treestep/position"
)

// Filter reads pass 0's 128 bucket files in ascending bucket order
// and writes every record to out, except that a run of consecutive
// records sharing the same 5-byte peg key collapses to its first
// member: because the cascade is a stable sort on the full key, all
// records with a given key always end up adjacent once pass 0 is
// read in bucket order. Each pass-0 bucket file is removed once
// drained.
//
// It returns the number of records written to out.
func Filter(factory Factory, out Writer) (int, error) {
	readers, err := factory.OpenReaders(0)
	if err != nil {
		return 0, err
	}

	written := 0
	var lastKey position.Key
	haveLast := false
	for bucket := 0; bucket < NumBuckets; bucket++ {
		r := readers[bucket]
		for {
			rec, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				closeReader(r)
				return written, err
			}
			if len(rec) < position.KeyLen {
				closeReader(r)
				return written, &position.CodecError{Op: "radix.Filter", Msg: fmt.Sprintf("truncated record in pass 0 bucket %d", bucket)}
			}
			var key position.Key
			copy(key[:], rec[:position.KeyLen])
			if haveLast && key == lastKey {
				continue
			}
			if err := out.Write(rec); err != nil {
				closeReader(r)
				return written, err
			}
			lastKey = key
			haveLast = true
			written++
		}
		closeReader(r)
		if err := factory.Remove(0, bucket); err != nil {
			return written, err
		}
	}
	return written, nil
}
