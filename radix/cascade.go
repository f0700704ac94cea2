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

// Cascade refines the bucketing from pass+1 down to pass: it reads
// every record out of pass+1's 128 bucket files, in ascending bucket
// order, and re-routes each one into pass's fresh buckets by the byte
// at offset pass in its peg key. Once a pass+1 bucket is fully drained
// its file is removed, so Cascade never needs more than one pass's
// worth of buckets live on disk at a time plus the one being built.
//
// Callers run Cascade(factory, 3), Cascade(factory, 2), Cascade(factory, 1)
// and Cascade(factory, 0) in that order to refine pass 4 (the
// generating pass's output) down to pass 0, the input to Filter.
func Cascade(factory Factory, pass int) error {
	if pass < 0 || pass > 3 {
		return fmt.Errorf("radix: Cascade: pass %d out of range 0..3", pass)
	}
	readers, err := factory.OpenReaders(pass + 1)
	if err != nil {
		return err
	}
	writers, err := factory.NewWriters(pass)
	if err != nil {
		return err
	}
	defer closeWriters(writers)

	for bucket := 0; bucket < NumBuckets; bucket++ {
		r := readers[bucket]
		for {
			rec, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				closeReader(r)
				return err
			}
			if len(rec) < position.KeyLen {
				closeReader(r)
				return &position.CodecError{Op: "radix.Cascade", Msg: fmt.Sprintf("truncated record in pass %d bucket %d", pass+1, bucket)}
			}
			if err := RouteWrite(writers, rec, pass); err != nil {
				closeReader(r)
				return err
			}
		}
		closeReader(r)
		if err := factory.Remove(pass+1, bucket); err != nil {
			return err
		}
	}
	return nil
}
