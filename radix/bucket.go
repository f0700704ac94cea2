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

// NumBuckets is the fan-out of every pass: the packed peg key bytes
// produced by position.PackPegs always have their high bit set, so
// only byte values 128..255 ever occur.
const NumBuckets = 128

// Reader yields the records previously written to one bucket file, in
// the order they were written. Next returns io.EOF once the bucket is
// exhausted.
type Reader interface {
	Next() ([]byte, error)
	Close() error
}

// Writer appends one record to a bucket file.
type Writer interface {
	Write(record []byte) error
	Close() error
}

// Factory opens and retires the bucket files that back one pass of
// the cascade. Passes are numbered 4 down to 0, matching the byte
// offset within position.Key that the pass sorts on; the filter pass
// reads pass 0's output.
type Factory interface {
	// NewWriters returns NumBuckets fresh, empty writers for pass.
	// Any bucket files left over from a previous run of this pass are
	// truncated.
	NewWriters(pass int) ([NumBuckets]Writer, error)
	// OpenReaders opens the NumBuckets bucket files previously filled
	// by NewWriters(pass).
	OpenReaders(pass int) ([NumBuckets]Reader, error)
	// Remove deletes the bucket file for pass/bucket. Callers invoke
	// it once a bucket's Reader has been fully drained and closed, so
	// a cascade never needs more than two passes' worth of files on
	// disk at once.
	Remove(pass, bucket int) error
}

// BucketOf returns the bucket index (0..NumBuckets-1) that a record
// belongs to for the given pass, derived from the byte at that offset
// in the record's peg key.
func BucketOf(record []byte, pass int) int {
	return int(record[pass]) - 128
}

// RouteWrite writes record to the bucket writer selected by the byte
// at offset pass within record's peg key. The generating pass that
// turns input records into children uses this to place each encoded
// child directly into the pass-4 buckets; Cascade uses it internally
// for passes 3 down to 0.
func RouteWrite(writers [NumBuckets]Writer, record []byte, pass int) error {
	return writers[BucketOf(record, pass)].Write(record)
}

func closeWriters(writers [NumBuckets]Writer) {
	for _, w := range writers {
		w.Close()
	}
}

func closeReader(r Reader) {
	r.Close()
}
