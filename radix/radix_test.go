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
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"testing"
)

type memReader struct {
	recs [][]byte
	pos  int
}

func (r *memReader) Next() ([]byte, error) {
	if r.pos >= len(r.recs) {
		return nil, io.EOF
	}
	rec := r.recs[r.pos]
	r.pos++
	return rec, nil
}

func (r *memReader) Close() error { return nil }

type memWriter struct {
	bucket *[][]byte
}

func (w *memWriter) Write(rec []byte) error {
	cp := append([]byte(nil), rec...)
	*w.bucket = append(*w.bucket, cp)
	return nil
}

func (w *memWriter) Close() error { return nil }

type memFactory struct {
	passes map[int]*[NumBuckets][][]byte
}

func newMemFactory() *memFactory {
	return &memFactory{passes: make(map[int]*[NumBuckets][][]byte)}
}

func (f *memFactory) NewWriters(pass int) ([NumBuckets]Writer, error) {
	b := &[NumBuckets][][]byte{}
	f.passes[pass] = b
	var writers [NumBuckets]Writer
	for i := range writers {
		writers[i] = &memWriter{bucket: &b[i]}
	}
	return writers, nil
}

func (f *memFactory) OpenReaders(pass int) ([NumBuckets]Reader, error) {
	b, ok := f.passes[pass]
	if !ok {
		return [NumBuckets]Reader{}, fmt.Errorf("pass %d was never written", pass)
	}
	var readers [NumBuckets]Reader
	for i := range readers {
		readers[i] = &memReader{recs: b[i]}
	}
	return readers, nil
}

func (f *memFactory) Remove(pass, bucket int) error {
	if b, ok := f.passes[pass]; ok {
		b[bucket] = nil
	}
	return nil
}

type sliceWriter struct {
	recs [][]byte
}

func (w *sliceWriter) Write(rec []byte) error {
	w.recs = append(w.recs, append([]byte(nil), rec...))
	return nil
}

func (w *sliceWriter) Close() error { return nil }

func runCascade(t *testing.T, f *memFactory) {
	t.Helper()
	for pass := 3; pass >= 0; pass-- {
		if err := Cascade(f, pass); err != nil {
			t.Fatalf("Cascade(%d): %v", pass, err)
		}
	}
}

func randKey(rng *rand.Rand) [5]byte {
	var k [5]byte
	for i := range k {
		k[i] = byte(128 + rng.Intn(128))
	}
	return k
}

func record(key [5]byte, tag byte) []byte {
	return append(append([]byte{}, key[:]...), tag, '\n')
}

// TestCascadeSortsAscending exercises the full five-pass cascade on
// a random multiset of keys and checks the filter pass emits them in
// strictly ascending order with no duplicate keys (invariant: sorted,
// deduplicated output).
func TestCascadeSortsAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := newMemFactory()
	writers, err := f.NewWriters(4)
	if err != nil {
		t.Fatalf("NewWriters(4): %v", err)
	}

	var keys [][5]byte
	for i := 0; i < 5000; i++ {
		k := randKey(rng)
		keys = append(keys, k)
		if err := RouteWrite(writers, record(k, 0), 4); err != nil {
			t.Fatalf("RouteWrite: %v", err)
		}
	}
	closeWriters(writers)

	runCascade(t, f)

	out := &sliceWriter{}
	n, err := Filter(f, out)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	distinct := make(map[[5]byte]bool)
	for _, k := range keys {
		distinct[k] = true
	}
	if n != len(distinct) {
		t.Fatalf("Filter wrote %d records, want %d distinct keys", n, len(distinct))
	}
	if len(out.recs) != n {
		t.Fatalf("out has %d records, Filter reported %d", len(out.recs), n)
	}

	sortedKeys := make([][5]byte, 0, len(distinct))
	for k := range distinct {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Slice(sortedKeys, func(i, j int) bool {
		return bytes.Compare(sortedKeys[i][:], sortedKeys[j][:]) < 0
	})

	for i, rec := range out.recs {
		if !bytes.Equal(rec[:5], sortedKeys[i][:]) {
			t.Fatalf("record %d has key %v, want %v", i, rec[:5], sortedKeys[i])
		}
		if i > 0 && bytes.Compare(out.recs[i-1][:5], rec[:5]) >= 0 {
			t.Fatalf("output not strictly ascending at %d", i)
		}
	}
}

// TestFilterKeepsFirstOccurrence checks that when several records
// share a key, the cascade's stable ordering means the first one
// written to the pass-4 bucket survives the filter pass.
func TestFilterKeepsFirstOccurrence(t *testing.T) {
	f := newMemFactory()
	writers, err := f.NewWriters(4)
	if err != nil {
		t.Fatalf("NewWriters(4): %v", err)
	}
	key := [5]byte{128, 129, 130, 131, 132}
	if err := RouteWrite(writers, record(key, 1), 4); err != nil {
		t.Fatal(err)
	}
	if err := RouteWrite(writers, record(key, 2), 4); err != nil {
		t.Fatal(err)
	}
	if err := RouteWrite(writers, record(key, 3), 4); err != nil {
		t.Fatal(err)
	}
	closeWriters(writers)

	runCascade(t, f)

	out := &sliceWriter{}
	n, err := Filter(f, out)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if n != 1 {
		t.Fatalf("Filter wrote %d records, want 1", n)
	}
	if out.recs[0][5] != 1 {
		t.Fatalf("surviving record tag = %d, want 1 (first occurrence)", out.recs[0][5])
	}
}

// TestCascadeRemovesDrainedBuckets checks that a pass's bucket files
// are retired as they're drained, so OpenReaders on a removed pass
// sees empty buckets rather than stale data from a previous run.
func TestCascadeRemovesDrainedBuckets(t *testing.T) {
	f := newMemFactory()
	writers, err := f.NewWriters(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := RouteWrite(writers, record([5]byte{128, 128, 128, 128, 128}, 0), 4); err != nil {
		t.Fatal(err)
	}
	closeWriters(writers)

	if err := Cascade(f, 3); err != nil {
		t.Fatalf("Cascade(3): %v", err)
	}
	b := f.passes[4]
	for i, bucket := range b {
		if len(bucket) != 0 {
			t.Fatalf("pass 4 bucket %d not removed after cascade: %v", i, bucket)
		}
	}
}

func TestCascadePassOutOfRange(t *testing.T) {
	f := newMemFactory()
	if err := Cascade(f, 4); err == nil {
		t.Fatal("Cascade(4): want error, got nil")
	}
	if err := Cascade(f, -1); err == nil {
		t.Fatal("Cascade(-1): want error, got nil")
	}
}
