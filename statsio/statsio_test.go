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
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pegsolitaire/treestep/ply"
)

func TestDocumentYAMLRoundTrip(t *testing.T) {
	s := ply.Stats{
		InBoards:            38,
		InBoardsChildCounts: map[int]int{1: 4, 2: 10, 10: 20, 3: 4},
		OutBoardsUnfiltered: 96,
		OutBoardsFiltered:   38,
		Runtime:             1.25,
	}
	doc := FromStats(s, 0xdeadbeef, "run-123")

	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Fingerprint != doc.Fingerprint || got.RunID != doc.RunID {
		t.Fatalf("ambient fields lost in round trip: got %+v", got)
	}
	gotStats := got.Stats()
	if gotStats.InBoards != s.InBoards || gotStats.OutBoardsFiltered != s.OutBoardsFiltered {
		t.Fatalf("stats lost in round trip: got %+v, want %+v", gotStats, s)
	}
	for k, v := range s.InBoardsChildCounts {
		if gotStats.InBoardsChildCounts[k] != v {
			t.Fatalf("child count[%d] = %d, want %d", k, gotStats.InBoardsChildCounts[k], v)
		}
	}
}

// TestChildHistogramKeysAscending checks that the rendered histogram
// keys appear in ascending numeric order, not the lexical order a
// stock map[int]int marshaler would produce (which puts "10" before
// "2").
func TestChildHistogramKeysAscending(t *testing.T) {
	h := ChildHistogram{10: 1, 2: 1, 1: 1, 3: 1}
	data, err := h.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	re := regexp.MustCompile(`"(\d+)":`)
	matches := re.FindAllStringSubmatch(string(data), -1)
	want := []string{"1", "2", "3", "10"}
	if len(matches) != len(want) {
		t.Fatalf("got %d keys, want %d: %s", len(matches), len(want), data)
	}
	for i, m := range matches {
		if m[1] != want[i] {
			t.Fatalf("key %d = %q, want %q (full: %s)", i, m[1], want[i], data)
		}
	}
}

func TestWriteReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "move_04.yaml")
	doc := FromStats(ply.Stats{InBoards: 1, InBoardsChildCounts: map[int]int{4: 1}, OutBoardsFiltered: 1}, 42, "run-abc")
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Fingerprint != 42 || got.RunID != "run-abc" {
		t.Fatalf("got %+v", got)
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	recs := [][]byte{[]byte("aaa"), []byte("bbb"), []byte("ccc")}
	f1 := NewFingerprinter()
	for _, r := range recs {
		f1.Add(r)
	}
	f2 := NewFingerprinter()
	for i := len(recs) - 1; i >= 0; i-- {
		f2.Add(recs[i])
	}
	if f1.Sum() != f2.Sum() {
		t.Fatalf("fingerprint depends on add order: %d vs %d", f1.Sum(), f2.Sum())
	}
}

func TestPath(t *testing.T) {
	got := Path("/data", 4)
	want := filepath.Join("/data", "stats", "move_04.yaml")
	if got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}
