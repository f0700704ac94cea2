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

package fsbucket

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pegsolitaire/treestep/radix"
)

// Factory is the on-disk radix.Factory: bucket files live under
// root/tmp, named byte_<pass>_<k>.boards with k zero-padded to 3
// digits (128..255).
type Factory struct {
	Root    string
	BufSize int
}

// New returns a Factory rooted at root. bufSize <= 0 uses
// DefaultBufSize.
func New(root string, bufSize int) *Factory {
	return &Factory{Root: root, BufSize: bufSizeOrDefault(bufSize)}
}

func (f *Factory) path(pass, bucket int) string {
	return filepath.Join(f.Root, "tmp", fmt.Sprintf("byte_%d_%03d.boards", pass, 128+bucket))
}

func (f *Factory) NewWriters(pass int) ([radix.NumBuckets]radix.Writer, error) {
	var out [radix.NumBuckets]radix.Writer
	if err := os.MkdirAll(filepath.Join(f.Root, "tmp"), 0o755); err != nil {
		return out, fmt.Errorf("fsbucket: mkdir: %w", err)
	}
	for i := 0; i < radix.NumBuckets; i++ {
		w, err := CreateWriter(f.path(pass, i), f.BufSize)
		if err != nil {
			for j := 0; j < i; j++ {
				out[j].Close()
			}
			return [radix.NumBuckets]radix.Writer{}, fmt.Errorf("fsbucket: create %s: %w", f.path(pass, i), err)
		}
		out[i] = w
	}
	return out, nil
}

func (f *Factory) OpenReaders(pass int) ([radix.NumBuckets]radix.Reader, error) {
	var out [radix.NumBuckets]radix.Reader
	for i := 0; i < radix.NumBuckets; i++ {
		r, err := OpenReader(f.path(pass, i), f.BufSize)
		if err != nil {
			if os.IsNotExist(err) {
				out[i] = emptyReader
				continue
			}
			for j := 0; j < i; j++ {
				out[j].Close()
			}
			return [radix.NumBuckets]radix.Reader{}, fmt.Errorf("fsbucket: open %s: %w", f.path(pass, i), err)
		}
		out[i] = r
	}
	return out, nil
}

func (f *Factory) Remove(pass, bucket int) error {
	err := os.Remove(f.path(pass, bucket))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
