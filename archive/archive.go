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

// Package archive compresses a completed ply file for long-term
// storage and guards it with a whole-file integrity digest, so a
// finished data/move_<NN>.boards can be shelved as
// data/move_<NN>.boards.zst without losing the ability to detect
// silent corruption on a later read.
package archive

import (
	"runtime"

	"github.com/klauspost/compress/zstd"
)

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	e, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(err)
	}
	encoder = e
	// decoding a ply file we just wrote should use every core available;
	// there is no concurrent decode traffic to share it with.
	d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	decoder = d
}

// Compress appends the zstd-compressed contents of src to dst and
// returns the result.
func Compress(src, dst []byte) []byte {
	return encoder.EncodeAll(src, dst)
}

// Decompress appends the decompressed contents of src to dst and
// returns the result.
func Decompress(src, dst []byte) ([]byte, error) {
	return decoder.DecodeAll(src, dst)
}
