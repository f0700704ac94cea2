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

package position

import (
	"fmt"

	"github.com/pegsolitaire/treestep/board"
)

// KeyLen is the length in bytes of the packed peg key: the first
// KeyLen bytes of every encoded record.
const KeyLen = 5

// Key is the packed 5-byte peg key used for canonicalization
// comparisons and as the radix sort's sort key.
type Key [KeyLen]byte

// CodecError is returned by Decode when a record is malformed, or
// by Encode when a history event code cannot be represented.
type CodecError struct {
	Op  string
	Msg string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("position codec: %s: %s", e.Op, e.Msg)
}

// PackPegs computes the 5-byte peg key for pegs, without touching
// history. Cell p sets bit (6 - p%7) of byte p/7; every byte is
// OR'd with 0x80 so it is always >= 128.
func PackPegs(pegs [board.NumCells]bool) Key {
	var k Key
	for p := 0; p < board.NumCells; p++ {
		if pegs[p] {
			k[p/7] |= 1 << uint(6-p%7)
		}
	}
	for i := range k {
		k[i] |= 0x80
	}
	return k
}

// UnpackPegs is the inverse of PackPegs.
func UnpackPegs(k Key) [board.NumCells]bool {
	var pegs [board.NumCells]bool
	for p := 0; p < board.NumCells; p++ {
		if k[p/7]&(1<<uint(6-p%7)) != 0 {
			pegs[p] = true
		}
	}
	return pegs
}

// Encode renders p as a record: the 5-byte peg key, one byte per
// history event (33+code), and a trailing newline. It returns a
// CodecError if any history event is out of the representable range
// 0..83.
func Encode(p Position) ([]byte, error) {
	out := make([]byte, 0, KeyLen+len(p.History)+1)
	key := PackPegs(p.Pegs)
	out = append(out, key[:]...)
	for _, event := range p.History {
		if event < 0 || event >= board.NumLabels {
			return nil, &CodecError{"encode", fmt.Sprintf("history event %d out of range 0..%d", event, board.NumLabels-1)}
		}
		out = append(out, byte(33+event))
	}
	out = append(out, '\n')
	return out, nil
}

// Decode parses a record previously produced by Encode (with or
// without its trailing newline). It tolerates and skips any trailing
// whitespace byte (<= 32) in the history tail, so stray carriage
// returns do not corrupt the parse. It returns a CodecError if fewer
// than KeyLen peg bytes are present, or if any of those KeyLen bytes
// does not carry the 0x80 tag every peg byte is OR'd with (a sign
// that the record is misaligned or corrupted rather than merely
// containing an all-empty row).
func Decode(record []byte) (Position, error) {
	if len(record) < KeyLen {
		return Position{}, &CodecError{"decode", fmt.Sprintf("truncated record: got %d bytes, need at least %d", len(record), KeyLen)}
	}
	for i := 0; i < KeyLen; i++ {
		if record[i] < 0x80 {
			return Position{}, &CodecError{"decode", fmt.Sprintf("peg byte %d out of range: %#02x has no 0x80 tag", i, record[i])}
		}
	}
	var key Key
	copy(key[:], record[:KeyLen])
	pegs := UnpackPegs(key)
	tail := record[KeyLen:]
	history := make([]int, 0, len(tail))
	for _, b := range tail {
		if b <= 32 {
			continue
		}
		history = append(history, int(b)-33)
	}
	return Position{Pegs: pegs, History: history}, nil
}
