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

package archive

import (
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"
)

// DigestLen is the length in bytes of a Digest.
const DigestLen = 32

// Digest is a whole-file BLAKE2b-256 integrity digest.
type Digest [DigestLen]byte

// Sum computes the digest of data.
func Sum(data []byte) Digest {
	return Digest(blake2b.Sum256(data))
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MismatchError is returned by Verify when a sidecar digest does not
// match the file it accompanies. Callers treat it as an I/O-class
// failure: the bytes on disk cannot be trusted.
type MismatchError struct {
	Path string
	Want Digest
	Got  Digest
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("archive: %s: digest mismatch: sidecar says %s, computed %s", e.Path, e.Want, e.Got)
}

// WriteSidecar writes data's digest, hex-encoded with a trailing
// newline, to path+".digest".
func WriteSidecar(path string, data []byte) error {
	sum := Sum(data)
	return os.WriteFile(path+".digest", []byte(sum.String()+"\n"), 0o644)
}

// Verify reads the sidecar digest for path and compares it against
// data's computed digest, returning a *MismatchError if they differ.
func Verify(path string, data []byte) error {
	raw, err := os.ReadFile(path + ".digest")
	if err != nil {
		return err
	}
	var want Digest
	n, err := hex.Decode(want[:], trimNewline(raw))
	if err != nil || n != DigestLen {
		return fmt.Errorf("archive: %s: malformed sidecar digest", path)
	}
	got := Sum(data)
	if want != got {
		return &MismatchError{Path: path, Want: want, Got: got}
	}
	return nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
