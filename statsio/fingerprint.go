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

import "github.com/dchest/siphash"

// fingerprintK0 and fingerprintK1 are fixed, public siphash keys.
// The fingerprint is a diagnostic smoke test ("did this run produce
// the same multiset of records as last time"), never a security
// boundary, so there is no reason to randomize or protect them.
const (
	fingerprintK0 = 0x646f6e277420
	fingerprintK1 = 0x74727573746b65
)

// Fingerprinter accumulates a per-ply fingerprint over a stream of
// output records. It combines per-record hashes with XOR, so the
// result is independent of the order records are added in: the
// dedup filter's output is a canonically ordered file, but the
// fingerprint intentionally doesn't depend on that order, only on
// the multiset of records, since ordering is a radix-sort accident
// the fingerprint should not be sensitive to.
type Fingerprinter struct {
	acc uint64
}

// NewFingerprinter returns an empty accumulator.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Add folds record into the running fingerprint.
func (f *Fingerprinter) Add(record []byte) {
	f.acc ^= siphash.Hash(fingerprintK0, fingerprintK1, record)
}

// Sum returns the current fingerprint value.
func (f *Fingerprinter) Sum() uint64 {
	return f.acc
}
