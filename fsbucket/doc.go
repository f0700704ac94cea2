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

/*
Package fsbucket is the on-disk implementation of radix.Factory: it
materializes each pass's 128 buckets as files named
tmp/byte_<pass>_<k>.boards (k zero-padded, 128..255), buffered with a
fixed per-file I/O buffer sized so two full banks of 128 files fit a
bounded memory budget during a cascade pass.

It also provides the plain sequential record Reader/Writer the ply
driver uses for data/move_<NN>.boards, built on the same buffered
line-reader underneath, plus an in-memory Reader over a byte slice
already loaded whole (for a ply input file the driver has just
verified against its digest sidecar).
*/
package fsbucket
