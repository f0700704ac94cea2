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
Package radix implements the external five-pass LSD radix sort and
dedup filter that a ply advance uses to sort and deduplicate a
multiset of encoded records too large to hold in memory, keyed by
the first 5 bytes of each record (see package position).

It knows nothing about board positions: it routes opaque byte
records between 128-way bucket files by inspecting one byte of the
record per pass, and, in the final filter pass, drops every record
but the first seen for a given 5-byte key. The generating pass that
turns each input record into its children belongs to package ply;
this package only provides RouteWrite for it to place each encoded
child into the pass-4 buckets.

Callers supply a Factory that opens and removes the numbered bucket
files; package fsbucket provides the on-disk implementation the
command-line driver uses.
*/
package radix
