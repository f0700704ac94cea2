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
Package ply orchestrates one forward step of the exploration: it
reads a file of canonical positions reachable in exactly k moves,
un-canonicalizes each, expands its legal single-jump children,
canonicalizes them, hands them to package radix for the bucketed
sort and dedup pass, and aggregates the resulting statistics.

It also implements Bootstrap, the one-off operation that seeds the
very first file from the standard starting position.

Neither operation is concurrent: a ply is one sequential pass over
its input followed by one sequential radix cascade, matching the
single-threaded, synchronous execution model the rest of this module
assumes.
*/
package ply
