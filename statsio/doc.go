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
Package statsio renders a ply's statistics to the stats/move_<NN>.yaml
sidecar. It wraps a ply.Stats with two ambient fields that never
affect dedup correctness: a siphash-based fingerprint of the output
records (a cheap smoke test that two runs over the same input
produced the same multiset) and a run ID correlating the document
with one invocation of the command-line driver.
*/
package statsio
