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

package board

// NumLabels is the size of the event-code label table: 76 jumps
// plus 8 transforms.
const NumLabels = NumJumps + NumTransforms

// Labels translates an event code (0..75 a jump index, 76..83 a
// transform index) to its human-readable name.
var Labels [NumLabels]string

func buildLabels() {
	copy(Labels[:NumJumps], jumpNames[:])
	copy(Labels[NumJumps:], transformNames[:])
}
