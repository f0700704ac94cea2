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

import "fmt"

// InvariantError indicates that the geometry tables built at package
// initialization failed a self-consistency check. It is always fatal:
// the tables are wrong and no board position can be trusted.
type InvariantError struct {
	Check string
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("board: invariant %q failed: %s", e.Check, e.Msg)
}
