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

//go:build !windows

package rlimit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// RaiseNoFile raises the soft RLIMIT_NOFILE to at least min, capped
// at the hard limit. If the hard limit is already below min, it
// raises the soft limit to the hard limit and returns nil: a cascade
// pass may still fail later with "too many open files", but there is
// nothing more this process is allowed to do about it.
func RaiseNoFile(min uint64) error {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rl); err != nil {
		return fmt.Errorf("rlimit: getrlimit: %w", err)
	}
	if rl.Cur >= min {
		return nil
	}
	want := min
	if rl.Max < want {
		want = rl.Max
	}
	rl.Cur = want
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rl); err != nil {
		return fmt.Errorf("rlimit: setrlimit(%d): %w", want, err)
	}
	return nil
}
