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

// Package logstream opens the append-only, timestamped progress log
// for one invocation of the command-line driver: logs/bootstrap.txt
// for the bootstrap operation, logs/from_<NN>.txt for a ply advance
// starting at move NN.
package logstream

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Open creates (or appends to) the log file at path and returns a
// *log.Logger writing to it with a date and time prefix. Callers must
// Close the returned file once logging is done.
func Open(path string) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logstream: mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logstream: open %s: %w", path, err)
	}
	return log.New(f, "", log.Ldate|log.Ltime), f, nil
}

// BootstrapPath returns the log path for the bootstrap operation.
func BootstrapPath(root string) string {
	return filepath.Join(root, "logs", "bootstrap.txt")
}

// FromPath returns the log path for a ply advance starting at move n.
func FromPath(root string, n int) string {
	return filepath.Join(root, "logs", fmt.Sprintf("from_%02d.txt", n))
}
