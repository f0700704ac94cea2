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

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Marshal renders d as YAML.
func Marshal(d Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// Unmarshal parses a stats/move_<NN>.yaml document.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, err
	}
	return d, nil
}

// WriteFile renders d as YAML and writes it to path, via a temporary
// file in the same directory followed by a rename, so a reader never
// observes a partially written stats document.
func WriteFile(path string, d Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("statsio: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("statsio: rename %s to %s: %w", tmp, path, err)
	}
	return nil
}

// ReadFile loads and parses a stats/move_<NN>.yaml document.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Unmarshal(data)
}

// Path returns the stats file path for ply number n, e.g.
// stats/move_04.yaml.
func Path(root string, n int) string {
	return filepath.Join(root, "stats", fmt.Sprintf("move_%02d.yaml", n))
}
