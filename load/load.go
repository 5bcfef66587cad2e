/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides the high-level API for loading vocabulary tables
// from files.
package load

import (
	"errors"
	"fmt"

	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/lexer"
	"bennypowers.dev/milon/parser"
	"bennypowers.dev/milon/table"
)

// ErrDuplicateTable indicates two files declared the same table name.
// Tables are never merged; each file must produce a distinct table.
var ErrDuplicateTable = errors.New("duplicate table name")

// Load reads, tokenizes, and parses one vocabulary file. It returns a
// complete committed table or the first error encountered; no partial
// table is ever returned.
func Load(filesystem fs.FileSystem, path string, opts parser.Options) (*table.Table, error) {
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return parser.Parse(path, lexer.Tokenize(data), opts)
}

// LoadAll loads several vocabulary files and returns the tables keyed by
// table name. Each file is an independent load; a table name declared by
// more than one file is an error.
func LoadAll(filesystem fs.FileSystem, paths []string, opts parser.Options) (map[string]*table.Table, error) {
	tables := make(map[string]*table.Table, len(paths))
	for _, path := range paths {
		t, err := Load(filesystem, path, opts)
		if err != nil {
			return nil, err
		}
		if _, exists := tables[t.Name]; exists {
			return nil, fmt.Errorf("%w: %q declared again in %s", ErrDuplicateTable, t.Name, path)
		}
		tables[t.Name] = t
	}
	return tables, nil
}
