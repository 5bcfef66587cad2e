/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	milonfs "bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "milon"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/milon.{yaml,yml,json} from rootDir. JSON config
// may contain comments. Returns nil if no config found (not an error).
func Load(filesystem milonfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found. A config file that
// exists but fails to parse is reported as a warning and replaced with
// defaults.
func LoadOrDefault(filesystem milonfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring unreadable config in %s: %v", rootDir, err)
		return Default()
	}
	if cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandTables expands glob patterns in Tables and returns matching paths
// relative to rootDir. Non-glob paths pass through unchanged.
func (c *Config) ExpandTables(filesystem milonfs.FileSystem, rootDir string) ([]string, error) {
	var result []string

	for _, pattern := range c.Tables {
		if !isGlobPattern(pattern) {
			result = append(result, filepath.Join(rootDir, pattern))
			continue
		}

		matches, err := doublestar.Glob(fsysAt(filesystem, rootDir), pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			result = append(result, filepath.Join(rootDir, match))
		}
	}

	return result, nil
}

func isGlobPattern(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// fsysAt adapts the filesystem abstraction to an fs.FS rooted at dir for
// doublestar matching.
func fsysAt(filesystem milonfs.FileSystem, dir string) fs.FS {
	return &rootedFS{filesystem: filesystem, dir: dir}
}

type rootedFS struct {
	filesystem milonfs.FileSystem
	dir        string
}

func (r *rootedFS) Open(name string) (fs.File, error) {
	return r.filesystem.Open(filepath.Join(r.dir, name))
}

func (r *rootedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return r.filesystem.ReadDir(filepath.Join(r.dir, name))
}
