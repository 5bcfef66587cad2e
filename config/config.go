/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for milon.
package config

// Config is the milon configuration.
type Config struct {
	// Tables lists vocabulary files to load. Entries may be doublestar
	// glob patterns.
	Tables []string `yaml:"tables" json:"tables"`

	// Hidden lists extra classes hidden at query time, in addition to
	// each table's own hidden set.
	Hidden []string `yaml:"hidden" json:"hidden"`

	// Lang is the BCP 47 language tag used for collated output sorting.
	Lang string `yaml:"lang" json:"lang"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Tables: nil,
		Hidden: nil,
		Lang:   "en",
	}
}
