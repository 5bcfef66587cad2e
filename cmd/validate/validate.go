/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for milon.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/load"
	"bennypowers.dev/milon/parser"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate vocabulary table files",
	Long:  `Validate vocabulary table files: parse each file and check every declared type constraint.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	root, _ := cmd.Flags().GetString("config-root")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, root)

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandTables(filesystem, root)
		if err != nil {
			return fmt.Errorf("error expanding config tables: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no tables found in config")
	}

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		t, err := load.Load(filesystem, file, parser.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Printf("  table %q: %d entries, %d subtypes\n", t.Name, t.Len(), t.SubtypeCount())
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	return nil
}
