/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pick provides the pick command for milon.
package pick

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/diff"
	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/load"
	"bennypowers.dev/milon/parser"
	"bennypowers.dev/milon/table"
)

// Cmd is the pick cobra command.
var Cmd = &cobra.Command{
	Use:   "pick <table> [files...]",
	Short: "Pick random words from a vocabulary table",
	Long:  `Pick words from a loaded vocabulary table by weighted random selection, honoring hidden classes.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().IntP("count", "n", 1, "Number of words to pick")
	Cmd.Flags().Int64("seed", 0, "Random seed (0 means time-based)")
	Cmd.Flags().String("subtype", "", "Subtype slot to print (default first)")
	Cmd.Flags().StringSlice("class", nil, "Classes a picked entry must carry")
	Cmd.Flags().Bool("allow-hidden", false, "Allow entries carrying hidden classes")

	// Flags may also come from MILON_COUNT / MILON_SEED.
	viper.SetEnvPrefix("MILON")
	_ = viper.BindEnv("count")
	_ = viper.BindEnv("seed")
	_ = viper.BindPFlag("count", Cmd.Flags().Lookup("count"))
	_ = viper.BindPFlag("seed", Cmd.Flags().Lookup("seed"))
}

func run(cmd *cobra.Command, args []string) error {
	tableName := args[0]
	files := args[1:]

	subtype, _ := cmd.Flags().GetString("subtype")
	classes, _ := cmd.Flags().GetStringSlice("class")
	allowHidden, _ := cmd.Flags().GetBool("allow-hidden")
	root, _ := cmd.Flags().GetString("config-root")

	count := viper.GetInt("count")
	seed := viper.GetInt64("seed")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, root)

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

	tables, err := load.LoadAll(filesystem, files, parser.Options{})
	if err != nil {
		return err
	}

	t, ok := tables[tableName]
	if !ok {
		return fmt.Errorf("no table named %q in the loaded files", tableName)
	}

	slot := 0
	if subtype != "" {
		slot = t.SubtypeIndex(subtype)
		if slot < 0 {
			return fmt.Errorf("table %q has no subtype %q", t.Name, subtype)
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	query := table.Query{
		Subtype:     subtype,
		Classes:     classes,
		AllowHidden: allowHidden,
	}
	for i := 0; i < count; i++ {
		entry, err := t.Pick(rng, query)
		if err != nil {
			return err
		}
		fmt.Println(termValue(entry, slot))
	}

	return nil
}

// termValue returns the term text for the slot, expanding edit scripts
// against the entry's base term. Entries declared with fewer forms than
// the table has subtypes fall back to the base term.
func termValue(e *table.Entry, slot int) string {
	if slot >= e.TermCount() {
		slot = 0
	}
	term := e.Term(slot)
	if term.Diff {
		return diff.Expand(e.Term(0).Value, term.Value)
	}
	return term.Value
}
