/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for milon.
package list

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/load"
	"bennypowers.dev/milon/parser"
	"bennypowers.dev/milon/table"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List entries from vocabulary table files",
	Long:  `List entries from vocabulary table files with optional class filtering and formatting.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("class", "", "Only list entries carrying this class")
	Cmd.Flags().Bool("hidden", false, "Include entries carrying hidden classes")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String("lang", "", "BCP 47 language tag for headword sorting")
}

// row is one listed entry.
type row struct {
	Table    string   `json:"table"`
	Headword string   `json:"headword"`
	Terms    []string `json:"terms"`
	Classes  []string `json:"classes,omitempty"`
	Weight   int      `json:"weight"`
}

func run(cmd *cobra.Command, args []string) error {
	classFilter, _ := cmd.Flags().GetString("class")
	includeHidden, _ := cmd.Flags().GetBool("hidden")
	format, _ := cmd.Flags().GetString("format")
	lang, _ := cmd.Flags().GetString("lang")
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

	if lang == "" {
		lang = cfg.Lang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language tag %q: %w", lang, err)
	}

	tables, err := load.LoadAll(filesystem, files, parser.Options{})
	if err != nil {
		return err
	}

	rows := collect(tables, classFilter, includeHidden, cfg.Hidden)

	// Locale-aware headword ordering; table name breaks ties.
	coll := collate.New(tag)
	sort.SliceStable(rows, func(i, j int) bool {
		if c := coll.CompareString(rows[i].Headword, rows[j].Headword); c != 0 {
			return c < 0
		}
		return rows[i].Table < rows[j].Table
	})

	switch format {
	case "json":
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling entries: %w", err)
		}
		fmt.Println(string(out))
	default:
		for _, r := range rows {
			fmt.Printf("%s\t%s\t%s\tweight=%d\n", r.Table, r.Headword, strings.Join(r.Classes, ","), r.Weight)
		}
	}

	return nil
}

func collect(tables map[string]*table.Table, classFilter string, includeHidden bool, extraHidden []string) []row {
	var rows []row
	for _, t := range tables {
		for _, e := range t.Entries() {
			if classFilter != "" && !e.HasClass(classFilter) {
				continue
			}
			if !includeHidden && hiddenEntry(t, e, extraHidden) {
				continue
			}

			terms := make([]string, e.TermCount())
			for i := range terms {
				terms[i] = e.Term(i).Value
			}
			rows = append(rows, row{
				Table:    t.Name,
				Headword: e.Term(0).Value,
				Terms:    terms,
				Classes:  e.Classes(),
				Weight:   e.Weight,
			})
		}
	}
	return rows
}

func hiddenEntry(t *table.Table, e *table.Entry, extraHidden []string) bool {
	for _, class := range e.Classes() {
		if t.IsHidden(class) {
			return true
		}
	}
	for _, class := range extraHidden {
		if e.HasClass(class) {
			return true
		}
	}
	return false
}
