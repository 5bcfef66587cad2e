/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for milon.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/milon/cmd/list"
	"bennypowers.dev/milon/cmd/pick"
	"bennypowers.dev/milon/cmd/validate"
	"bennypowers.dev/milon/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "milon",
	Short: "Load and work with legacy vocabulary table files",
	Long:  `milon loads, validates, and queries vocabulary tables written in the legacy line-oriented table format.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config-root", "C", ".", "Directory to search for .config/milon.{yaml,json}")

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(pick.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
