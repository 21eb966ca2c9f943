// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"

	"github.com/spf13/cobra"
)

// docdbCmd issues one document operation against the document-extension
// gateway. Same grammar as mongo; only the endpoint differs.
var docdbCmd = &cobra.Command{
	Use:                "docdb <collection> [filter] [projection] [flags]",
	Short:              "Find, insert, or index documents via the document-extension gateway",
	Long:               documentGrammarHelp("docdb", "DOCSTACK_DOCDB_URL"),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, cliargs.BuildDocument, func(st *config.Stack) config.Descriptor {
			return st.Docdb
		})
	},
}

func init() {
	rootCmd.AddCommand(docdbCmd)
}
