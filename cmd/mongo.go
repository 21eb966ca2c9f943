// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"

	"github.com/spf13/cobra"
)

// mongoCmd issues one document operation against the wire-protocol server.
var mongoCmd = &cobra.Command{
	Use:                "mongo <collection> [filter] [projection] [flags]",
	Short:              "Find, insert, or index documents via the wire-protocol server",
	Long:               documentGrammarHelp("mongo", "DOCSTACK_MONGO_URL"),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, cliargs.BuildDocument, func(st *config.Stack) config.Descriptor {
			return st.Mongo
		})
	},
}

func init() {
	rootCmd.AddCommand(mongoCmd)
}
