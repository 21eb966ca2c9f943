// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the docstack stack.
// One subcommand exists per backend variant (sql, mongo, docdb, graphql);
// each parses the shared query grammar, resolves connection settings from
// the environment, issues exactly one request, renders the result on
// standard output, and exits. All diagnostics go to standard error.
package cmd

import (
	"fmt"
	"os"

	"docstack/cli/internal/logging"

	"github.com/spf13/cobra"
)

var showVersion bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "docstack",
	Short: "Query the docstack compose services from the command line",
	Long: `docstack is the companion CLI for the docstack compose demo: PostgreSQL
with a GraphQL resolver, a MongoDB-wire-protocol server, and a document-store
extension gateway. Each subcommand opens one connection, issues one request,
prints the result, and exits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("docstack %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Any error is printed to standard error
// with credentials masked, and the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "docstack: "+logging.Mask(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
