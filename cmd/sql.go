// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"

	"github.com/spf13/cobra"
)

// sqlCmd runs one SQL statement against PostgreSQL. The statement is sent
// verbatim; row-returning statements render as an aligned table, everything
// else acknowledges with the affected-row count.
var sqlCmd = &cobra.Command{
	Use:   "sql [flags] <statement>",
	Short: "Run one SQL statement against PostgreSQL",
	Long: `Usage:
  docstack sql [flags] <statement>

The statement is passed through unmodified as a single query. Row-returning
statements print a column-aligned table; others print a JSON acknowledgment.

Flags:
  -q, --query <sql>   the statement (alternative to the positional)
  -h, --help          print this help

Connection comes from DOCSTACK_DATABASE_URL (or DATABASE_URL); the search
path comes from DOCSTACK_SCHEMA (default "public").

Examples:
  docstack sql 'select sku, stock from items order by sku'
  docstack sql -q 'create table notes (id serial primary key, body text)'`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, cliargs.BuildRaw, func(st *config.Stack) config.Descriptor {
			return st.SQL
		})
	},
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}
