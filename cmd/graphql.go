// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"

	"github.com/spf13/cobra"
)

// graphqlCmd posts one GraphQL query to the resolver endpoint.
var graphqlCmd = &cobra.Command{
	Use:   "graphql [flags] <query>",
	Short: "Run one GraphQL query against the resolver endpoint",
	Long: `Usage:
  docstack graphql [flags] <query>

The query is posted unmodified to the GraphQL resolver; the response data is
printed as pretty JSON. Resolver errors fail the invocation.

Flags:
  -q, --query <graphql>   the query (alternative to the positional)
  -h, --help              print this help

Connection comes from DOCSTACK_GRAPHQL_URL; DOCSTACK_GRAPHQL_TOKEN, when
set, is sent as a bearer token.

Example:
  docstack graphql '{ itemsCollection(first: 5) { edges { node { sku } } } }'`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, cliargs.BuildRaw, func(st *config.Stack) config.Descriptor {
			return st.GraphQL
		})
	},
}

func init() {
	rootCmd.AddCommand(graphqlCmd)
}
