// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"

	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"
	"docstack/cli/internal/dispatch"
	"docstack/cli/internal/logging"
	"docstack/cli/internal/render"

	"github.com/spf13/cobra"
)

// builder turns raw argv into a request using one of the grammar variants.
type builder func(argv []string) (*cliargs.Request, error)

// descriptorFor selects the resolved backend descriptor for a subcommand.
type descriptorFor func(st *config.Stack) config.Descriptor

// runQuery is the shared invocation path: parse, resolve, dispatch, render.
// Parse and validation failures return before any connection is attempted;
// the help flag short-circuits with usage on standard output and exit 0.
func runQuery(cmd *cobra.Command, argv []string, build builder, pick descriptorFor) error {
	req, err := build(argv)
	if err != nil {
		return err
	}
	if req.Help {
		fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
		return nil
	}

	st, err := config.Load()
	if err != nil {
		return err
	}
	desc := pick(st)
	logging.Debugf("mode=%s target=%q endpoint=%s (%s)", req.Mode, req.Target, desc.Endpoint, desc.Source)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, st.Timeout)
	defer cancel()

	res, err := dispatch.New(dispatch.Connect).Do(ctx, desc, req)
	if err != nil {
		return err
	}
	return render.Write(os.Stdout, res)
}

// documentGrammarHelp is the usage text shared by the document variants.
// The grammar is frozen; see internal/cliargs.
func documentGrammarHelp(name, envVar string) string {
	return fmt.Sprintf(`Usage:
  docstack %[1]s <collection> [filter] [projection] [flags]

Arguments:
  collection            target collection (or -c/--collection)
  filter                JSON filter, default "{}" (or -q/--query)
  projection            JSON projection, default "{}" (or -p/--project)

Flags:
  -q, --query <json>         structured filter
  -p, --project <json>       field projection
  -s, --sort <json>          sort specification
  -l, --limit <n>            max results (default 50)
  -i, --insert <json>        document to insert (excludes find flags)
      --create-index <json>  index key specification
  -o, --index-options <json> index options (requires --create-index)
  -h, --help                 print this help

Flags take precedence over positionals. Connection comes from %[2]s.

Examples:
  docstack %[1]s items '{"stock":{"$gt":10}}' '{"sku":1}'
  docstack %[1]s items --insert '{"sku":"C","stock":7}'
  docstack %[1]s items --create-index '{"sku":1}' -o '{"unique":true}'`, name, envVar)
}
