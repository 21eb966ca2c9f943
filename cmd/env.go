// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"docstack/cli/internal/config"
	"docstack/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// envCmd displays the resolved backend endpoints with credentials masked.
// Resolution only; no connection is attempted.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show resolved backend endpoints with credentials masked",
	Long: `The env command prints every backend endpoint the CLI would use, after
environment resolution, with passwords and tokens masked. This helps verify
which services a query would hit without exposing credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := config.Load()
		if err != nil {
			return err
		}

		rows := []struct {
			label string
			desc  config.Descriptor
		}{
			{"PostgreSQL", st.SQL},
			{"Mongo wire", st.Mongo},
			{"Document gateway", st.Docdb},
			{"GraphQL resolver", st.GraphQL},
		}

		data := pterm.TableData{{"Backend", "Endpoint", "Namespace", "Source"}}
		for _, r := range rows {
			data = append(data, []string{
				r.label,
				logging.Mask(r.desc.Endpoint),
				r.desc.Namespace,
				r.desc.Source,
			})
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		fmt.Fprintf(cmd.OutOrStdout(), "request timeout: %s\n", st.Timeout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
