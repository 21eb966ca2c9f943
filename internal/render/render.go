// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render formats query results for standard output. Relational rows
// become a column-aligned table; documents and acknowledgments become
// pretty-printed JSON with stable two-space indentation so output pipes
// cleanly into other tools. Diagnostics never pass through here; they belong
// on standard error.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"docstack/cli/internal/dispatch"

	"github.com/pterm/pterm"
)

// Write renders the result to w.
func Write(w io.Writer, res *dispatch.Result) error {
	switch {
	case res.Ack != nil:
		return writeJSON(w, res.Ack)
	case res.Documents != nil:
		return writeJSON(w, res.Documents)
	}
	return writeTable(w, res)
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeTable renders rows column-aligned, one row per line.
// An empty row set prints nothing.
func writeTable(w io.Writer, res *dispatch.Result) error {
	if len(res.Rows) == 0 {
		return nil
	}

	data := make(pterm.TableData, 0, len(res.Rows)+1)
	data = append(data, res.Columns)
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		data = append(data, cells)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func formatCell(v any) string {
	if v == nil {
		return ""
	}
	switch c := v.(type) {
	case string:
		return c
	case []any, map[string]any:
		// Composite values (arrays, json columns) print as compact JSON.
		if b, err := json.Marshal(c); err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}
