// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"docstack/cli/internal/dispatch"

	"github.com/pterm/pterm"
)

func init() {
	// Keep table output deterministic under test.
	pterm.DisableStyling()
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &dispatch.Result{
		Columns: []string{"sku", "stock"},
		Rows: [][]any{
			{"A", int64(5)},
			{"B", int64(20)},
		},
	})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"sku", "stock", "A", "B", "5", "20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("want header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
}

func TestWriteEmptyRowsPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &dispatch.Result{Columns: []string{"sku"}, Rows: [][]any{}})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWriteDocuments(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &dispatch.Result{
		Documents: []json.RawMessage{
			json.RawMessage(`{"sku":"B","stock":20}`),
		},
	})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	want := `[
  {
    "sku": "B",
    "stock": 20
  }
]
`
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteEmptyDocuments(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &dispatch.Result{Documents: []json.RawMessage{}})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q, want []", buf.String())
	}
}

func TestWriteAck(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &dispatch.Result{Ack: &dispatch.Ack{InsertedID: "665f1c2a", RowsAffected: 0}})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var round map[string]any
	if err := json.Unmarshal(buf.Bytes(), &round); err != nil {
		t.Fatalf("ack output is not JSON: %v\n%s", err, buf.String())
	}
	if round["inserted_id"] != "665f1c2a" {
		t.Errorf("inserted_id = %v", round["inserted_id"])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("output not indented with two spaces: %q", buf.String())
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "sku-1", "sku-1"},
		{"int", int64(42), "42"},
		{"bool", true, "true"},
		{"array", []any{1.0, 2.0}, "[1,2]"},
		{"object", map[string]any{"a": 1.0}, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCell(tt.in); got != tt.want {
				t.Errorf("formatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
