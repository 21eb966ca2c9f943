// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import "encoding/json"

// Result is the outcome of a single invocation. Exactly one of Rows,
// Documents, or Ack is populated on success.
type Result struct {
	// Columns and Rows hold a relational result in server-returned order.
	Columns []string
	Rows    [][]any

	// Documents holds document or GraphQL results, each already valid JSON.
	Documents []json.RawMessage

	// Ack acknowledges a statement that returned no rows.
	Ack *Ack
}

// Ack carries whatever identifier the backend assigned.
type Ack struct {
	InsertedID   string `json:"inserted_id,omitempty"`
	Index        string `json:"index,omitempty"`
	RowsAffected int64  `json:"rows_affected,omitempty"`
}
