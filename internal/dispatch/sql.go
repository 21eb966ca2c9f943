// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import (
	"context"
	"fmt"

	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"
	"docstack/cli/internal/errors"

	"github.com/jackc/pgx/v5"
)

// sqlBackend issues one statement over a single PostgreSQL connection.
type sqlBackend struct {
	conn *pgx.Conn
}

func newSQLBackend(ctx context.Context, desc config.Descriptor) (*sqlBackend, error) {
	conn, err := pgx.Connect(ctx, desc.Endpoint)
	if err != nil {
		return nil, err
	}
	if desc.Namespace != "" {
		stmt := "SET search_path TO " + pgx.Identifier{desc.Namespace}.Sanitize()
		if _, err := conn.Exec(ctx, stmt); err != nil {
			// Connection is established at this point: release it here since
			// the caller never receives the handle.
			_ = conn.Close(context.WithoutCancel(ctx))
			return nil, err
		}
	}
	return &sqlBackend{conn: conn}, nil
}

// Execute sends the statement verbatim. Row-returning statements become a
// Rows result; everything else acknowledges with the affected-row count.
func (b *sqlBackend) Execute(ctx context.Context, req *cliargs.Request) (*Result, error) {
	if req.Mode != cliargs.RawQuery {
		return nil, errors.Newf(errors.Usage, "the SQL backend supports raw queries only, got %s", req.Mode)
	}

	rows, err := b.conn.Query(ctx, req.Query)
	if err != nil {
		return nil, errors.Wrap(errors.Backend, "query failed", err)
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = fd.Name
	}

	res := &Result{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, errors.Wrap(errors.Backend, "reading row", err)
		}
		row := make([]any, len(vals))
		for i, v := range vals {
			row[i] = normalizeValue(v)
		}
		res.Rows = append(res.Rows, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.Backend, "query failed", err)
	}

	if len(cols) == 0 {
		return &Result{Ack: &Ack{RowsAffected: rows.CommandTag().RowsAffected()}}, nil
	}
	return res, nil
}

func (b *sqlBackend) Close(ctx context.Context) error {
	return b.conn.Close(ctx)
}

// normalizeValue converts pgx-returned values into renderable ones.
// UUID columns come back as 16-byte arrays; other byte slices are shown as
// PostgreSQL-style hex escapes.
func normalizeValue(v any) any {
	switch b := v.(type) {
	case [16]byte:
		return formatUUID(b)
	case []byte:
		if len(b) == 16 {
			var fixed [16]byte
			copy(fixed[:], b)
			return formatUUID(fixed)
		}
		return fmt.Sprintf("\\x%x", b)
	}
	return v
}

func formatUUID(b [16]byte) string {
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
}
