// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn parses and validates the connection strings the stack uses:
// PostgreSQL URLs for the relational backend, MongoDB URIs for the
// wire-protocol and document-extension backends, and plain HTTP(S) URLs for
// the GraphQL resolver. Validation is pure string work; no network I/O.
package dsn

import "strings"

// Detect detects the connection-string scheme from its prefix.
func Detect(raw string) Scheme {
	lower := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return SchemePostgres
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return SchemeMongo
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SchemeHTTP
	}
	return SchemeUnknown
}

func resolverFor(raw string) (Resolver, error) {
	switch Detect(raw) {
	case SchemePostgres:
		return &postgresResolver{}, nil
	case SchemeMongo:
		return &mongoResolver{}, nil
	case SchemeHTTP:
		return &httpResolver{}, nil
	default:
		return nil, NewParseError(raw, "unknown scheme", "use postgres://, mongodb://, or http(s)://")
	}
}

// Parse parses a connection string of any supported scheme.
func Parse(raw string) (*Info, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, NewParseError(raw, "empty connection string", "provide a valid endpoint URL")
	}
	r, err := resolverFor(raw)
	if err != nil {
		return nil, err
	}
	return r.Parse(raw)
}

// Validate checks a connection string without returning its parts.
func Validate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return NewParseError(raw, "empty connection string", "provide a valid endpoint URL")
	}
	r, err := resolverFor(raw)
	if err != nil {
		return err
	}
	return r.Validate(raw)
}
