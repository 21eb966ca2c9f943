// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "fmt"

// Scheme identifies the connection-string family of an endpoint.
type Scheme string

const (
	SchemePostgres Scheme = "postgres"
	SchemeMongo    Scheme = "mongodb"
	SchemeHTTP     Scheme = "http"
	SchemeUnknown  Scheme = "unknown"
)

// Info contains parsed information from a connection string.
type Info struct {
	Scheme   Scheme
	Hosts    []string
	User     string
	Password string
	Database string
	Params   map[string]string
	Original string
}

// Resolver is an interface for scheme-specific connection-string resolution.
type Resolver interface {
	// Parse parses a connection string into its parts.
	Parse(raw string) (*Info, error)

	// Validate checks if the connection string is well-formed for the scheme.
	Validate(raw string) error
}

// ParseError represents an error that occurred during connection-string parsing.
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid connection string: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid connection string: %s", e.Reason)
}

// NewParseError creates a new ParseError.
func NewParseError(raw, reason, hint string) *ParseError {
	return &ParseError{DSN: raw, Reason: reason, Hint: hint}
}
