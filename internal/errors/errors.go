// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure a docstack invocation can hit falls into one of four kinds:
// usage (bad arguments), configuration (bad environment), payload (unparsable
// JSON in a JSON-bearing flag), and backend (the remote call failed).
//
// All kinds are terminal: nothing is retried, the process exits non-zero, and
// the message lands on standard error. Backend errors carry the remote
// system's own message verbatim to aid debugging.
package errors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Usage indicates malformed or missing command-line arguments,
	// detected before any connection attempt.
	Usage Kind = "usage"
	// Configuration indicates a required environment value is missing or invalid.
	Configuration Kind = "configuration"
	// Payload indicates a JSON-bearing flag failed to parse.
	Payload Kind = "payload"
	// Backend indicates the remote call failed.
	Backend Kind = "backend"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Newf creates an error with a formatted message.
func Newf(kind Kind, format string, args ...any) *E {
	return &E{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an E of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *E
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
