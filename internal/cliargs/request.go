// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cliargs

import (
	"encoding/json"
	"strconv"
	"strings"

	"docstack/cli/internal/errors"
)

// Mode is the mutually exclusive operation kind selected by which flags are
// present.
type Mode string

const (
	RawQuery       Mode = "raw-query"
	DocumentFind   Mode = "document-find"
	DocumentInsert Mode = "document-insert"
	CreateIndex    Mode = "create-index"
)

// DefaultLimit caps result counts when --limit is absent.
const DefaultLimit = 50

// Request is the parsed command: constructed once from argv, immutable
// thereafter, consumed by the dispatcher. Exactly one mode is active.
type Request struct {
	Mode   Mode
	Target string

	// Query is the verbatim statement for RawQuery mode.
	Query string

	// Document-mode fields. Filter and Projection default to "{}".
	Filter     json.RawMessage
	Projection json.RawMessage
	Sort       json.RawMessage
	Limit      int64

	// Payload is the document body for insert.
	Payload json.RawMessage

	// IndexKeys and IndexOptions describe an index creation.
	IndexKeys    json.RawMessage
	IndexOptions json.RawMessage

	// Help short-circuits the invocation: usage goes to standard output and
	// the process exits 0 before any backend connection is attempted.
	Help bool
}

var documentFlags = map[string]bool{
	"collection":    true,
	"query":         true,
	"project":       true,
	"sort":          true,
	"limit":         true,
	"insert":        true,
	"create-index":  true,
	"index-options": true,
	"help":          true,
}

var rawFlags = map[string]bool{
	"query": true,
	"help":  true,
}

// BuildDocument parses argv into a document-mode request
// (find, insert, or index creation).
func BuildDocument(argv []string) (*Request, error) {
	a := Parse(argv)
	if a.Has("help") {
		return &Request{Help: true}, nil
	}
	if err := rejectUnknown(a, documentFlags); err != nil {
		return nil, err
	}
	if len(a.Positionals) > 3 {
		return nil, errors.Newf(errors.Usage, "unexpected argument %q", a.Positionals[3])
	}

	req := &Request{}
	if v, ok := a.Get("collection"); ok {
		req.Target = v
	} else {
		req.Target = a.Positional(0, "")
	}
	if strings.TrimSpace(req.Target) == "" {
		return nil, errors.New(errors.Usage, "collection name is required")
	}

	switch {
	case a.Has("insert") && a.Has("create-index"):
		return nil, errors.New(errors.Usage, "--insert and --create-index are mutually exclusive")
	case a.Has("insert"):
		return buildInsert(a, req)
	case a.Has("create-index"):
		return buildCreateIndex(a, req)
	}
	if a.Has("index-options") {
		return nil, errors.New(errors.Usage, "--index-options requires --create-index")
	}
	return buildFind(a, req)
}

// BuildRaw parses argv into a raw-query request (SQL or GraphQL text sent
// verbatim as a single statement).
func BuildRaw(argv []string) (*Request, error) {
	a := Parse(argv)
	if a.Has("help") {
		return &Request{Help: true}, nil
	}
	if err := rejectUnknown(a, rawFlags); err != nil {
		return nil, err
	}
	if len(a.Positionals) > 1 {
		return nil, errors.Newf(errors.Usage, "unexpected argument %q", a.Positionals[1])
	}

	query := a.Positional(0, "")
	if v, ok := a.Get("query"); ok {
		query = v
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New(errors.Usage, "query text is required")
	}
	return &Request{Mode: RawQuery, Query: query}, nil
}

func buildFind(a *Args, req *Request) (*Request, error) {
	req.Mode = DocumentFind
	req.Limit = DefaultLimit

	filter := a.Positional(1, "{}")
	if v, ok := a.Get("query"); ok {
		filter = v
	}
	projection := a.Positional(2, "{}")
	if v, ok := a.Get("project"); ok {
		projection = v
	}

	var err error
	if req.Filter, err = objectJSON("query", filter); err != nil {
		return nil, err
	}
	if req.Projection, err = objectJSON("project", projection); err != nil {
		return nil, err
	}
	if v, ok := a.Get("sort"); ok {
		if req.Sort, err = objectJSON("sort", v); err != nil {
			return nil, err
		}
	}
	if v, ok := a.Get("limit"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Newf(errors.Usage, "limit must be a number, got %q", v)
		}
		if n <= 0 {
			return nil, errors.Newf(errors.Usage, "limit must be positive, got %d", n)
		}
		req.Limit = n
	}
	return req, nil
}

func buildInsert(a *Args, req *Request) (*Request, error) {
	req.Mode = DocumentInsert
	for _, f := range []string{"query", "project", "sort", "limit", "index-options"} {
		if a.Has(f) {
			return nil, errors.Newf(errors.Usage, "--insert cannot be combined with --%s", f)
		}
	}
	if len(a.Positionals) > 1 {
		return nil, errors.Newf(errors.Usage, "unexpected argument %q with --insert", a.Positionals[1])
	}

	v, _ := a.Get("insert")
	if v == boolSentinel {
		return nil, errors.New(errors.Usage, "--insert requires a JSON document")
	}
	var err error
	if req.Payload, err = objectJSON("insert", v); err != nil {
		return nil, err
	}
	return req, nil
}

func buildCreateIndex(a *Args, req *Request) (*Request, error) {
	req.Mode = CreateIndex
	for _, f := range []string{"query", "project", "sort", "limit"} {
		if a.Has(f) {
			return nil, errors.Newf(errors.Usage, "--create-index cannot be combined with --%s", f)
		}
	}
	if len(a.Positionals) > 1 {
		return nil, errors.Newf(errors.Usage, "unexpected argument %q with --create-index", a.Positionals[1])
	}

	v, _ := a.Get("create-index")
	if v == boolSentinel {
		return nil, errors.New(errors.Usage, "--create-index requires a JSON index specification")
	}
	var err error
	if req.IndexKeys, err = objectJSON("create-index", v); err != nil {
		return nil, err
	}
	if opts, ok := a.Get("index-options"); ok {
		if req.IndexOptions, err = objectJSON("index-options", opts); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// rejectUnknown fails on flags outside the grammar so typos like
// --porject surface as usage errors instead of being ignored.
func rejectUnknown(a *Args, allowed map[string]bool) error {
	for _, k := range a.Keys() {
		if !allowed[k] {
			return errors.Newf(errors.Usage, "unknown flag --%s", k)
		}
	}
	return nil
}

// objectJSON validates that text is a JSON object and returns it raw.
func objectJSON(flag, text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") || !json.Valid([]byte(trimmed)) {
		return nil, errors.Newf(errors.Payload, "--%s is not a valid JSON object: %q", flag, text)
	}
	return json.RawMessage(trimmed), nil
}
