// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dispatch issues the invocation's single request against the
// resolved backend. A Dispatcher owns the connection lifecycle: the backend
// handle is acquired immediately before the request, exclusively owned for
// the invocation, and released exactly once on every exit path. Connections
// are never pooled or reused; the backing services enforce connection limits
// and a one-shot CLI has no business holding them.
package dispatch

import (
	"context"

	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"
	"docstack/cli/internal/errors"
	"docstack/cli/internal/logging"
)

// Backend is a live, single-use handle to one backing service.
type Backend interface {
	// Execute translates the request into the backend's native call and
	// issues it. At most one call per handle.
	Execute(ctx context.Context, req *cliargs.Request) (*Result, error)

	// Close releases the handle. Called exactly once by the Dispatcher.
	Close(ctx context.Context) error
}

// Connector opens a Backend for the given descriptor.
type Connector func(ctx context.Context, desc config.Descriptor) (Backend, error)

// Connect is the production Connector, selecting the backend implementation
// by protocol kind.
func Connect(ctx context.Context, desc config.Descriptor) (Backend, error) {
	logging.Debugf("connecting to %s backend at %s", desc.Protocol, desc.Endpoint)
	switch desc.Protocol {
	case config.ProtocolSQL:
		return newSQLBackend(ctx, desc)
	case config.ProtocolDocument:
		return newDocumentBackend(ctx, desc)
	case config.ProtocolGraphQL:
		return newGraphQLBackend(desc), nil
	}
	return nil, errors.Newf(errors.Configuration, "no backend for protocol %q", desc.Protocol)
}

// Dispatcher runs requests through a Connector.
type Dispatcher struct {
	connect Connector
}

// New creates a Dispatcher using the given Connector.
func New(connect Connector) *Dispatcher {
	return &Dispatcher{connect: connect}
}

// Do acquires a backend, issues the single request, and releases the backend.
// Release is guaranteed on every path, including panics from Execute.
func (d *Dispatcher) Do(ctx context.Context, desc config.Descriptor, req *cliargs.Request) (res *Result, err error) {
	be, err := d.connect(ctx, desc)
	if err != nil {
		if errors.IsKind(err, errors.Configuration) {
			return nil, err
		}
		return nil, errors.Wrap(errors.Backend, "connecting to "+string(desc.Protocol)+" backend", err)
	}
	defer func() {
		// Release must survive an already-expired context. A failed release
		// is a diagnostic, not a new failure: the query outcome stands.
		if cerr := be.Close(context.WithoutCancel(ctx)); cerr != nil {
			logging.Debugf("connection release failed: %v", cerr)
		}
	}()

	res, err = be.Execute(ctx, req)
	return res, err
}
