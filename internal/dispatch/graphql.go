// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"docstack/cli/internal/cliargs"
	"docstack/cli/internal/config"
	"docstack/cli/internal/errors"
)

// graphqlBackend posts one query to the GraphQL-over-HTTP resolver.
// There is no persistent connection to hold; Close only drops idle
// keep-alives.
type graphqlBackend struct {
	endpoint string
	token    string
	client   *http.Client
}

func newGraphQLBackend(desc config.Descriptor) *graphqlBackend {
	return &graphqlBackend{
		endpoint: desc.Endpoint,
		token:    desc.Token,
		client:   &http.Client{},
	}
}

func (b *graphqlBackend) Execute(ctx context.Context, req *cliargs.Request) (*Result, error) {
	if req.Mode != cliargs.RawQuery {
		return nil, errors.Newf(errors.Usage, "the GraphQL backend supports raw queries only, got %s", req.Mode)
	}

	body, err := json.Marshal(map[string]string{"query": req.Query})
	if err != nil {
		return nil, errors.Wrap(errors.Payload, "encoding query", err)
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.Backend, "building request", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	if b.token != "" {
		hreq.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.client.Do(hreq)
	if err != nil {
		return nil, errors.Wrap(errors.Backend, "query failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errors.Newf(errors.Backend, "resolver returned %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var out struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(errors.Backend, "decoding response", err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, len(out.Errors))
		for i, e := range out.Errors {
			msgs[i] = e.Message
		}
		return nil, errors.New(errors.Backend, fmt.Sprintf("resolver rejected query: %s", strings.Join(msgs, "; ")))
	}
	if out.Data == nil {
		return nil, errors.New(errors.Backend, "resolver returned no data")
	}
	return &Result{Documents: []json.RawMessage{out.Data}}, nil
}

func (b *graphqlBackend) Close(ctx context.Context) error {
	b.client.CloseIdleConnections()
	return nil
}
