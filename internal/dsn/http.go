// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"net/url"
	"strings"
)

// httpResolver validates HTTP(S) endpoints such as the GraphQL resolver URL.
type httpResolver struct{}

func (r *httpResolver) Parse(raw string) (*Info, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, NewParseError(raw, "not a parsable URL", "use http://host:port/path")
	}
	if parsed.Host == "" {
		return nil, NewParseError(raw, "missing host", "use http://host:port/path")
	}

	info := &Info{
		Scheme:   SchemeHTTP,
		Hosts:    []string{parsed.Host},
		Params:   map[string]string{},
		Original: raw,
	}
	if parsed.User != nil {
		info.User = parsed.User.Username()
		info.Password, _ = parsed.User.Password()
	}
	return info, nil
}

func (r *httpResolver) Validate(raw string) error {
	_, err := r.Parse(raw)
	return err
}
