// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"net/url"
	"strings"
)

// mongoResolver handles MongoDB URI parsing and validation.
// Both the wire-protocol server and the document-extension gateway accept
// the standard mongodb:// form; mongodb+srv:// is allowed for hosted setups.
type mongoResolver struct{}

// Parse parses a MongoDB connection URI.
// Format: mongodb://[user:password@]host1[:port1][,host2[:port2],...][/database][?params]
func (r *mongoResolver) Parse(raw string) (*Info, error) {
	raw = strings.TrimSpace(raw)
	scheme := "mongodb://"
	if strings.HasPrefix(strings.ToLower(raw), "mongodb+srv://") {
		scheme = "mongodb+srv://"
	}
	rest := raw[len(scheme):]

	info := &Info{
		Scheme:   SchemeMongo,
		Params:   map[string]string{},
		Original: raw,
	}

	// Credentials, if any, precede the last @ before the host list.
	if at := strings.LastIndex(rest, "@"); at != -1 {
		auth := rest[:at]
		rest = rest[at+1:]
		if colon := strings.Index(auth, ":"); colon != -1 {
			info.User = auth[:colon]
			info.Password = auth[colon+1:]
		} else {
			info.User = auth
		}
		if info.User == "" {
			return nil, NewParseError(raw, "empty username before @", "drop the @ or provide user:password")
		}
	}

	// Trailing ?params.
	if q := strings.Index(rest, "?"); q != -1 {
		for _, pair := range strings.Split(rest[q+1:], "&") {
			if kv := strings.SplitN(pair, "=", 2); len(kv) == 2 {
				k, _ := url.QueryUnescape(kv[0])
				v, _ := url.QueryUnescape(kv[1])
				info.Params[k] = v
			}
		}
		rest = rest[:q]
	}

	// Optional /database after the host list.
	if slash := strings.Index(rest, "/"); slash != -1 {
		info.Database = rest[slash+1:]
		rest = rest[:slash]
	}

	if strings.TrimSpace(rest) == "" {
		return nil, NewParseError(raw, "missing host", "use mongodb://host:27017")
	}
	for _, h := range strings.Split(rest, ",") {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, NewParseError(raw, "empty host in host list", "remove the stray comma")
		}
		info.Hosts = append(info.Hosts, h)
	}
	return info, nil
}

// Validate checks if the URI is valid for MongoDB-speaking backends.
func (r *mongoResolver) Validate(raw string) error {
	_, err := r.Parse(raw)
	return err
}
