// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cliargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name        string
		argv        []string
		wantFlags   map[string]string
		wantPosline []string
	}{
		{
			name:        "positionals only",
			argv:        []string{"items", `{"stock":{"$gt":10}}`, `{"sku":1}`},
			wantFlags:   map[string]string{},
			wantPosline: []string{"items", `{"stock":{"$gt":10}}`, `{"sku":1}`},
		},
		{
			name:      "equals form splits at first equals",
			argv:      []string{"--query={\"a\":\"x=y\"}"},
			wantFlags: map[string]string{"query": `{"a":"x=y"}`},
		},
		{
			name:      "space form consumes next token",
			argv:      []string{"--limit", "5"},
			wantFlags: map[string]string{"limit": "5"},
		},
		{
			name:      "flag before another flag is boolean",
			argv:      []string{"--help", "--limit", "5"},
			wantFlags: map[string]string{"help": "true", "limit": "5"},
		},
		{
			name:      "trailing flag is boolean",
			argv:      []string{"--help"},
			wantFlags: map[string]string{"help": "true"},
		},
		{
			name:      "short alias resolves to long form",
			argv:      []string{"-q", "{}", "-l", "5"},
			wantFlags: map[string]string{"query": "{}", "limit": "5"},
		},
		{
			name:      "long form wins over short regardless of order",
			argv:      []string{"--query", "{\"a\":1}", "-q", "{\"b\":2}"},
			wantFlags: map[string]string{"query": `{"a":1}`},
		},
		{
			name:      "long form wins when short comes first",
			argv:      []string{"-q", "{\"b\":2}", "--query", "{\"a\":1}"},
			wantFlags: map[string]string{"query": `{"a":1}`},
		},
		{
			name:      "duplicate long flags are last-writer",
			argv:      []string{"--limit", "5", "--limit", "10"},
			wantFlags: map[string]string{"limit": "10"},
		},
		{
			name:      "duplicate short flags are last-writer",
			argv:      []string{"-l", "5", "-l", "10"},
			wantFlags: map[string]string{"limit": "10"},
		},
		{
			name:        "flags interleave with positionals",
			argv:        []string{"items", "--limit", "5", `{"a":1}`},
			wantFlags:   map[string]string{"limit": "5"},
			wantPosline: []string{"items", `{"a":1}`},
		},
		{
			name:      "value starting with dash is not consumed",
			argv:      []string{"--sort", "-x"},
			wantFlags: map[string]string{"sort": "true", "x": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Parse(tt.argv)

			got := map[string]string{}
			for _, k := range a.Keys() {
				got[k], _ = a.Get(k)
			}
			if tt.wantFlags == nil {
				tt.wantFlags = map[string]string{}
			}
			if diff := cmp.Diff(tt.wantFlags, got); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPosline, a.Positionals); diff != "" {
				t.Errorf("positionals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAliasEquivalence(t *testing.T) {
	// Short and long spellings of the same invocation must tokenize
	// identically.
	long := Parse([]string{"--collection", "items", "--query", "{}", "--project", "{}", "--sort", "{}", "--limit", "5"})
	short := Parse([]string{"-c", "items", "-q", "{}", "-p", "{}", "-s", "{}", "-l", "5"})

	for _, key := range []string{"collection", "query", "project", "sort", "limit"} {
		lv, lok := long.Get(key)
		sv, sok := short.Get(key)
		if !lok || !sok || lv != sv {
			t.Errorf("alias mismatch for %s: long=(%q,%v) short=(%q,%v)", key, lv, lok, sv, sok)
		}
	}
}

func TestPositionalFallback(t *testing.T) {
	a := Parse([]string{"items"})
	if got := a.Positional(0, ""); got != "items" {
		t.Errorf("Positional(0) = %q, want items", got)
	}
	if got := a.Positional(1, "{}"); got != "{}" {
		t.Errorf("Positional(1) fallback = %q, want {}", got)
	}
}
