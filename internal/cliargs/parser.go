// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cliargs implements the argument grammar shared by every docstack
// query variant. The grammar predates this consolidated binary: the original
// per-backend scripts each re-derived it with drift, so the token rules here
// are deliberately frozen for compatibility with the documented examples.
//
// Token rules:
//   - A token starting with "-" or "--" is a flag token, everything else is a
//     positional.
//   - A flag token containing "=" splits into key=value at the first "=".
//   - A flag token without "=" consumes the next token as its value when that
//     token exists and does not itself start with "-"; otherwise the flag is
//     boolean and carries the literal string "true".
//   - Short aliases resolve to their long form; when both forms are supplied
//     the long form wins. Duplicate keys within the same form are last-writer.
//   - Positionals fill role slots by position; flags take precedence over
//     the positional covering the same field.
package cliargs

import "strings"

// aliases maps short flag names to their long form.
var aliases = map[string]string{
	"c": "collection",
	"q": "query",
	"p": "project",
	"s": "sort",
	"l": "limit",
	"i": "insert",
	"h": "help",
	"o": "index-options",
}

// boolSentinel is the value recorded for a flag given without a value.
const boolSentinel = "true"

type flagValue struct {
	value string
	long  bool
}

// Args is the raw tokenization of argv: a flag map and ordered positionals.
// It carries no mode semantics; request.go layers validation on top.
type Args struct {
	flags       map[string]flagValue
	Positionals []string
}

// Parse tokenizes argv (everything after the program and subcommand names).
func Parse(argv []string) *Args {
	a := &Args{flags: map[string]flagValue{}}
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if !strings.HasPrefix(tok, "-") {
			a.Positionals = append(a.Positionals, tok)
			continue
		}
		key := strings.TrimLeft(tok, "-")
		if eq := strings.Index(key, "="); eq != -1 {
			a.set(key[:eq], key[eq+1:])
			continue
		}
		if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
			a.set(key, argv[i+1])
			i++
			continue
		}
		a.set(key, boolSentinel)
	}
	return a
}

// set records a flag value, resolving short aliases and enforcing
// long-over-short precedence.
func (a *Args) set(key, value string) {
	long := true
	if canonical, ok := aliases[key]; ok {
		key = canonical
		long = false
	}
	if prev, ok := a.flags[key]; ok && prev.long && !long {
		// A long-form assignment is never displaced by a short alias.
		return
	}
	a.flags[key] = flagValue{value: value, long: long}
}

// Get returns the flag's value and whether it was supplied.
func (a *Args) Get(key string) (string, bool) {
	v, ok := a.flags[key]
	return v.value, ok
}

// Has reports whether the flag was supplied in any form.
func (a *Args) Has(key string) bool {
	_, ok := a.flags[key]
	return ok
}

// Keys returns the set of supplied flag names (long form).
func (a *Args) Keys() []string {
	keys := make([]string, 0, len(a.flags))
	for k := range a.flags {
		keys = append(keys, k)
	}
	return keys
}

// Positional returns the positional at index i, or fallback when absent.
func (a *Args) Positional(i int, fallback string) string {
	if i < len(a.Positionals) {
		return a.Positionals[i]
	}
	return fallback
}
