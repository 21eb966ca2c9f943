// Copyright (c) 2025 Docstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"os"
	"strings"
)

// Verbose reports whether debug output is enabled via DOCSTACK_VERBOSE.
func Verbose() bool {
	v := strings.TrimSpace(os.Getenv("DOCSTACK_VERBOSE"))
	return v == "1" || strings.EqualFold(v, "true")
}

// Debugf writes a masked debug line to standard error when verbose mode is on.
// Standard output stays reserved for result payloads.
func Debugf(format string, args ...any) {
	if !Verbose() {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", Mask(fmt.Sprintf(format, args...)))
}
