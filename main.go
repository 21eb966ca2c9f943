// Package main is the entry point for the docstack CLI.
// It provides one-shot query access to the compose stack's backends.
package main

import (
	"docstack/cli/cmd"
)

func main() {
	cmd.Execute()
}
