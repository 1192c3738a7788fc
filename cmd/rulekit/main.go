// Package main is the entry point for the rulekit CLI.
package main

import (
	"os"

	"github.com/dmitrymomot/rulekit/cmd/rulekit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
