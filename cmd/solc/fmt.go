package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fmtCmd is kept as a thin, explicitly unimplemented stub: an AST-driven
// source formatter is out of scope (spec.md's Non-goals), but solc's own
// CLI surface carries the subcommand, so we do too rather than silently
// omitting it.
var fmtCmd = &cobra.Command{
	Use:   "fmt <input...>",
	Short: "Format Solidity source files (not implemented)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(*cobra.Command, []string) error {
		return fmt.Errorf("fmt: source formatting is not implemented")
	},
}
