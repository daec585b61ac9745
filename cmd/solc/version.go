package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sol-lang/solc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print solc version information",
	RunE:  runVersion,
}

// versionString builds the one-line version string cobra shows for
// --version, composed from the plain vars internal/version actually
// exports rather than a VersionString() helper (the teacher CLI's own
// version.go calls one, but internal/version never defined it).
func versionString() string {
	s := version.Version
	if version.GitCommit != "" {
		s += " (" + version.GitCommit + ")"
	}
	return s
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "solc %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.BuildDate)
	}
	return nil
}
