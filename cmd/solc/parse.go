package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sol-lang/solc/internal/astdump"
	"github.com/sol-lang/solc/internal/compiler"
	"github.com/sol-lang/solc/internal/diagfmt"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <input...>",
	Short: "Parse sources and report syntax diagnostics (stops before lowering)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringArrayP("import-path", "I", nil, "add a directory to the import search path")
	parseCmd.Flags().StringArrayP("import-map", "m", nil, "add an import remapping (context:prefix=target)")
	parseCmd.Flags().String("error-format", "human", "diagnostic format (human|json)")
	parseCmd.Flags().StringArrayP("unstable", "Z", nil, "unstable developer flags (dump=ast)")
}

func runParse(cmd *cobra.Command, args []string) error {
	c, err := newCompilerFromFlags(cmd)
	if err != nil {
		return err
	}

	entryErr := enterParsingAll(cmd.Context(), c, args)

	unstable, _ := cmd.Flags().GetStringArray("unstable")
	if dumpKind, ok := unstableValue(unstable, "dump"); ok && strings.HasPrefix(dumpKind, "ast") {
		dumpAST(cmd, c)
	}

	if err := reportCompilerDiagnostics(cmd, c); err != nil {
		return err
	}
	if entryErr != nil {
		return entryErr
	}
	if c.Diagnostics().HasErrors() {
		os.Exit(1)
	}
	return nil
}

func newCompilerFromFlags(cmd *cobra.Command) (*compiler.Compiler, error) {
	maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	c := compiler.New(compiler.Options{MaxDiagnostics: maxDiag})

	importPaths, _ := cmd.Flags().GetStringArray("import-path")
	for _, ip := range importPaths {
		c.Resolver().AddSearchPath(ip)
	}
	importMaps, _ := cmd.Flags().GetStringArray("import-map")
	for _, spec := range importMaps {
		rm, err := parseRemappingFlag(spec)
		if err != nil {
			return nil, err
		}
		c.Resolver().AddRemapping(rm)
	}
	return c, nil
}

func enterParsingAll(ctx context.Context, c *compiler.Compiler, inputs []string) error {
	for _, input := range inputs {
		if input == "-" {
			data, err := readStdin()
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			c.Resolver().SetStdin(data)
		}
	}
	for _, input := range inputs {
		if err := c.EnterParsing(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

func unstableValue(flags []string, name string) (string, bool) {
	prefix := name + "="
	for _, f := range flags {
		if strings.HasPrefix(f, prefix) {
			return strings.TrimPrefix(f, prefix), true
		}
	}
	return "", false
}

func dumpAST(cmd *cobra.Command, c *compiler.Compiler) {
	for _, entry := range sortedSources(c) {
		fmt.Fprintf(cmd.OutOrStdout(), "// %s\n", c.Sess.Map.Get(entry.id).Path)
		astdump.New(cmd.OutOrStdout(), entry.pf.Builder, entry.pf.Builder.Interner).Print(entry.pf.Unit)
	}
}

func reportCompilerDiagnostics(cmd *cobra.Command, c *compiler.Compiler) error {
	errorFormat, _ := cmd.Flags().GetString("error-format")
	bag := c.Diagnostics()

	switch errorFormat {
	case "json", "rustc-json":
		jopts := diagfmt.JSONOpts{IncludePositions: true, PathMode: diagfmt.PathModeRelative, IncludeNotes: true}
		return diagfmt.JSON(cmd.ErrOrStderr(), bag, c.Sess.Map, jopts)
	default:
		popts := diagfmt.PrettyOpts{Color: wantColor(cmd, os.Stderr), Context: 1, PathMode: diagfmt.PathModeRelative, ShowNotes: true}
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, c.Sess.Map, popts)
		return nil
	}
}
