package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sol-lang/solc/internal/compiler"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/diagfmt"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <input...>",
	Short: "Parse, lower, and semantically analyze sources",
	Long:  `build runs the full pipeline (parsing, lowering, analysis) and reports diagnostics. There is no codegen backend: --out-dir/--emit are accepted for solc compatibility but produce nothing.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringArrayP("import-path", "I", nil, "add a directory to the import search path")
	buildCmd.Flags().StringArrayP("import-map", "m", nil, "add an import remapping (context:prefix=target)")
	buildCmd.Flags().IntP("threads", "j", 0, "number of files to parse concurrently (0 = GOMAXPROCS)")
	buildCmd.Flags().String("evm-version", "", "target EVM version (accepted; has no effect on analysis)")
	buildCmd.Flags().String("stop-after", "analysis", "stop after this stage (parsing|lowering|analysis)")
	buildCmd.Flags().String("out-dir", "", "output directory (accepted; no codegen backend exists)")
	buildCmd.Flags().StringSlice("emit", nil, "artifacts to emit (accepted; no codegen backend exists)")
	buildCmd.Flags().String("error-format", "human", "diagnostic format (human|json|rustc-json)")
	buildCmd.Flags().Bool("no-warnings", false, "suppress warning-level diagnostics")
	buildCmd.Flags().Bool("progress", false, "print a styled summary box after compiling")
	buildCmd.Flags().StringArrayP("unstable", "Z", nil, "unstable developer flags (only dump=ast is recognized)")
	buildCmd.Flags().String("config", "", "path to solc.toml (default: search upward from the first input's directory)")
}

func parseStage(s string) (compiler.Stage, error) {
	switch s {
	case "parsing":
		return compiler.StageParsing, nil
	case "lowering":
		return compiler.StageLowering, nil
	case "analysis":
		return compiler.StageAnalysis, nil
	default:
		return compiler.StageNone, fmt.Errorf("invalid --stop-after value %q: must be parsing, lowering, or analysis", s)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	stopAfter, _ := cmd.Flags().GetString("stop-after")
	stopAt, err := parseStage(stopAfter)
	if err != nil {
		return err
	}

	cfg, err := resolveBuildConfig(cmd, args)
	if err != nil {
		return err
	}

	maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	jobs, _ := cmd.Flags().GetInt("threads")
	enableTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	c := compiler.New(compiler.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiag,
		EnableTimings:  enableTimings,
	})

	for _, ip := range cfg.Project.ImportPaths {
		c.Resolver().AddSearchPath(ip)
	}
	for _, spec := range cfg.Project.Remappings {
		rm, err := parseRemappingFlag(spec)
		if err != nil {
			return err
		}
		c.Resolver().AddRemapping(rm)
	}
	importPaths, _ := cmd.Flags().GetStringArray("import-path")
	for _, ip := range importPaths {
		c.Resolver().AddSearchPath(ip)
	}
	importMaps, _ := cmd.Flags().GetStringArray("import-map")
	for _, spec := range importMaps {
		rm, err := parseRemappingFlag(spec)
		if err != nil {
			return err
		}
		c.Resolver().AddRemapping(rm)
	}

	start := time.Now()
	entryErr := enterParsingAll(cmd.Context(), c, args)

	if entryErr == nil && stopAt >= compiler.StageLowering {
		c.EnterLowering()
	}
	if entryErr == nil && stopAt >= compiler.StageAnalysis {
		c.EnterAnalysis()
	}
	elapsed := time.Since(start)

	unstable, _ := cmd.Flags().GetStringArray("unstable")
	if dumpKind, ok := unstableValue(unstable, "dump"); ok && strings.HasPrefix(dumpKind, "ast") {
		dumpAST(cmd, c)
	}

	noWarnings, _ := cmd.Flags().GetBool("no-warnings")
	bag := c.Diagnostics()
	if noWarnings {
		bag.Filter(func(d diag.Diagnostic) bool { return d.Severity != diag.SevWarning })
	}

	if err := reportBuildDiagnostics(cmd, c, bag); err != nil {
		return err
	}

	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		printBuildSummary(cmd, c, bag, elapsed)
	}

	if enableTimings {
		printTimingReport(cmd, c)
	}

	if entryErr != nil {
		return entryErr
	}
	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// resolveBuildConfig loads solc.toml, either from --config or by searching
// upward from the first non-stdin input's directory.
func resolveBuildConfig(cmd *cobra.Command, args []string) (projectConfig, error) {
	explicit, _ := cmd.Flags().GetString("config")
	if explicit != "" {
		return loadProjectConfig(explicit)
	}
	for _, input := range args {
		if input == "-" {
			continue
		}
		if path, ok := findSolcToml(dirOf(input)); ok {
			return loadProjectConfig(path)
		}
		break
	}
	return projectConfig{}, nil
}

func dirOf(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return "."
}

func reportBuildDiagnostics(cmd *cobra.Command, c *compiler.Compiler, bag *diag.Bag) error {
	errorFormat, _ := cmd.Flags().GetString("error-format")

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

func printTimingReport(cmd *cobra.Command, c *compiler.Compiler) {
	report := c.TimingReport()
	for _, phase := range report.Phases {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %-10s %8.2fms %s\n", phase.Name, phase.DurationMS, phase.Note)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  %-10s %8.2fms\n", "total", report.TotalMS)
}

var (
	summaryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	summaryErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	summaryWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// printBuildSummary renders a static styled box (files parsed, errors,
// warnings, elapsed time) after the pipeline finishes. There is no
// interactive progress loop: the pipeline's own phases already run to
// completion by the time this prints, so bubbletea/bubbles have nothing
// to animate against.
func printBuildSummary(cmd *cobra.Command, c *compiler.Compiler, bag *diag.Bag, elapsed time.Duration) {
	status := summaryOKStyle.Render("ok")
	switch {
	case bag.HasErrors():
		status = summaryErrStyle.Render("failed")
	case bag.HasWarnings():
		status = summaryWarnStyle.Render("warnings")
	}

	lines := []string{
		fmt.Sprintf("status:      %s", status),
		fmt.Sprintf("files:       %d", len(c.Sources())),
		fmt.Sprintf("diagnostics: %d", bag.Len()),
		fmt.Sprintf("elapsed:     %s", elapsed.Round(time.Microsecond)),
	}
	fmt.Fprintln(cmd.OutOrStdout(), summaryBoxStyle.Render(strings.Join(lines, "\n")))
}

