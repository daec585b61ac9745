// Command solc is the Solidity front-end: it lexes, parses, lowers, and
// semantically analyzes sources and reports diagnostics. There is no
// codegen backend; `build`'s output is diagnostics plus an optional dump,
// never bytecode.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "solc",
	Short: "Solidity compiler front-end",
	Long:  `solc lexes, parses, lowers, and type-checks Solidity sources and reports diagnostics.`,
}

var (
	timeoutCancel context.CancelFunc
)

func main() {
	rootCmd.Version = versionString()
	rootCmd.PersistentPreRunE = applyTimeout
	rootCmd.PersistentPostRun = cleanupTimeout

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")
	rootCmd.PersistentFlags().Int("timeout", 30, "command timeout in seconds")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// wantColor resolves the --color flag (auto|always|never) against whether w
// is a terminal.
func wantColor(cmd *cobra.Command, w *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(w)
	}
}

func applyTimeout(cmd *cobra.Command, _ []string) error {
	secs, err := cmd.Root().PersistentFlags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to read timeout flag: %w", err)
	}
	if secs <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(secs)*time.Second)
	timeoutCancel = cancel
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	go func() {
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			fmt.Fprintf(os.Stderr, "solc: command timed out after %ds\n", secs)
			os.Exit(1)
		}
	}()
	return nil
}

func cleanupTimeout(*cobra.Command, []string) {
	if timeoutCancel != nil {
		timeoutCancel()
		timeoutCancel = nil
	}
}
