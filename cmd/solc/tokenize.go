package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/diagfmt"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.sol|->",
	Short: "Tokenize a Solidity source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	sm := source.NewSourceMap()
	fileID, err := loadTokenizeInput(sm, args[0])
	if err != nil {
		return err
	}
	file := sm.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Diags: diag.NewDiagCtxt(bag)})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.HasErrors() || bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{Color: wantColor(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, sm, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, sm)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// loadTokenizeInput registers path (or stdin, for "-") into sm and returns
// its FileID.
func loadTokenizeInput(sm *source.SourceMap, path string) (source.FileID, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return source.NoFileID, fmt.Errorf("reading stdin: %w", err)
		}
		return sm.AddVirtual("<stdin>", data), nil
	}
	return sm.Load(path)
}
