package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// TokenOutput is one token in JSON output.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty writes tokens in a human-readable listing.
func FormatTokensPretty(w io.Writer, tokens []token.Token, sm *source.SourceMap) error {
	for i, tok := range tokens {
		startPos, endPos, _ := sm.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
		if len(leading) > 0 {
			if _, err := fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokenOutputsJSON converts tokens to their JSON-ready form.
func TokenOutputsJSON(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leading,
		})

		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON writes tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TokenOutputsJSON(tokens))
}
