package token_test

import (
	"testing"

	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

func TestDirectiveTriviaShape(t *testing.T) {
	dir := &token.Directive{
		Module:  "solc.token",
		Name:    "keywords-pass",
		Payload: "cover uint8/bytes32",
	}
	tv := token.Trivia{
		Kind:      token.TriviaDirective,
		Span:      source.Span{Lo: 0, Hi: 10},
		Text:      "/// directive...",
		Directive: dir,
	}
	tok := token.Token{
		Kind:    token.KwFunction,
		Span:    source.Span{Lo: 42, Hi: 50},
		Text:    "function",
		Leading: []token.Trivia{tv},
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaDirective || tok.Leading[0].Directive == nil {
		t.Fatalf("directive trivia must be present and structured")
	}
}
