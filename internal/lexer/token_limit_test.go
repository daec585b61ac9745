package lexer

import (
	"strings"
	"testing"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

func TestTokenTooLongTriggersDiagnosticAndStops(t *testing.T) {
	content := strings.Repeat("a", maxTokenLength+1)
	sm := source.NewSourceMap()
	id := sm.AddVirtual("long.sol", []byte(content))
	file := sm.Get(id)

	bag := diag.NewBag(4)
	dc := diag.NewDiagCtxt(bag)
	lx := New(file, Options{Diags: dc})

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Fatalf("expected diagnostics for long token")
	}
	items := bag.Items()
	if items[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", items[0].Code)
	}

	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF after long token, got %v", next.Kind)
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	content := strings.Repeat("b", maxTokenLength)
	sm := source.NewSourceMap()
	id := sm.AddVirtual("limit.sol", []byte(content))
	file := sm.Get(id)

	bag := diag.NewBag(1)
	dc := diag.NewDiagCtxt(bag)
	lx := New(file, Options{Diags: dc})

	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("expected ident token, got %v", tok.Kind)
	}
	if bag.HasErrors() {
		t.Fatalf("did not expect diagnostics, got %v", bag.Items())
	}
}
