package parser

// Tests for import-directive parsing.
//
// Coverage:
//   - Plain path imports: import "lib.sol";
//   - Aliased imports: import "lib.sol" as L;
//   - Star imports: import * as L from "lib.sol";
//   - Selective imports: import {A, B as C} from "lib.sol";
//   - Error recovery: missing path, missing semicolon, unclosed brace

import (
	"testing"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/source"
)

func parseImportString(t *testing.T, input string) (*ast.ImportItem, *ast.Builder, int) {
	t.Helper()
	p, b, bag := makeTestParser(input)

	itemID, ok := p.parseImport()
	if !ok {
		return nil, b, bag.Len()
	}
	item, ok := b.Items.Import(itemID)
	if !ok {
		t.Fatalf("parseImport returned a non-import item")
	}
	return item, b, bag.Len()
}

func symText(t *testing.T, b *ast.Builder, sym source.Symbol) string {
	t.Helper()
	return b.Interner.MustLookup(sym)
}

func TestParseImport_Plain(t *testing.T) {
	item, b, errs := parseImportString(t, `import "./Lib.sol";`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if got := symText(t, b, item.Path); got != `"./Lib.sol"` {
		t.Fatalf("path = %q, want %q", got, `"./Lib.sol"`)
	}
	if item.Alias != source.NoSymbol {
		t.Fatalf("expected no alias")
	}
}

func TestParseImport_PlainAliased(t *testing.T) {
	item, b, errs := parseImportString(t, `import "./Lib.sol" as L;`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if got := symText(t, b, item.Alias); got != "L" {
		t.Fatalf("alias = %q, want %q", got, "L")
	}
}

func TestParseImport_Star(t *testing.T) {
	item, b, errs := parseImportString(t, `import * as Lib from "./Lib.sol";`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if item.Form != ast.ImportStar {
		t.Fatalf("expected a star import")
	}
	if got := symText(t, b, item.Alias); got != "Lib" {
		t.Fatalf("alias = %q, want %q", got, "Lib")
	}
}

func TestParseImport_Selective(t *testing.T) {
	item, b, errs := parseImportString(t, `import {A, B as C} from "./Lib.sol";`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	symbols := b.Items.ImportSymbols(item)
	if len(symbols) != 2 {
		t.Fatalf("expected 2 imported symbols, got %d", len(symbols))
	}
	if got := symText(t, b, symbols[0].Name); got != "A" || symbols[0].Alias != source.NoSymbol {
		t.Fatalf("first symbol wrong: %+v (name=%q)", symbols[0], got)
	}
	if got := symText(t, b, symbols[1].Name); got != "B" {
		t.Fatalf("second symbol name wrong: %q", got)
	}
	if got := symText(t, b, symbols[1].Alias); got != "C" {
		t.Fatalf("second symbol alias wrong: %q", got)
	}
}

func TestParseImport_MissingPath(t *testing.T) {
	_, _, errs := parseImportString(t, `import ;`)
	if errs == 0 {
		t.Fatalf("expected a diagnostic for a missing import path")
	}
}

func TestParseImport_UnclosedBrace(t *testing.T) {
	_, _, errs := parseImportString(t, `import {A, B from "./Lib.sol";`)
	if errs == 0 {
		t.Fatalf("expected a diagnostic for an unclosed selective-import brace")
	}
}
