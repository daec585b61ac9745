package hir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/resolvefs"
	"github.com/sol-lang/solc/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func lowerDir(t *testing.T, dir, entry string) (*Context, *pcontext.ParsingContext) {
	t.Helper()
	hctx, pc, _ := lowerDirWithInterner(t, dir, entry)
	return hctx, pc
}

func lowerDirWithInterner(t *testing.T, dir, entry string) (*Context, *pcontext.ParsingContext, *source.Interner) {
	t.Helper()
	sm := source.NewSourceMap()
	resolver := resolvefs.NewFileResolver(sm)
	entryID, err := resolver.LoadEntry(filepath.Join(dir, entry))
	if err != nil {
		t.Fatalf("LoadEntry: %v", err)
	}
	interner := source.NewInterner()
	pc := pcontext.New(sm, resolver, interner, pcontext.Options{MaxDiagnostics: 64})
	pc.AddFile(entryID)
	if err := pc.Parse(context.Background()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Lower(pc), pc, interner
}

func TestLower_CollectsContractAndFunctions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), `
		contract Main {
			uint256 public total;
			constructor(uint256 x) { total = x; }
			function add(uint256 x) public returns (uint256) { return total + x; }
		}
	`)

	hctx, _ := lowerDir(t, dir, "Main.sol")

	if len(hctx.Contracts()) != 1 {
		t.Fatalf("expected 1 contract, got %d", len(hctx.Contracts()))
	}
	contract := hctx.Contracts()[0]
	if !contract.Ctor.IsValid() {
		t.Fatalf("expected constructor to be recorded")
	}
	if len(contract.Items) != 3 {
		t.Fatalf("expected 3 contract-body items (variable + constructor + function), got %d", len(contract.Items))
	}
	if len(hctx.Functions()) != 2 {
		t.Fatalf("expected 2 functions (ctor + add), got %d", len(hctx.Functions()))
	}
	if len(hctx.Variables()) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(hctx.Variables()))
	}
}

func TestLower_DuplicateFallbackReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), `
		contract Main {
			fallback() external {}
			fallback() external {}
		}
	`)

	_, pc := lowerDir(t, dir, "Main.sol")

	var total int
	for _, pf := range pc.Sources() {
		total += pf.Bag.Len()
	}
	if total == 0 {
		t.Fatalf("expected a duplicate-fallback diagnostic, got none")
	}
}

func TestLower_LinearizesInheritance(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), `
		contract A {}
		contract B is A {}
		contract C is A {}
		contract D is B, C {}
	`)

	hctx, pc, interner := lowerDirWithInterner(t, dir, "Main.sol")

	for _, pf := range pc.Sources() {
		if pf.Bag.Len() != 0 {
			t.Fatalf("unexpected diagnostics: %d", pf.Bag.Len())
		}
	}

	byID := make(map[ContractID]*Contract)
	var d *Contract
	for _, c := range hctx.Contracts() {
		byID[c.ID] = c
		if len(c.Inherits) == 2 {
			d = c
		}
	}
	if d == nil {
		t.Fatalf("could not find contract D")
	}

	names := make([]string, len(d.LinearizedBases))
	for i, id := range d.LinearizedBases {
		names[i] = interner.MustLookup(byID[id].Name)
	}
	want := []string{"D", "B", "C", "A"}
	if len(names) != len(want) {
		t.Fatalf("expected D's MRO to have %d entries %v, got %d: %v", len(want), want, len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("D's linearized bases = %v, want %v", names, want)
		}
	}
	if d.LinearizedBases[0] != d.ID {
		t.Fatalf("expected D itself to head its own linearization")
	}
}

func TestLower_ImportPropagatesNamespace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), `
		import * as Lib from "./Lib.sol";
		contract Main is Lib.Base {}
	`)
	writeFile(t, filepath.Join(dir, "Lib.sol"), `
		contract Base {}
	`)

	hctx, pc := lowerDir(t, dir, "Main.sol")

	for _, pf := range pc.Sources() {
		if pf.Bag.Len() != 0 {
			t.Fatalf("unexpected diagnostics: %d", pf.Bag.Len())
		}
	}

	var main *Contract
	for _, c := range hctx.Contracts() {
		if len(c.Inherits) == 1 {
			main = c
		}
	}
	if main == nil {
		t.Fatalf("could not find Main")
	}
	if !main.Inherits[0].Resolved.IsValid() {
		t.Fatalf("expected Main's base to resolve through the namespace import")
	}
}
