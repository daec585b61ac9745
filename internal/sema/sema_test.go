package sema

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/resolvefs"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/types"
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

// runSema lexes, parses, lowers, and binds the single-file program in
// content, collecting every diagnostic the run reported along the way.
func runSema(t *testing.T, content string) (*hir.Context, *Result, []diag.Diagnostic) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), content)

	sm := source.NewSourceMap()
	resolver := resolvefs.NewFileResolver(sm)
	entryID, err := resolver.LoadEntry(filepath.Join(dir, "Main.sol"))
	if err != nil {
		t.Fatalf("LoadEntry: %v", err)
	}
	pc := pcontext.New(sm, resolver, source.NewInterner(), pcontext.Options{MaxDiagnostics: 64})
	pc.AddFile(entryID)
	if err := pc.Parse(context.Background()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	hctx := hir.Lower(pc)
	result := Run(pc, hctx)

	var diags []diag.Diagnostic
	for _, pf := range pc.Sources() {
		diags = append(diags, pf.Bag.Items()...)
	}
	return hctx, result, diags
}

func hasCode(diags []diag.Diagnostic, code diag.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestRun_BindsStructFieldTypes(t *testing.T) {
	hctx, result, diags := runSema(t, `
		contract Main {
			struct Point { uint256 x; uint256 y; }
			Point public origin;
		}
	`)
	for _, d := range diags {
		if d.Severity.IsError() {
			t.Fatalf("unexpected diagnostic: %+v", d)
		}
	}
	if len(hctx.Structs()) != 1 {
		t.Fatalf("expected 1 struct, got %d", len(hctx.Structs()))
	}

	info := findStructInfo(t, result.Types)
	if len(info.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(info.Fields))
	}
	if !info.Fields[0].Type.IsValid() || !info.Fields[1].Type.IsValid() {
		t.Fatalf("expected both fields to resolve to a valid type")
	}
}

// findStructInfo scans the low end of the interner's TypeID space for the
// one struct this test's program declares. Tests only ever register a
// handful of types, so a linear scan is simpler than exposing an iteration
// API the production interner has no other use for.
func findStructInfo(t *testing.T, in *types.Interner) *types.StructInfo {
	t.Helper()
	for id := types.TypeID(1); id < 256; id++ {
		if info, ok := in.StructInfo(id); ok {
			return info
		}
	}
	t.Fatalf("could not locate a registered struct type")
	return nil
}

func TestRun_UnresolvedTypeReportsDiagnostic(t *testing.T) {
	_, _, diags := runSema(t, `
		contract Main {
			Nonexistent public thing;
		}
	`)
	if !hasCode(diags, diag.SemaUnresolvedType) {
		t.Fatalf("expected SemaUnresolvedType, got %+v", diags)
	}
}

func TestRun_LibraryStateVarIsRejected(t *testing.T) {
	_, _, diags := runSema(t, `
		library Lib {
			uint256 public total;
		}
	`)
	if !hasCode(diags, diag.SemaLibraryHasStateVars) {
		t.Fatalf("expected SemaLibraryHasStateVars, got %+v", diags)
	}
}

func TestRun_LibraryConstantIsAllowed(t *testing.T) {
	_, _, diags := runSema(t, `
		library Lib {
			uint256 public constant MAX = 100;
		}
	`)
	if hasCode(diags, diag.SemaLibraryHasStateVars) {
		t.Fatalf("did not expect SemaLibraryHasStateVars, got %+v", diags)
	}
}

func TestRun_InterfaceFunctionBodyIsRejected(t *testing.T) {
	_, _, diags := runSema(t, `
		interface IFoo {
			function bar() external { }
		}
	`)
	if !hasCode(diags, diag.SemaInterfaceFunctionBody) {
		t.Fatalf("expected SemaInterfaceFunctionBody, got %+v", diags)
	}
}

func TestRun_ExternalConstructorIsRejected(t *testing.T) {
	_, _, diags := runSema(t, `
		contract Main {
			constructor() external { }
		}
	`)
	if !hasCode(diags, diag.SemaConstructorVisibility) {
		t.Fatalf("expected SemaConstructorVisibility, got %+v", diags)
	}
}

func TestRun_UndeclaredModifierIsRejected(t *testing.T) {
	_, _, diags := runSema(t, `
		contract Main {
			function f() public onlyOwner { }
		}
	`)
	if !hasCode(diags, diag.SemaModifierNotFound) {
		t.Fatalf("expected SemaModifierNotFound, got %+v", diags)
	}
}

func TestRun_ModifierMissingPlaceholderIsRejected(t *testing.T) {
	_, _, diags := runSema(t, `
		contract Main {
			modifier onlyOwner() {
				require(true);
			}
		}
	`)
	if !hasCode(diags, diag.SemaModifierMissingPlaceholder) {
		t.Fatalf("expected SemaModifierMissingPlaceholder, got %+v", diags)
	}
}

func TestRun_ModifierWithPlaceholderIsAccepted(t *testing.T) {
	_, _, diags := runSema(t, `
		contract Main {
			modifier onlyOwner() {
				require(true);
				_;
			}

			function f() public onlyOwner { }
		}
	`)
	if hasCode(diags, diag.SemaModifierMissingPlaceholder) {
		t.Fatalf("did not expect SemaModifierMissingPlaceholder, got %+v", diags)
	}
	if hasCode(diags, diag.SemaModifierNotFound) {
		t.Fatalf("did not expect SemaModifierNotFound, got %+v", diags)
	}
}
