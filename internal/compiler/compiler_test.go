package compiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.sol")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCompiler_HappyPathAdvancesThroughAllStages(t *testing.T) {
	c := New(Options{MaxDiagnostics: 64})
	path := writeTemp(t, `
		contract Main {
			uint256 public value;
		}
	`)
	if c.Stage() != StageNone {
		t.Fatalf("expected StageNone, got %s", c.Stage())
	}
	if err := c.EnterParsing(context.Background(), path); err != nil {
		t.Fatalf("EnterParsing: %v", err)
	}
	if c.Stage() != StageParsing {
		t.Fatalf("expected StageParsing, got %s", c.Stage())
	}

	hctx := c.EnterLowering()
	if hctx == nil {
		t.Fatalf("expected non-nil HIR context")
	}
	if c.Stage() != StageLowering {
		t.Fatalf("expected StageLowering, got %s", c.Stage())
	}

	res := c.EnterAnalysis()
	if res == nil {
		t.Fatalf("expected non-nil sema result")
	}
	if c.Stage() != StageAnalysis {
		t.Fatalf("expected StageAnalysis, got %s", c.Stage())
	}

	if c.Diagnostics().HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics().Items())
	}
}

func TestCompiler_ParsingIsReentrant(t *testing.T) {
	c := New(Options{MaxDiagnostics: 64})
	first := writeTemp(t, `contract A { }`)
	second := writeTemp(t, `contract B { }`)

	if err := c.EnterParsing(context.Background(), first); err != nil {
		t.Fatalf("EnterParsing(first): %v", err)
	}
	if err := c.EnterParsing(context.Background(), second); err != nil {
		t.Fatalf("EnterParsing(second): %v", err)
	}
	if c.Stage() != StageParsing {
		t.Fatalf("expected StageParsing after re-entry, got %s", c.Stage())
	}
}

func TestCompiler_SkippingParsingPanics(t *testing.T) {
	c := New(Options{MaxDiagnostics: 64})
	err := Catch(func() {
		c.EnterLowering()
	})
	if err == nil {
		t.Fatalf("expected a stage transition error")
	}
}

func TestCompiler_ReenteringLoweringPanicsWithExpectedMessage(t *testing.T) {
	c := New(Options{MaxDiagnostics: 64})
	path := writeTemp(t, `contract Main { }`)
	if err := c.EnterParsing(context.Background(), path); err != nil {
		t.Fatalf("EnterParsing: %v", err)
	}
	c.EnterLowering()

	err := Catch(func() {
		c.EnterLowering()
	})
	if err == nil {
		t.Fatalf("expected a stage transition error on re-entering lowering")
	}
	want := `from "lowering" to "lowering"`
	if got := err.Error(); !strings.Contains(got, want) {
		t.Fatalf("error %q does not contain %q", got, want)
	}
}
