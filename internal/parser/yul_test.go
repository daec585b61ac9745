package parser

import (
	"testing"

	"github.com/sol-lang/solc/internal/ast"
)

func parseYulStmtString(t *testing.T, input string) (ast.StmtID, *ast.Builder, int) {
	t.Helper()
	p, b, bag := makeTestParser(input)
	p.opts.ParseYul = true
	stmtID, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, b, bag.Len()
	}
	return stmtID, b, bag.Len()
}

func TestParseYul_VarDeclAndAssign(t *testing.T) {
	id, b, errs := parseYulStmtString(t, `assembly { let x := 1 x := add(x, 2) }`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	asm, ok := b.Stmts.Assembly(id)
	if !ok {
		t.Fatalf("expected an assembly statement")
	}
	block := b.Yul.Block(asm.Block)
	if len(block.Stmts) != 2 {
		t.Fatalf("expected 2 yul statements, got %d", len(block.Stmts))
	}

	decl, ok := b.Yul.VarDecl(block.Stmts[0])
	if !ok || len(decl.Names) != 1 {
		t.Fatalf("expected a single-name let statement, got %+v", decl)
	}

	assign, ok := b.Yul.Assign(block.Stmts[1])
	if !ok || len(assign.Targets) != 1 {
		t.Fatalf("expected a single-target assignment, got %+v", assign)
	}
	call, ok := b.Yul.Call(assign.Value)
	if !ok || b.Interner.MustLookup(call.Callee) != "add" {
		t.Fatalf("expected the assigned value to be a call to 'add', got %+v", call)
	}
}

func TestParseYul_MultiAssignAndSwitch(t *testing.T) {
	src := `assembly {
		let a, b := split(x)
		switch a
		case 0 { b := 1 }
		default { b := 2 }
	}`
	id, b, errs := parseYulStmtString(t, src)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	asm, _ := b.Stmts.Assembly(id)
	block := b.Yul.Block(asm.Block)
	if len(block.Stmts) != 2 {
		t.Fatalf("expected 2 yul statements, got %d", len(block.Stmts))
	}
	decl, ok := b.Yul.VarDecl(block.Stmts[0])
	if !ok || len(decl.Names) != 2 {
		t.Fatalf("expected a two-name let statement, got %+v", decl)
	}
	sw, ok := b.Yul.Switch(block.Stmts[1])
	if !ok {
		t.Fatalf("expected a switch statement")
	}
	cases := b.Yul.SwitchCases(sw)
	if len(cases) != 2 {
		t.Fatalf("expected 2 case arms, got %d", len(cases))
	}
	if cases[0].Default || !cases[1].Default {
		t.Fatalf("expected the first arm to be 'case' and the second 'default'")
	}
}

func TestParseYul_FunctionDef(t *testing.T) {
	id, b, errs := parseYulStmtString(t, `assembly {
		function double(x) -> y { y := mul(x, 2) }
	}`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	asm, _ := b.Stmts.Assembly(id)
	block := b.Yul.Block(asm.Block)
	if len(block.Stmts) != 1 {
		t.Fatalf("expected 1 yul statement, got %d", len(block.Stmts))
	}
	fn, ok := b.Yul.FunctionDef(block.Stmts[0])
	if !ok {
		t.Fatalf("expected a function definition")
	}
	if b.Interner.MustLookup(fn.Name) != "double" {
		t.Fatalf("function name = %q, want %q", b.Interner.MustLookup(fn.Name), "double")
	}
	params := b.Yul.FunctionDefParams(fn)
	returns := b.Yul.FunctionDefReturns(fn)
	if len(params) != 1 || len(returns) != 1 {
		t.Fatalf("expected 1 param and 1 return slot, got %d/%d", len(params), len(returns))
	}
}
