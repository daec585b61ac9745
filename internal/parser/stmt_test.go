package parser

import (
	"testing"

	"github.com/sol-lang/solc/internal/ast"
)

func parseStmtString(t *testing.T, input string) (ast.StmtID, *ast.Builder, int) {
	t.Helper()
	p, b, bag := makeTestParser(input)
	stmtID, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, b, bag.Len()
	}
	return stmtID, b, bag.Len()
}

func TestParseStmt_If(t *testing.T) {
	id, b, errs := parseStmtString(t, "if (a) { b; } else { c; }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	data, ok := b.Stmts.If(id)
	if !ok {
		t.Fatalf("expected an if statement")
	}
	if data.Then == ast.NoStmtID || data.Else == ast.NoStmtID {
		t.Fatalf("expected both branches populated: %+v", data)
	}
}

func TestParseStmt_ForLoop(t *testing.T) {
	id, b, errs := parseStmtString(t, "for (uint i = 0; i < 10; i++) { sum += i; }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	data, ok := b.Stmts.For(id)
	if !ok {
		t.Fatalf("expected a for statement")
	}
	if data.Init == ast.NoStmtID || data.Cond == ast.NoExprID || data.Post == ast.NoExprID {
		t.Fatalf("expected all three for-clauses populated: %+v", data)
	}
}

func TestParseStmt_EmptyForClauses(t *testing.T) {
	id, b, errs := parseStmtString(t, "for (;;) { break; }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	data, ok := b.Stmts.For(id)
	if !ok {
		t.Fatalf("expected a for statement")
	}
	if data.Init != ast.NoStmtID || data.Cond != ast.NoExprID || data.Post != ast.NoExprID {
		t.Fatalf("expected every for-clause omitted: %+v", data)
	}
}

func TestParseStmt_SingleVarDecl(t *testing.T) {
	id, b, errs := parseStmtString(t, "uint256 x = 1;")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	decl, ok := b.Stmts.VarDecl(id)
	if !ok {
		t.Fatalf("expected a var-decl statement")
	}
	targets := b.Stmts.VarDeclTargets(decl)
	if len(targets) != 1 || b.Interner.MustLookup(targets[0].Name) != "x" {
		t.Fatalf("unexpected targets: %+v", targets)
	}
	if decl.Init == ast.NoExprID {
		t.Fatalf("expected an initializer")
	}
}

func TestParseStmt_TupleVarDecl(t *testing.T) {
	id, b, errs := parseStmtString(t, "(uint a, , bool c) = f();")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	decl, ok := b.Stmts.VarDecl(id)
	if !ok {
		t.Fatalf("expected a var-decl statement")
	}
	targets := b.Stmts.VarDeclTargets(decl)
	if len(targets) != 3 {
		t.Fatalf("expected 3 tuple targets (including the omitted slot), got %d", len(targets))
	}
	if targets[1].Type != ast.NoTypeID {
		t.Fatalf("expected the second target to be the omitted slot")
	}
}

func TestParseStmt_TupleAssignmentIsNotMistakenForDecl(t *testing.T) {
	// Since `a`/`b` aren't types, this must fall through to a bare
	// expression statement holding a tuple-assignment expression, not a
	// StmtVarDecl.
	id, b, errs := parseStmtString(t, "(a, b) = f();")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if _, ok := b.Stmts.VarDecl(id); ok {
		t.Fatalf("expected a plain expression statement, not a var-decl")
	}
	exprStmt, ok := b.Stmts.ExprStmt(id)
	if !ok {
		t.Fatalf("expected an expression statement")
	}
	if _, ok := b.Exprs.Assign(exprStmt.Expr); !ok {
		t.Fatalf("expected the expression to be an assignment")
	}
}

func TestParseStmt_TryCatch(t *testing.T) {
	id, b, errs := parseStmtString(t, `try f() returns (uint x) { g(x); } catch Error(string memory reason) { h(reason); } catch { i(); }`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	data, ok := b.Stmts.Try(id)
	if !ok {
		t.Fatalf("expected a try statement")
	}
	clauses := b.Stmts.TryClausesOf(data)
	if len(clauses) != 2 {
		t.Fatalf("expected 2 catch clauses, got %d", len(clauses))
	}
	if b.Interner.MustLookup(clauses[0].Name) != "Error" {
		t.Fatalf("expected first clause named 'Error', got %+v", clauses[0])
	}
	if clauses[1].Name != 0 {
		t.Fatalf("expected the second clause to be the bare catch-all")
	}
}

func TestParseStmt_AssemblySkippedWhenYulDisabled(t *testing.T) {
	id, b, errs := parseStmtString(t, `assembly { let x := mload(0) mstore(0, x) }`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if _, ok := b.Stmts.Assembly(id); !ok {
		t.Fatalf("expected an assembly statement")
	}
}
