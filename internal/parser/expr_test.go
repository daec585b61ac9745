package parser

import (
	"testing"

	"github.com/sol-lang/solc/internal/ast"
)

func parseExprString(t *testing.T, input string) (ast.ExprID, *ast.Builder, int) {
	t.Helper()
	p, b, bag := makeTestParser(input)
	exprID, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, b, bag.Len()
	}
	return exprID, b, bag.Len()
}

func TestParseExpr_ArithmeticPrecedence(t *testing.T) {
	// a + b * c must parse as a + (b * c): the root is BinaryAdd whose
	// right operand is a BinaryMul.
	id, b, errs := parseExprString(t, "a + b * c")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	root, ok := b.Exprs.Binary(id)
	if !ok || root.Op != ast.BinaryAdd {
		t.Fatalf("expected top-level '+', got %+v", root)
	}
	rhs, ok := b.Exprs.Binary(root.Right)
	if !ok || rhs.Op != ast.BinaryMul {
		t.Fatalf("expected right operand '*', got %+v", rhs)
	}
}

func TestParseExpr_ExponentRightAssociative(t *testing.T) {
	// a ** b ** c must parse as a ** (b ** c).
	id, b, errs := parseExprString(t, "a ** b ** c")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	root, ok := b.Exprs.Binary(id)
	if !ok || root.Op != ast.BinaryExp {
		t.Fatalf("expected top-level '**', got %+v", root)
	}
	if _, ok := b.Exprs.Ident(root.Left); !ok {
		t.Fatalf("expected left operand to be the bare identifier 'a'")
	}
	rhs, ok := b.Exprs.Binary(root.Right)
	if !ok || rhs.Op != ast.BinaryExp {
		t.Fatalf("expected right operand '**', got %+v", rhs)
	}
}

func TestParseExpr_TernaryRightAssociative(t *testing.T) {
	id, b, errs := parseExprString(t, "a ? b : c ? d : e")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	root, ok := b.Exprs.Ternary(id)
	if !ok {
		t.Fatalf("expected a ternary expression")
	}
	if _, ok := b.Exprs.Ternary(root.Else); !ok {
		t.Fatalf("expected the else-branch to itself be a ternary")
	}
}

func TestParseExpr_CallWithNamedArgs(t *testing.T) {
	id, b, errs := parseExprString(t, `f({x: 1, y: 2})`)
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	call, ok := b.Exprs.Call(id)
	if !ok || !call.NamedArgs {
		t.Fatalf("expected a named-argument call, got %+v", call)
	}
	args := b.Exprs.CallArgs(call)
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if b.Interner.MustLookup(args[0].Name) != "x" || b.Interner.MustLookup(args[1].Name) != "y" {
		t.Fatalf("unexpected arg names: %+v", args)
	}
}

func TestParseExpr_MemberAndIndexChain(t *testing.T) {
	id, b, errs := parseExprString(t, "a.b[0]")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	idx, ok := b.Exprs.Index(id)
	if !ok {
		t.Fatalf("expected top-level index expression")
	}
	if _, ok := b.Exprs.Member(idx.Base); !ok {
		t.Fatalf("expected the index base to be a member access")
	}
}

func TestParseExpr_UnitSuffix(t *testing.T) {
	id, b, errs := parseExprString(t, "1 ether")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	lit, ok := b.Exprs.Lit(id)
	if !ok || lit.Kind != ast.LitNumber {
		t.Fatalf("expected a number literal, got %+v", lit)
	}
}

func TestParseExpr_AssignmentIsRightAssociative(t *testing.T) {
	id, b, errs := parseExprString(t, "a = b += c")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	root, ok := b.Exprs.Assign(id)
	if !ok || root.Op != ast.AssignPlain {
		t.Fatalf("expected top-level '=', got %+v", root)
	}
	if _, ok := b.Exprs.Assign(root.Value); !ok {
		t.Fatalf("expected the right-hand side to itself be an assignment")
	}
}
