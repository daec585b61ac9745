package symbols

import (
	"testing"

	"github.com/sol-lang/solc/internal/source"
)

func TestStack_ResolveFindsNearestShadow(t *testing.T) {
	strings := source.NewInterner()
	x := strings.Intern("x")

	st := NewStack(source.Span{})
	outer := st.Declare(st.Current(), x, BindingParam, Binding{})
	if !outer.IsValid() {
		t.Fatalf("expected outer declaration to succeed")
	}

	block := st.Push(ScopeBlock, source.Span{})
	inner := st.Declare(block, x, BindingLocal, Binding{})

	if got := st.Resolve(block, x); got != inner {
		t.Fatalf("expected inner scope to resolve the shadowing declaration")
	}

	st.Pop()
	if got := st.Resolve(st.Current(), x); got != outer {
		t.Fatalf("expected popping the block to reveal the outer declaration again")
	}
}

func TestStack_LookupInScopeIgnoresOuter(t *testing.T) {
	strings := source.NewInterner()
	y := strings.Intern("y")

	st := NewStack(source.Span{})
	st.Declare(st.Current(), y, BindingParam, Binding{})

	block := st.Push(ScopeBlock, source.Span{})
	if ids := st.LookupInScope(block, y); len(ids) != 0 {
		t.Fatalf("expected no same-scope binding for y in the nested block, got %v", ids)
	}
	if got := st.Resolve(block, y); !got.IsValid() {
		t.Fatalf("expected the nested block to still resolve y from its parent")
	}
}

func TestStack_DuplicateDeclarationInSameScope(t *testing.T) {
	strings := source.NewInterner()
	z := strings.Intern("z")

	st := NewStack(source.Span{})
	first := st.Declare(st.Current(), z, BindingLocal, Binding{})
	second := st.Declare(st.Current(), z, BindingLocal, Binding{})

	ids := st.LookupInScope(st.Current(), z)
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Fatalf("expected both declarations recorded in source order, got %v", ids)
	}
}
