package symbols

import (
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/types"
)

// ScopeKind distinguishes the statement form that opened a scope, purely
// for diagnostics ("declared in an outer block" vs "declared in the
// function signature").
type ScopeKind uint8

const (
	// ScopeFunction is the outermost scope of a function/modifier body,
	// holding its parameters and named returns.
	ScopeFunction ScopeKind = iota
	// ScopeBlock is a `{ ... }` or `unchecked { ... }` nested scope.
	ScopeBlock
	// ScopeLoop is a for/while/do-while body, tracked separately from
	// ScopeBlock only so a for-loop's init-statement variable (`for (uint
	// i = 0; ...)`) scopes over the condition/post/body but not beyond.
	ScopeLoop
	// ScopeCatch is a try/catch clause's parameter list.
	ScopeCatch
)

// BindingKind classifies what introduced a Binding.
type BindingKind uint8

const (
	// BindingParam is a function parameter or named return.
	BindingParam BindingKind = iota
	// BindingLocal is a `T name = ...;` local variable declaration.
	BindingLocal
	// BindingCatchParam is a `catch (T name)` clause parameter.
	BindingCatchParam
)

// Binding is one name introduced into a scope.
type Binding struct {
	ID      BindingID
	Name    source.Symbol
	Kind    BindingKind
	Type    types.TypeID
	Span    source.Span
	Scope   ScopeID
	Mutable bool
}

// Scope is one lexical block within a Stack: a set of bindings plus a
// parent pointer, so Resolve can walk outward until it reaches the function
// scope without a hit.
type Scope struct {
	ID       ScopeID
	Kind     ScopeKind
	Parent   ScopeID
	Span     source.Span
	order    []source.Symbol
	bindings map[source.Symbol][]BindingID
}
