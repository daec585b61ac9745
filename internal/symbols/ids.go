// Package symbols resolves statement- and expression-level names inside a
// function or modifier body: parameters, local variable declarations, and
// the block/loop nesting that determines where each is visible and where it
// shadows an outer binding. This is deliberately separate from hir.Scope,
// which only ever holds item/namespace-level declarations (contracts,
// functions, state variables, types): the HIR doesn't lower bodies (see the
// hir package doc), so nothing upstream of sema ever builds a binding stack
// for the statements inside one.
package symbols

// ScopeID identifies a scope within one Stack.
type ScopeID uint32

// NoScopeID marks the absence of a scope reference.
const NoScopeID ScopeID = 0

// IsValid reports whether id refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// BindingID identifies a local binding (parameter or variable declaration)
// within one Stack.
type BindingID uint32

// NoBindingID marks the absence of a binding reference.
const NoBindingID BindingID = 0

// IsValid reports whether id refers to an allocated binding.
func (id BindingID) IsValid() bool { return id != NoBindingID }
