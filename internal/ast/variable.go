package ast

import "github.com/sol-lang/solc/internal/source"

// VariableDecl is the payload for an ItemVariable: a contract-level state
// variable declaration. (A local variable declared inside a function body is
// a StmtVarDecl, not an Item — see stmt.go.)
type VariableDecl struct {
	Name       source.Symbol
	NameSpan   source.Span
	Type       TypeID
	Visibility Visibility
	Constant   bool
	Immutable  bool
	// Init is NoExprID if the variable has no initializer.
	Init ExprID
	Span source.Span
}

// Variable returns the VariableDecl for id, or nil/false if id is not a variable.
func (i *Items) Variable(id ItemID) (*VariableDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemVariable {
		return nil, false
	}
	return i.Variables.Get(uint32(item.Payload)), true
}

// NewVariable allocates a state-variable item.
func (i *Items) NewVariable(v VariableDecl, span source.Span) ItemID {
	v.Span = span
	payload := PayloadID(i.Variables.Allocate(v))
	return i.New(ItemVariable, span, payload)
}
