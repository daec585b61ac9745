package hir

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/source"
)

// InheritRef is one entry of a contract's `is A, B(args)` list, captured
// before name resolution: Path is the raw path AST carried the base name
// under, resolved to a ContractID only once pass 4 (linearization) runs,
// since resolution needs the scope import propagation (pass 3) has already
// populated.
type InheritRef struct {
	Path     []source.Symbol
	Span     source.Span
	Resolved ContractID // NoContractID until pass 4 resolves it
}

// Contract is a lowered contract, interface, library, or abstract contract.
type Contract struct {
	ID       ContractID
	Source   SourceID
	Name     source.Symbol
	NameSpan source.Span
	Kind     ast.ContractKind
	Inherits []InheritRef

	// LinearizedBases is the C3 MRO: index 0 is always the contract itself,
	// followed by its ancestors furthest-derived first. Empty means
	// linearization failed and a diagnostic was already reported.
	LinearizedBases []ContractID

	// Items lists the contract's own (non-inherited) body items in
	// declaration order.
	Items []ItemID

	Ctor     FunctionID // NoFunctionID if the contract has no explicit constructor
	Fallback FunctionID
	Receive  FunctionID

	// Scope holds this contract's own declarations; pass 4 augments it in
	// place with inherited, non-constructor, derived-visible declarations
	// once linearization succeeds.
	Scope *Scope

	ASTItem ast.ItemID
	Span    source.Span
}

// Function is a lowered function, constructor, fallback, receive, or modifier.
// Owner is NoContractID for a file-level free function.
type Function struct {
	ID         FunctionID
	Source     SourceID
	Owner      ContractID
	Name       source.Symbol
	NameSpan   source.Span
	Kind       ast.FunctionKind
	Visibility ast.Visibility
	Mutability ast.Mutability
	Virtual    bool
	HasBody    bool
	ASTItem    ast.ItemID
	Span       source.Span
}

// Variable is a lowered contract-level state variable (or file-level
// constant, which Solidity also permits at the top level).
type Variable struct {
	ID         VariableID
	Source     SourceID
	Owner      ContractID
	Name       source.Symbol
	NameSpan   source.Span
	Visibility ast.Visibility
	Constant   bool
	Immutable  bool
	HasInit    bool
	ASTItem    ast.ItemID
	Span       source.Span
}

// Struct is a lowered struct declaration.
type Struct struct {
	ID       StructID
	Source   SourceID
	Owner    ContractID
	Name     source.Symbol
	NameSpan source.Span
	ASTItem  ast.ItemID
	Span     source.Span
}

// Enum is a lowered enum declaration.
type Enum struct {
	ID       EnumID
	Source   SourceID
	Owner    ContractID
	Name     source.Symbol
	NameSpan source.Span
	ASTItem  ast.ItemID
	Span     source.Span
}

// Udvt is a lowered `type Name is Underlying;` declaration.
type Udvt struct {
	ID       UdvtID
	Source   SourceID
	Owner    ContractID
	Name     source.Symbol
	NameSpan source.Span
	ASTItem  ast.ItemID
	Span     source.Span
}

// Error is a lowered custom error declaration.
type Error struct {
	ID       ErrorID
	Source   SourceID
	Owner    ContractID
	Name     source.Symbol
	NameSpan source.Span
	ASTItem  ast.ItemID
	Span     source.Span
}

// Event is a lowered event declaration.
type Event struct {
	ID        EventID
	Source    SourceID
	Owner     ContractID
	Name      source.Symbol
	NameSpan  source.Span
	Anonymous bool
	ASTItem   ast.ItemID
	Span      source.Span
}
