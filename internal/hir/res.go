package hir

import "github.com/sol-lang/solc/internal/source"

// ResKind tags which variant of Res a value holds.
type ResKind uint8

const (
	// ResItem resolves to a concrete HIR item.
	ResItem ResKind = iota
	// ResNamespace resolves to an imported source treated as a namespace
	// (`import * as N from "x"` or `import "x" as N`).
	ResNamespace
	// ResBuiltin resolves to a compiler-known builtin (a global function,
	// global variable, or builtin module such as `abi`/`block`/`msg`).
	ResBuiltin
	// ResErr marks a resolution that failed; carried instead of omitting the
	// declaration entirely so that later lookups don't also fail with a
	// confusing "not found" and cascade a second diagnostic.
	ResErr
)

// Builtin names one of the compiler's built-in globals or global modules.
type Builtin uint16

const (
	BuiltinNone Builtin = iota
	BuiltinAbi
	BuiltinBlock
	BuiltinMsg
	BuiltinTx
	BuiltinRequire
	BuiltinAssert
	BuiltinRevert
	BuiltinSelfdestruct
	BuiltinKeccak256
	BuiltinSha256
	BuiltinRipemd160
	BuiltinEcrecover
	BuiltinAddmod
	BuiltinMulmod
	BuiltinBlockhash
	BuiltinGasleft
	BuiltinThis
	BuiltinSuper
)

// Res is a resolution result: exactly one of its Kind-selected fields is
// meaningful. It never carries a string: by the time lowering produces one,
// name binding is already done.
type Res struct {
	Kind    ResKind
	Item    ItemID
	Source  SourceID
	Builtin Builtin
}

// ItemRes builds a Res pointing at a concrete item.
func ItemRes(id ItemID) Res { return Res{Kind: ResItem, Item: id} }

// NamespaceRes builds a Res pointing at an imported source used as a namespace.
func NamespaceRes(id SourceID) Res { return Res{Kind: ResNamespace, Source: id} }

// BuiltinRes builds a Res pointing at a compiler builtin.
func BuiltinRes(b Builtin) Res { return Res{Kind: ResBuiltin, Builtin: b} }

// ErrRes builds a poisoned Res, installed so that a name already reported as
// unresolved doesn't also surface a second "undeclared identifier" at every
// use site.
func ErrRes() Res { return Res{Kind: ResErr} }

func (r Res) IsErr() bool { return r.Kind == ResErr }

// Declaration pairs a Res with the span of the declaration (or import
// clause) that introduced it into a scope.
type Declaration struct {
	Res  Res
	Span source.Span
}

// Scope is an ordered multimap from name to every declaration introduced
// under that name, preserving insertion order so diagnostics about the
// "first" and "previous" declaration are stable and source-order driven.
type Scope struct {
	order []source.Symbol
	decls map[source.Symbol][]Declaration
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{decls: make(map[source.Symbol]([]Declaration))}
}

// Declare appends decl under name, preserving every prior declaration so
// overload sets and shadowing conflicts can both be recovered later.
func (s *Scope) Declare(name source.Symbol, decl Declaration) {
	if _, ok := s.decls[name]; !ok {
		s.order = append(s.order, name)
	}
	s.decls[name] = append(s.decls[name], decl)
}

// Lookup returns every declaration registered under name, in insertion order.
func (s *Scope) Lookup(name source.Symbol) []Declaration {
	return s.decls[name]
}

// Names returns every declared name, in the order it was first declared.
func (s *Scope) Names() []source.Symbol {
	return s.order
}
