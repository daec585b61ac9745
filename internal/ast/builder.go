package ast

import (
	"github.com/sol-lang/solc/internal/source"
)

// Hints provides capacity hints for the builder's per-table arenas.
type Hints struct{ Units, Items, Stmts, Exprs, Types, Yul uint }

// Builder owns the tables that make up one GlobalCtxt's worth of parsed
// source: source units, items, statements, expressions, type expressions,
// inline-assembly sub-trees, and the string interner they all share.
type Builder struct {
	Units     *SourceUnits
	Items     *Items
	Stmts     *Stmts
	Exprs     *Exprs
	Types     *TypeExprs
	Yul       *Yuls
	Interner  *source.Interner
}

// NewBuilder creates a Builder configured with capacity hints and a shared
// string interner.
//
// If any hint field is zero, a sensible default capacity is applied
// (Units=64, Items=256, Stmts=256, Exprs=512, Types=256, Yul=64). If interner
// is nil, a new one is created.
func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Units == 0 {
		hints.Units = 1 << 6
	}
	if hints.Items == 0 {
		hints.Items = 1 << 8
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 9
	}
	if hints.Types == 0 {
		hints.Types = 1 << 8
	}
	if hints.Yul == 0 {
		hints.Yul = 1 << 6
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Units:    NewSourceUnits(hints.Units),
		Items:    NewItems(hints.Items),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Types:    NewTypeExprs(hints.Types),
		Yul:      NewYuls(hints.Yul),
		Interner: interner,
	}
}

// NewUnit starts a new source unit for file, returning the (empty) unit for
// the parser to populate via PushItem.
func (b *Builder) NewUnit(file source.FileID, span source.Span) *SourceUnit {
	return b.Units.New(file, span)
}

// PushItem appends item to the source unit for file.
func (b *Builder) PushItem(file source.FileID, item ItemID) {
	b.Units.PushItem(file, item)
}

// NewItem allocates a bare item node; per-kind constructors on b.Items
// (NewFunction, NewContract, ...) are the usual entry points, but parser code
// that has already built a payload can call this directly.
func (b *Builder) NewItem(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return b.Items.New(kind, span, payload)
}

// NewStmt allocates a bare statement node; see NewItem.
func (b *Builder) NewStmt(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return b.Stmts.new(kind, span, payload)
}

// Intern interns s, returning the Symbol shared by every AST node that
// spells the same identifier, path segment, or literal text.
func (b *Builder) Intern(s string) source.Symbol {
	return b.Interner.Intern(s)
}
