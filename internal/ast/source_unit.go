package ast

import "github.com/sol-lang/solc/internal/source"

// SourceUnit is the root of one file's AST: an ordered list of top-level items.
// Unlike the items, statements, and expressions it contains, a SourceUnit is
// not arena-allocated through a 1-based handle — it is addressed directly by
// the source.FileID that produced it, since the SourceMap already assigns a
// dense, append-only id to every file.
type SourceUnit struct {
	File  source.FileID
	Span  source.Span
	Items []ItemID
}

// SourceUnits stores one SourceUnit per parsed file, indexed by source.FileID.
type SourceUnits struct {
	units []*SourceUnit
}

// NewSourceUnits creates an empty SourceUnits table with capHint files of headroom.
func NewSourceUnits(capHint uint) *SourceUnits {
	return &SourceUnits{units: make([]*SourceUnit, 0, capHint)}
}

// New registers a fresh SourceUnit for file, overwriting any prior unit for
// the same id (re-parsing a file replaces its unit in place).
func (u *SourceUnits) New(file source.FileID, span source.Span) *SourceUnit {
	unit := &SourceUnit{File: file, Span: span, Items: make([]ItemID, 0)}
	idx := int(file)
	for len(u.units) <= idx {
		u.units = append(u.units, nil)
	}
	u.units[idx] = unit
	return unit
}

// Get returns the SourceUnit for file, or nil if none was registered.
func (u *SourceUnits) Get(file source.FileID) *SourceUnit {
	idx := int(file)
	if idx < 0 || idx >= len(u.units) {
		return nil
	}
	return u.units[idx]
}

// PushItem appends item to the unit for file.
func (u *SourceUnits) PushItem(file source.FileID, item ItemID) {
	unit := u.Get(file)
	unit.Items = append(unit.Items, item)
}
