package types

import "github.com/sol-lang/solc/internal/source"

// FindField looks up a struct field by name, returning its type.
func (in *Interner) FindField(structType TypeID, name source.Symbol) (TypeID, bool) {
	info, ok := in.StructInfo(structType)
	if !ok {
		return NoTypeID, false
	}
	for _, f := range info.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return NoTypeID, false
}

// FindVariant looks up an enum variant by name, returning its ordinal.
func (in *Interner) FindVariant(enumType TypeID, name source.Symbol) (int, bool) {
	info, ok := in.EnumInfo(enumType)
	if !ok {
		return 0, false
	}
	for i, v := range info.Variants {
		if v == name {
			return i, true
		}
	}
	return 0, false
}

// Underlying resolves a UDVT to the elementary type it wraps, following
// nested UDVTs (not legal Solidity, but resolved defensively rather than
// looping) to their final elementary type. Every other kind resolves to
// itself.
func (in *Interner) Underlying(id TypeID) TypeID {
	seen := make(map[TypeID]bool)
	for {
		tt, ok := in.Lookup(id)
		if !ok || tt.Kind != KindUdvt || seen[id] {
			return id
		}
		seen[id] = true
		id = tt.Elem
	}
}
