package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// StructFieldID identifies one field of a StructDecl.
type StructFieldID uint32

// NoStructFieldID indicates no struct field.
const NoStructFieldID StructFieldID = 0

// IsValid reports whether id refers to an allocated struct field.
func (id StructFieldID) IsValid() bool { return id != NoStructFieldID }

// StructField is one member of a `struct { ... }` declaration.
type StructField struct {
	Name     source.Symbol
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

// StructDecl is the payload for an ItemStruct.
type StructDecl struct {
	Name        source.Symbol
	NameSpan    source.Span
	FieldsStart StructFieldID
	FieldsCount uint32
	Span        source.Span
}

// Struct returns the StructDecl for id, or nil/false if id is not a struct.
func (i *Items) Struct(id ItemID) (*StructDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemStruct {
		return nil, false
	}
	return i.Structs.Get(uint32(item.Payload)), true
}

// StructFields collects a struct's field list, in declaration order.
func (i *Items) StructFields(decl *StructDecl) []StructField {
	if decl.FieldsCount == 0 || !decl.FieldsStart.IsValid() {
		return nil
	}
	out := make([]StructField, 0, decl.FieldsCount)
	base := uint32(decl.FieldsStart)
	for offset := range decl.FieldsCount {
		out = append(out, *i.StructFieldsArena.Get(base+offset))
	}
	return out
}

// NewStruct allocates a struct item.
func (i *Items) NewStruct(name source.Symbol, nameSpan source.Span, fields []StructField, span source.Span) ItemID {
	var start StructFieldID
	count, err := safecast.Conv[uint32](len(fields))
	if err != nil {
		panic(fmt.Errorf("struct field count overflow: %w", err))
	}
	if count > 0 {
		for idx, f := range fields {
			id := StructFieldID(i.StructFieldsArena.Allocate(f))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(i.Structs.Allocate(StructDecl{
		Name:        name,
		NameSpan:    nameSpan,
		FieldsStart: start,
		FieldsCount: count,
		Span:        span,
	}))
	return i.New(ItemStruct, span, payload)
}

// EnumVariantID identifies one member of an EnumDecl.
type EnumVariantID uint32

// NoEnumVariantID indicates no enum variant.
const NoEnumVariantID EnumVariantID = 0

// IsValid reports whether id refers to an allocated enum variant.
func (id EnumVariantID) IsValid() bool { return id != NoEnumVariantID }

// EnumVariant is one member of an `enum { ... }` declaration.
type EnumVariant struct {
	Name source.Symbol
	Span source.Span
}

// EnumDecl is the payload for an ItemEnum.
type EnumDecl struct {
	Name          source.Symbol
	NameSpan      source.Span
	VariantsStart EnumVariantID
	VariantsCount uint32
	Span          source.Span
}

// Enum returns the EnumDecl for id, or nil/false if id is not an enum.
func (i *Items) Enum(id ItemID) (*EnumDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemEnum {
		return nil, false
	}
	return i.Enums.Get(uint32(item.Payload)), true
}

// EnumVariants collects an enum's member list, in declaration order (the
// order that defines each member's underlying integer value).
func (i *Items) EnumVariants(decl *EnumDecl) []EnumVariant {
	if decl.VariantsCount == 0 || !decl.VariantsStart.IsValid() {
		return nil
	}
	out := make([]EnumVariant, 0, decl.VariantsCount)
	base := uint32(decl.VariantsStart)
	for offset := range decl.VariantsCount {
		out = append(out, *i.EnumVariantsArena.Get(base+offset))
	}
	return out
}

// NewEnum allocates an enum item.
func (i *Items) NewEnum(name source.Symbol, nameSpan source.Span, variants []EnumVariant, span source.Span) ItemID {
	var start EnumVariantID
	count, err := safecast.Conv[uint32](len(variants))
	if err != nil {
		panic(fmt.Errorf("enum variant count overflow: %w", err))
	}
	if count > 0 {
		for idx, v := range variants {
			id := EnumVariantID(i.EnumVariantsArena.Allocate(v))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(i.Enums.Allocate(EnumDecl{
		Name:          name,
		NameSpan:      nameSpan,
		VariantsStart: start,
		VariantsCount: count,
		Span:          span,
	}))
	return i.New(ItemEnum, span, payload)
}

// UdvtDecl is the payload for an ItemUdvt: `type Name is UnderlyingType;`.
type UdvtDecl struct {
	Name       source.Symbol
	NameSpan   source.Span
	Underlying TypeID
	Span       source.Span
}

// Udvt returns the UdvtDecl for id, or nil/false if id is not a UDVT.
func (i *Items) Udvt(id ItemID) (*UdvtDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemUdvt {
		return nil, false
	}
	return i.Udvts.Get(uint32(item.Payload)), true
}

// NewUdvt allocates a user-defined-value-type item.
func (i *Items) NewUdvt(name source.Symbol, nameSpan source.Span, underlying TypeID, span source.Span) ItemID {
	payload := PayloadID(i.Udvts.Allocate(UdvtDecl{
		Name:       name,
		NameSpan:   nameSpan,
		Underlying: underlying,
		Span:       span,
	}))
	return i.New(ItemUdvt, span, payload)
}
