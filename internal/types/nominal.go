package types

import "github.com/sol-lang/solc/internal/source"

// FieldInfo is one field of a struct type.
type FieldInfo struct {
	Name source.Symbol
	Type TypeID
}

// StructInfo describes a registered struct type. Owner carries the
// originating hir.StructID as a plain uint32 so this package stays free of
// an import-cycle-prone dependency on internal/hir.
type StructInfo struct {
	Name   source.Symbol
	Owner  uint32
	Fields []FieldInfo
	Span   source.Span
}

// EnumInfo describes a registered enum type.
type EnumInfo struct {
	Name     source.Symbol
	Owner    uint32
	Variants []source.Symbol
	Span     source.Span
}

// ContractInfo describes a registered contract/interface/library type.
type ContractInfo struct {
	Name  source.Symbol
	Owner uint32
	Span  source.Span
}

// UdvtInfo describes a registered user-defined value type (`type X is T`).
type UdvtInfo struct {
	Name       source.Symbol
	Owner      uint32
	Underlying TypeID
	Span       source.Span
}

// RegisterStruct allocates a brand-new struct type. Fields are attached
// afterward via SetStructFields, since a struct's field types may
// themselves reference the struct being declared (recursive types through
// an array/mapping indirection) or a sibling struct declared later in
// source order.
func (in *Interner) RegisterStruct(name source.Symbol, owner uint32, span source.Span) TypeID {
	slot := appendSlot(&in.structs, StructInfo{Name: name, Owner: owner, Span: span})
	return in.internRaw(Type{Kind: KindStruct, Payload: slot})
}

// SetStructFields attaches field information to a previously registered
// struct type.
func (in *Interner) SetStructFields(id TypeID, fields []FieldInfo) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindStruct || int(tt.Payload) >= len(in.structs) {
		return
	}
	in.structs[tt.Payload].Fields = fields
}

// StructInfo returns the registered struct descriptor for id.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindStruct || tt.Payload == 0 || int(tt.Payload) >= len(in.structs) {
		return nil, false
	}
	return &in.structs[tt.Payload], true
}

// RegisterEnum allocates a new enum type with its variants in declaration
// order (Solidity enums have no payload, only an ordinal).
func (in *Interner) RegisterEnum(name source.Symbol, owner uint32, variants []source.Symbol, span source.Span) TypeID {
	slot := appendSlot(&in.enums, EnumInfo{Name: name, Owner: owner, Variants: variants, Span: span})
	return in.internRaw(Type{Kind: KindEnum, Payload: slot})
}

// EnumInfo returns the registered enum descriptor for id.
func (in *Interner) EnumInfo(id TypeID) (*EnumInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindEnum || tt.Payload == 0 || int(tt.Payload) >= len(in.enums) {
		return nil, false
	}
	return &in.enums[tt.Payload], true
}

// RegisterContract allocates a new contract/interface/library type.
func (in *Interner) RegisterContract(name source.Symbol, owner uint32, span source.Span) TypeID {
	slot := appendSlot(&in.contracts, ContractInfo{Name: name, Owner: owner, Span: span})
	return in.internRaw(Type{Kind: KindContract, Payload: slot})
}

// ContractInfo returns the registered contract descriptor for id.
func (in *Interner) ContractInfo(id TypeID) (*ContractInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindContract || tt.Payload == 0 || int(tt.Payload) >= len(in.contracts) {
		return nil, false
	}
	return &in.contracts[tt.Payload], true
}

// RegisterUdvt allocates a new user-defined value type wrapping underlying.
func (in *Interner) RegisterUdvt(name source.Symbol, owner uint32, underlying TypeID, span source.Span) TypeID {
	slot := appendSlot(&in.udvts, UdvtInfo{Name: name, Owner: owner, Underlying: underlying, Span: span})
	return in.internRaw(Type{Kind: KindUdvt, Elem: underlying, Payload: slot})
}

// UdvtInfo returns the registered UDVT descriptor for id.
func (in *Interner) UdvtInfo(id TypeID) (*UdvtInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindUdvt || tt.Payload == 0 || int(tt.Payload) >= len(in.udvts) {
		return nil, false
	}
	return &in.udvts[tt.Payload], true
}

// appendSlot appends v to *slots and returns its index as a uint32 payload.
func appendSlot[T any](slots *[]T, v T) uint32 {
	idx := uint32(len(*slots))
	*slots = append(*slots, v)
	return idx
}
