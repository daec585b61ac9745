package sema

import (
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/types"
)

// registerNominals assigns every enum, contract, and struct a TypeID before
// any type expression is resolved, since a field or signature can name a
// sibling type declared anywhere in the program, including one that
// appears later in its own file or in a different one.
//
// Enums register in one step since a variant list carries no further type
// references. Structs register as an empty placeholder here and get their
// field list filled in by bindStructFields once every nominal type (so any
// field referencing any other struct/enum/contract/udvt) is registered.
func (b *binder) registerNominals() {
	for _, en := range b.hctx.Enums() {
		pf := b.pfFor(en.Source)
		if pf == nil {
			continue
		}
		decl, ok := pf.Builder.Items.Enum(en.ASTItem)
		if !ok {
			continue
		}
		variants := pf.Builder.Items.EnumVariants(decl)
		names := make([]source.Symbol, len(variants))
		for i, v := range variants {
			names[i] = v.Name
		}
		item := hir.ItemID{Kind: hir.ItemKindEnum, Index: uint32(en.ID)}
		b.nominal[item] = b.interner.RegisterEnum(en.Name, uint32(en.ID), names, en.Span)
	}

	for _, c := range b.hctx.Contracts() {
		item := hir.ItemID{Kind: hir.ItemKindContract, Index: uint32(c.ID)}
		b.nominal[item] = b.interner.RegisterContract(c.Name, uint32(c.ID), c.Span)
	}

	for _, st := range b.hctx.Structs() {
		item := hir.ItemID{Kind: hir.ItemKindStruct, Index: uint32(st.ID)}
		b.nominal[item] = b.interner.RegisterStruct(st.Name, uint32(st.ID), st.Span)
	}
}

// registerUdvts binds every UDVT's underlying elementary type and registers
// it. This runs after registerNominals and before bindStructFields, so a
// struct field can already name a UDVT declared anywhere in the program.
// No forward-reference problem arises the way it would for struct-in-struct
// fields: solc restricts a UDVT's underlying type to an elementary value
// type, so resolving it never needs another nominal type to already exist.
func (b *binder) registerUdvts() {
	for _, u := range b.hctx.Udvts() {
		pf := b.pfFor(u.Source)
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		decl, ok := pf.Builder.Items.Udvt(u.ASTItem)
		if !ok {
			continue
		}
		scopes := scopeChain(b.hctx, u.Owner, b.hctx.Source(u.Source))
		underlying := b.resolveType(pf, scopes, decl.Underlying, dctx)
		item := hir.ItemID{Kind: hir.ItemKindUdvt, Index: uint32(u.ID)}
		b.nominal[item] = b.interner.RegisterUdvt(u.Name, uint32(u.ID), underlying, u.Span)
	}
}

// bindStructFields fills in each struct's field list now that every
// nominal type in the program (including UDVTs) has a TypeID, so a field
// can reference any of them regardless of declaration order.
func (b *binder) bindStructFields() {
	for _, st := range b.hctx.Structs() {
		pf := b.pfFor(st.Source)
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		decl, ok := pf.Builder.Items.Struct(st.ASTItem)
		if !ok {
			continue
		}
		scopes := scopeChain(b.hctx, st.Owner, b.hctx.Source(st.Source))
		astFields := pf.Builder.Items.StructFields(decl)
		fields := make([]types.FieldInfo, 0, len(astFields))
		for _, f := range astFields {
			tid := b.resolveType(pf, scopes, f.Type, dctx)
			fields = append(fields, types.FieldInfo{Name: f.Name, Type: tid})
		}
		item := hir.ItemID{Kind: hir.ItemKindStruct, Index: uint32(st.ID)}
		structTID, ok := b.nominal[item]
		if !ok {
			continue
		}
		b.interner.SetStructFields(structTID, fields)
	}
}
