package sema

import (
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/source"
)

// bindVariables resolves every state variable's declared type. Run after
// every nominal type (including UDVTs) is registered, so a state variable
// can name any struct/enum/contract/udvt regardless of where it sits in
// source order relative to its declaration.
func (b *binder) bindVariables() {
	for _, v := range b.hctx.Variables() {
		pf := b.pfFor(v.Source)
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		decl, ok := pf.Builder.Items.Variable(v.ASTItem)
		if !ok {
			continue
		}
		scopes := scopeChain(b.hctx, v.Owner, b.hctx.Source(v.Source))
		b.resolveType(pf, scopes, decl.Type, dctx)
	}
}

// bindFunctionSignatures resolves every parameter and return type of every
// function, constructor, fallback, receive, and modifier. Modifiers have no
// return list but do carry parameters (`modifier onlyAfter(uint t)`), so
// this walks the same FunctionDecl shape uniformly.
func (b *binder) bindFunctionSignatures() {
	for _, fn := range b.hctx.Functions() {
		pf := b.pfFor(fn.Source)
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		decl, ok := pf.Builder.Items.Function(fn.ASTItem)
		if !ok {
			continue
		}
		scopes := scopeChain(b.hctx, fn.Owner, b.hctx.Source(fn.Source))
		for _, p := range pf.Builder.Items.FunctionParams(decl) {
			b.resolveType(pf, scopes, p.Type, dctx)
		}
		for _, r := range pf.Builder.Items.FunctionReturns(decl) {
			b.resolveType(pf, scopes, r.Type, dctx)
		}
	}
}

// bindErrorsAndEvents resolves every custom error's and event's parameter
// types. Both are file- or contract-level declarations with no HIR
// back-reference beyond their own ASTItem, so this reads the AST directly
// the same way bindFunctionSignatures does.
func (b *binder) bindErrorsAndEvents() {
	for _, e := range b.hctx.Errors() {
		pf := b.pfFor(e.Source)
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		decl, ok := pf.Builder.Items.Error(e.ASTItem)
		if !ok {
			continue
		}
		scopes := scopeChain(b.hctx, e.Owner, b.hctx.Source(e.Source))
		for _, p := range pf.Builder.Items.ErrorParams(decl) {
			b.resolveType(pf, scopes, p.Type, dctx)
		}
	}

	for _, ev := range b.hctx.Events() {
		pf := b.pfFor(ev.Source)
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		decl, ok := pf.Builder.Items.Event(ev.ASTItem)
		if !ok {
			continue
		}
		scopes := scopeChain(b.hctx, ev.Owner, b.hctx.Source(ev.Source))
		for _, p := range pf.Builder.Items.EventParams(decl) {
			b.resolveType(pf, scopes, p.Type, dctx)
		}
	}
}

// bindUsingFor resolves the `for T` type of every file-level using
// directive and checks each attached library function's first parameter
// (the implicit receiver a `x.f(...)` call binds x to) against T, emitting
// diag.SemaUsingForTypeMismatch on a mismatch. `using Lib for *` directives
// have no single T to check against and are skipped; per-call resolution
// for those, like all member-call resolution, is left to whatever
// expression-level pass eventually walks bodies (see the hir package doc:
// bodies aren't lowered, so none exists yet in this compiler).
func (b *binder) bindUsingFor() {
	for _, src := range b.hctx.Sources() {
		pf := b.parsed[src.File]
		if pf == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		for _, astItem := range src.Using {
			decl, ok := pf.Builder.Items.Using(astItem)
			if !ok || decl.ForAny || !decl.ForType.IsValid() || decl.LibraryPath == nil {
				continue
			}
			scopes := scopeChain(b.hctx, hir.NoContractID, src)
			forTID := b.resolveType(pf, scopes, decl.ForType, dctx)
			if !forTID.IsValid() {
				continue
			}
			res, ok := resolvePath(b.hctx, scopes, decl.LibraryPath)
			if !ok || res.Kind != hir.ResItem || res.Item.Kind != hir.ItemKindContract {
				continue
			}
			lib := hir.ContractID(res.Item.Index)
			for _, fn := range b.hctx.Functions() {
				if fn.Owner != lib {
					continue
				}
				libDecl, ok := pf.Builder.Items.Function(fn.ASTItem)
				if !ok {
					continue
				}
				params := pf.Builder.Items.FunctionParams(libDecl)
				if len(params) == 0 {
					continue
				}
				selfTID := b.resolveType(pf, scopeChain(b.hctx, lib, src), params[0].Type, dctx)
				if selfTID.IsValid() && selfTID != forTID && !b.interner.IsImplicitlyConvertible(forTID, selfTID) {
					span := source.Span{}
					if node := pf.Builder.Types.Get(decl.ForType); node != nil {
						span = node.Span
					}
					dctx.NewError(diag.SemaUsingForTypeMismatch, "using-for directive does not apply to this type").
						Span(span).Emit()
				}
			}
		}
	}
}
