package sema

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
)

// checkLibraryStateVars flags a non-constant, non-immutable state variable
// declared directly on a library: libraries are stateless, delegatecall-free
// code modules, so every variable they declare must fold to a compile-time
// or deploy-time constant.
func (b *binder) checkLibraryStateVars() {
	for _, v := range b.hctx.Variables() {
		if !v.Owner.IsValid() {
			continue
		}
		owner := b.hctx.Contract(v.Owner)
		if owner == nil || owner.Kind != ast.ContractKindLibrary {
			continue
		}
		if v.Constant || v.Immutable {
			continue
		}
		pf := b.pfFor(v.Source)
		if pf == nil {
			continue
		}
		b.dctxFor(pf).NewError(diag.SemaLibraryHasStateVars, "libraries cannot have non-constant state variables").
			Span(v.Span).Emit()
	}
}

// checkInterfaceFunctionBody flags a function body declared on an
// interface: every interface function must be an external declaration with
// no implementation.
func (b *binder) checkInterfaceFunctionBody() {
	for _, fn := range b.hctx.Functions() {
		if !fn.Owner.IsValid() || !fn.HasBody {
			continue
		}
		owner := b.hctx.Contract(fn.Owner)
		if owner == nil || owner.Kind != ast.ContractKindInterface {
			continue
		}
		pf := b.pfFor(fn.Source)
		if pf == nil {
			continue
		}
		b.dctxFor(pf).NewError(diag.SemaInterfaceFunctionBody, "interface functions cannot have an implementation").
			Span(fn.Span).Emit()
	}
}

// checkConstructorVisibility flags a constructor declared external: a
// constructor only ever runs once at deployment and is never called as a
// message, so solc restricts it to public or internal (internal marking an
// abstract contract's constructor, only reachable from a derived
// contract's own constructor).
func (b *binder) checkConstructorVisibility() {
	for _, fn := range b.hctx.Functions() {
		if fn.Kind != ast.FunctionKindConstructor {
			continue
		}
		if fn.Visibility != ast.VisExternal {
			continue
		}
		pf := b.pfFor(fn.Source)
		if pf == nil {
			continue
		}
		b.dctxFor(pf).NewError(diag.SemaConstructorVisibility, "constructor cannot be external").
			Span(fn.Span).Emit()
	}
}

// checkModifiers resolves every function's modifier-invocation list against
// the function's own contract scope, distinguishing an actual modifier
// reference from a base-constructor argument list (`constructor(uint x)
// Base(x) {}` lists Base alongside any real modifiers in the same AST
// slice) by checking the owning contract's direct base list
// (owner.Inherits) first.
// Anything left over that doesn't resolve to either is an undeclared
// modifier.
func (b *binder) checkModifiers() {
	for _, fn := range b.hctx.Functions() {
		if !fn.Owner.IsValid() {
			continue
		}
		pf := b.pfFor(fn.Source)
		if pf == nil {
			continue
		}
		decl, ok := pf.Builder.Items.Function(fn.ASTItem)
		if !ok || len(decl.Modifiers) == 0 {
			continue
		}
		owner := b.hctx.Contract(fn.Owner)
		if owner == nil {
			continue
		}
		dctx := b.dctxFor(pf)
		scopes := scopeChain(b.hctx, fn.Owner, b.hctx.Source(fn.Source))
		for _, inv := range decl.Modifiers {
			if isBaseName(owner, inv.Path) {
				continue
			}
			res, ok := resolvePath(b.hctx, scopes, inv.Path)
			if ok && res.Kind == hir.ResItem && res.Item.Kind == hir.ItemKindFunction {
				if callee := b.hctx.Function(hir.FunctionID(res.Item.Index)); callee != nil && callee.Kind == ast.FunctionKindModifier {
					continue
				}
			}
			dctx.NewError(diag.SemaModifierNotFound, "undeclared modifier").Span(inv.Span).Emit()
		}
	}
}

// isBaseName reports whether path names one of owner's direct bases, which
// is how a base-constructor argument supply (`Base(x)` after a derived
// constructor's parameter list) reads identically to a modifier invocation
// at the AST level: both are ModifierInvocation entries distinguished only
// by what their path resolves to.
func isBaseName(owner *hir.Contract, path []source.Symbol) bool {
	if len(path) == 0 {
		return false
	}
	name := path[len(path)-1]
	for _, base := range owner.Inherits {
		if len(base.Path) == 0 {
			continue
		}
		if base.Path[len(base.Path)-1] == name {
			return true
		}
	}
	return false
}

// checkModifierPlaceholders flags a modifier body with no `_;` placeholder
// statement anywhere in its top-level statement list. This is a shallow
// statement-only walk: it descends into block/unchecked/if/for/while/
// do-while/try bodies looking for a bare `_` expression statement, but does
// not look inside expressions (the placeholder is only ever legal as a
// whole statement, never as a subexpression, so nothing deeper is needed).
func (b *binder) checkModifierPlaceholders() {
	for _, fn := range b.hctx.Functions() {
		if fn.Kind != ast.FunctionKindModifier || !fn.HasBody {
			continue
		}
		pf := b.pfFor(fn.Source)
		if pf == nil {
			continue
		}
		decl, ok := pf.Builder.Items.Function(fn.ASTItem)
		if !ok || !decl.Body.IsValid() {
			continue
		}
		if !stmtHasPlaceholder(pf, decl.Body) {
			b.dctxFor(pf).NewError(diag.SemaModifierMissingPlaceholder, "modifier is missing a placeholder statement").
				Span(fn.Span).Emit()
		}
	}
}

func stmtHasPlaceholder(pf *pcontext.ParsedFile, id ast.StmtID) bool {
	node := pf.Builder.Stmts.Get(id)
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.StmtBlock, ast.StmtUnchecked:
		block, _ := pf.Builder.Stmts.Block(id)
		for _, s := range block.Stmts {
			if stmtHasPlaceholder(pf, s) {
				return true
			}
		}
	case ast.StmtIf:
		ifData, _ := pf.Builder.Stmts.If(id)
		if ifData.Then.IsValid() && stmtHasPlaceholder(pf, ifData.Then) {
			return true
		}
		if ifData.Else.IsValid() && stmtHasPlaceholder(pf, ifData.Else) {
			return true
		}
	case ast.StmtFor:
		forData, _ := pf.Builder.Stmts.For(id)
		return forData.Body.IsValid() && stmtHasPlaceholder(pf, forData.Body)
	case ast.StmtWhile, ast.StmtDoWhile:
		whileData, _ := pf.Builder.Stmts.While(id)
		return whileData.Body.IsValid() && stmtHasPlaceholder(pf, whileData.Body)
	case ast.StmtTry:
		tryData, _ := pf.Builder.Stmts.Try(id)
		if tryData.Body.IsValid() && stmtHasPlaceholder(pf, tryData.Body) {
			return true
		}
		for _, clause := range pf.Builder.Stmts.TryClausesOf(tryData) {
			if clause.Body.IsValid() && stmtHasPlaceholder(pf, clause.Body) {
				return true
			}
		}
	case ast.StmtExpr:
		exprData, _ := pf.Builder.Stmts.ExprStmt(id)
		return isPlaceholderExpr(pf, exprData.Expr)
	}
	return false
}

func isPlaceholderExpr(pf *pcontext.ParsedFile, id ast.ExprID) bool {
	ident, ok := pf.Builder.Exprs.Ident(id)
	if !ok {
		return false
	}
	name, ok := pf.Builder.Interner.Lookup(ident.Name)
	return ok && name == "_"
}
