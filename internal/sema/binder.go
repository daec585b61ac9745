// Package sema resolves every declared-type annotation the HIR carries by
// reference (struct fields, function signatures, state variables, event and
// error parameters, using-for targets) into a types.TypeID, and runs the
// semantic checks that need a fully name-resolved and type-bound program to
// decide rather than just the per-item shape pass 1-4 already checked.
//
// Function and modifier bodies are never lowered into HIR (see the hir
// package doc); checks here that need to look inside a body read it
// straight from the ast.Stmts/ast.Exprs tables the owning source's
// pcontext.ParsedFile still holds, the same way hir's own modifier/body
// inspection does.
package sema

import (
	"strconv"
	"strings"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/types"
)

// typeExprKey identifies one ast.TypeExpr node: the file it was parsed from
// plus its arena id. A given node always resolves to the same TypeID
// regardless of which declaration's binding walk reaches it first, so the
// binder caches on this pair rather than re-resolving shared subtrees.
type typeExprKey struct {
	file source.FileID
	id   ast.TypeID
}

// binder threads the type interner, the finished HIR, and per-file AST
// access through every Run sub-pass.
type binder struct {
	hctx     *hir.Context
	parsed   map[source.FileID]*pcontext.ParsedFile
	interner *types.Interner

	// nominal maps a struct/enum/contract/udvt HIR item to the TypeID its
	// declaration was registered under.
	nominal map[hir.ItemID]types.TypeID

	resolved map[typeExprKey]types.TypeID
}

func newBinder(hctx *hir.Context, parsed map[source.FileID]*pcontext.ParsedFile) *binder {
	return &binder{
		hctx:     hctx,
		parsed:   parsed,
		interner: types.NewInterner(),
		nominal:  make(map[hir.ItemID]types.TypeID),
		resolved: make(map[typeExprKey]types.TypeID),
	}
}

func (b *binder) pfFor(src hir.SourceID) *pcontext.ParsedFile {
	s := b.hctx.Source(src)
	if s == nil {
		return nil
	}
	return b.parsed[s.File]
}

func (b *binder) dctxFor(pf *pcontext.ParsedFile) *diag.DiagCtxt {
	return diag.NewDiagCtxt(pf.Bag)
}

// scopeChain returns the scopes a type name should be looked up against, in
// priority order: the declaring contract's own (inheritance-augmented)
// scope first, falling back to the file-level scope so a contract member
// can still name a sibling top-level struct/enum/udvt without qualifying it.
func scopeChain(hctx *hir.Context, owner hir.ContractID, src *hir.Source) []*hir.Scope {
	var chain []*hir.Scope
	if owner.IsValid() {
		if c := hctx.Contract(owner); c != nil {
			chain = append(chain, c.Scope)
		}
	}
	if src != nil {
		chain = append(chain, src.Scope)
	}
	return chain
}

// resolvePath looks up a (possibly namespaced or contract-qualified) path
// against the given scopes in order, walking any remaining segments through
// whatever namespace or contract the first segment resolves to.
func resolvePath(hctx *hir.Context, scopes []*hir.Scope, path []source.Symbol) (hir.Res, bool) {
	if len(path) == 0 {
		return hir.Res{}, false
	}
	var decls []hir.Declaration
	for _, scope := range scopes {
		if scope == nil {
			continue
		}
		if d := scope.Lookup(path[0]); len(d) > 0 {
			decls = d
			break
		}
	}
	if len(decls) == 0 {
		return hir.Res{}, false
	}
	res := decls[0].Res
	for _, seg := range path[1:] {
		var next []hir.Declaration
		switch res.Kind {
		case hir.ResNamespace:
			if ns := hctx.Source(res.Source); ns != nil {
				next = ns.Scope.Lookup(seg)
			}
		case hir.ResItem:
			if res.Item.Kind == hir.ItemKindContract {
				if c := hctx.Contract(hir.ContractID(res.Item.Index)); c != nil {
					next = c.Scope.Lookup(seg)
				}
			}
		}
		if len(next) == 0 {
			return hir.Res{}, false
		}
		res = next[0].Res
	}
	return res, true
}

// resolveType resolves one ast.TypeID to a types.TypeID, reporting
// diag.SemaUnresolvedType when a user-defined path fails to bind and
// returning types.NoTypeID so callers can keep going without cascading a
// second, confusing diagnostic at every use site.
func (b *binder) resolveType(pf *pcontext.ParsedFile, scopes []*hir.Scope, id ast.TypeID, dctx *diag.DiagCtxt) types.TypeID {
	if !id.IsValid() {
		return types.NoTypeID
	}
	key := typeExprKey{file: pf.FileID, id: id}
	if tid, ok := b.resolved[key]; ok {
		return tid
	}
	// Cache before recursing so a (structurally impossible, but
	// defensively handled) cyclic type expression terminates instead of
	// looping; NoTypeID is corrected below once the real value is known.
	b.resolved[key] = types.NoTypeID

	node := pf.Builder.Types.Get(id)
	if node == nil {
		return types.NoTypeID
	}

	var tid types.TypeID
	switch node.Kind {
	case ast.TypeExprElementary:
		tid = b.resolveElementary(pf, id)
	case ast.TypeExprMapping:
		m, _ := pf.Builder.Types.Mapping(id)
		keyTID := b.resolveType(pf, scopes, m.Key, dctx)
		valTID := b.resolveType(pf, scopes, m.Value, dctx)
		tid = b.interner.Intern(types.MakeMapping(keyTID, valTID))
	case ast.TypeExprArray:
		a, _ := pf.Builder.Types.Array(id)
		elem := b.resolveType(pf, scopes, a.Element, dctx)
		count := types.ArrayDynamicLength
		if a.Size.IsValid() {
			if n, ok := constantArraySize(pf, a.Size); ok {
				count = n
			} else {
				dctx.NewError(diag.SynArrayLengthNotConstant, "array length must be a constant expression").
					Span(node.Span).Emit()
			}
		}
		tid = b.interner.Intern(types.MakeArray(elem, count))
	case ast.TypeExprFunction:
		fn, _ := pf.Builder.Types.Function(id)
		params := pf.Builder.Types.FunctionParams(fn)
		returns := pf.Builder.Types.FunctionReturns(fn)
		info := types.FnInfo{Visibility: fn.Visibility, Mutability: fn.Mutability}
		for _, p := range params {
			info.Params = append(info.Params, b.resolveType(pf, scopes, p.Type, dctx))
		}
		for _, r := range returns {
			info.Returns = append(info.Returns, b.resolveType(pf, scopes, r.Type, dctx))
		}
		tid = b.interner.InternFunction(info)
	case ast.TypeExprUserDefined:
		ud, _ := pf.Builder.Types.UserDefined(id)
		tid = b.resolveUserDefined(pf, scopes, ud.Path, node.Span, dctx)
	case ast.TypeExprTuple:
		tup, _ := pf.Builder.Types.Tuple(id)
		var elements []types.TypeID
		for _, el := range tup.Elements {
			elements = append(elements, b.resolveType(pf, scopes, el, dctx))
		}
		tid = b.interner.InternTuple(elements)
	default:
		tid = types.NoTypeID
	}
	b.resolved[key] = tid
	return tid
}

func (b *binder) resolveElementary(pf *pcontext.ParsedFile, id ast.TypeID) types.TypeID {
	el, _ := pf.Builder.Types.Elementary(id)
	switch el.Elem {
	case ast.ElemAddress:
		return b.interner.Builtins().Address
	case ast.ElemAddressPayable:
		return b.interner.Builtins().AddressPayable
	case ast.ElemBool:
		return b.interner.Builtins().Bool
	case ast.ElemString:
		return b.interner.Builtins().String
	case ast.ElemBytes:
		return b.interner.Builtins().Bytes
	case ast.ElemFixedBytes:
		return b.interner.Intern(types.MakeFixedBytes(uint8(el.Width)))
	case ast.ElemInt:
		return b.interner.Intern(types.MakeInt(el.Width))
	case ast.ElemUint:
		return b.interner.Intern(types.MakeUint(el.Width))
	case ast.ElemFixed:
		return b.interner.Intern(types.MakeFixed(uint8(el.M), uint8(el.N)))
	case ast.ElemUfixed:
		return b.interner.Intern(types.MakeUfixed(uint8(el.M), uint8(el.N)))
	default:
		return types.NoTypeID
	}
}

func (b *binder) resolveUserDefined(pf *pcontext.ParsedFile, scopes []*hir.Scope, path []source.Symbol, span source.Span, dctx *diag.DiagCtxt) types.TypeID {
	res, ok := resolvePath(b.hctx, scopes, path)
	if ok && res.Kind == hir.ResItem {
		switch res.Item.Kind {
		case hir.ItemKindStruct, hir.ItemKindEnum, hir.ItemKindContract, hir.ItemKindUdvt:
			if tid, ok := b.nominal[res.Item]; ok {
				return tid
			}
		}
	}
	dctx.NewError(diag.SemaUnresolvedType, "undeclared type").Span(span).Emit()
	return types.NoTypeID
}

// constantArraySize folds the one literal form solc's own grammar already
// restricts a fixed array's size to at the parser level: a bare integer
// literal. An identifier naming a file-level constant or an arithmetic
// expression would need a general constant-expression evaluator this
// project's HIR, which stops at the declaration level, does not build.
func constantArraySize(pf *pcontext.ParsedFile, id ast.ExprID) (uint32, bool) {
	lit, ok := pf.Builder.Exprs.Lit(id)
	if !ok || lit.Kind != ast.LitNumber {
		return 0, false
	}
	text, ok := pf.Builder.Interner.Lookup(lit.Text)
	if !ok {
		return 0, false
	}
	text = strings.ReplaceAll(text, "_", "")
	n, err := strconv.ParseUint(text, 0, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
