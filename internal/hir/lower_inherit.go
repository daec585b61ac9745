package hir

import (
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/linearize"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
)

// linearizeContracts runs pass 4: resolve every contract's `is A, B` list
// against the scope import propagation (pass 3) has already populated, then
// C3-linearize the resulting base graph. Resolution happens first and
// separately from linearization, matching pass 3's own separation, since a
// base name may live in a different source than the contract naming it.
func (l *lowerer) linearizeContracts(pf *pcontext.ParsedFile) {
	if pf == nil || pf.Unit == nil {
		return
	}
	fid := pf.FileID
	src := l.hctx.SourceOf(fid)
	if src == nil {
		return
	}
	dctx := l.dctxFor(pf)

	for _, iid := range src.Items {
		if iid.Kind != ItemKindContract {
			continue
		}
		contract := l.hctx.Contract(ContractID(iid.Index))
		l.resolveInherits(src, contract, dctx)
	}

	lz := &linearize.Linearizer[ContractID]{
		Bases: func(c ContractID) []ContractID {
			decl := l.hctx.Contract(c)
			bases := make([]ContractID, 0, len(decl.Inherits))
			for _, ref := range decl.Inherits {
				if ref.Resolved.IsValid() {
					bases = append(bases, ref.Resolved)
				}
			}
			return bases
		},
	}

	for _, iid := range src.Items {
		if iid.Kind != ItemKindContract {
			continue
		}
		contract := l.hctx.Contract(ContractID(iid.Index))
		order, err := lz.Linearize(contract.ID)
		if err != nil {
			switch err.(type) {
			case linearize.ErrCycle:
				dctx.NewError(diag.SemaCircularInheritance, "circular inheritance detected").
					Span(contract.Span).Emit()
			default:
				dctx.NewError(diag.SemaLinearizationFailed, "inheritance graph cannot be linearized").
					Span(contract.Span).Emit()
			}
			continue
		}
		contract.LinearizedBases = order
		augmentDerivedScope(l.hctx, contract)
	}
}

// resolveInherits binds each InheritRef's raw path to a ContractID, using
// the contract's own declaring source's scope (by this point augmented
// with whatever pass 3 imported). Reports SemaDuplicateInheritedContract
// for a base named twice in the same `is` list.
func (l *lowerer) resolveInherits(src *Source, contract *Contract, dctx *diag.DiagCtxt) {
	seen := make(map[ContractID]bool, len(contract.Inherits))
	for idx := range contract.Inherits {
		ref := &contract.Inherits[idx]
		res, ok := resolvePath(l.hctx, src.Scope, ref.Path)
		if !ok || res.Kind != ResItem || res.Item.Kind != ItemKindContract {
			continue
		}
		base := ContractID(res.Item.Index)
		if base == contract.ID {
			continue
		}
		if seen[base] {
			dctx.NewError(diag.SemaDuplicateInheritedContract, "contract inherited more than once").
				Span(ref.Span).Emit()
			continue
		}
		seen[base] = true
		ref.Resolved = base
	}
}

// resolvePath looks up a (possibly namespaced) path's first segment in
// scope, then walks any remaining segments through the namespaces it
// resolves to. Only single- and double-segment paths arise in practice
// (a bare name, or Namespace.Name after a `import * as Namespace`).
func resolvePath(hctx *Context, scope *Scope, path []source.Symbol) (Res, bool) {
	if len(path) == 0 {
		return Res{}, false
	}
	decls := scope.Lookup(path[0])
	if len(decls) == 0 {
		return Res{}, false
	}
	res := decls[0].Res
	for _, seg := range path[1:] {
		if res.Kind != ResNamespace {
			return Res{}, false
		}
		ns := hctx.Source(res.Source)
		if ns == nil {
			return Res{}, false
		}
		next := ns.Scope.Lookup(seg)
		if len(next) == 0 {
			return Res{}, false
		}
		res = next[0].Res
	}
	return res, true
}

// augmentDerivedScope makes every inherited, non-shadowed declaration
// visible under the derived contract's own scope, the way Solidity derived
// contracts see their ancestors' internal/public members without
// qualification. Bases are folded furthest-derived first so a closer
// override naturally shadows the same name from a more distant ancestor.
func augmentDerivedScope(hctx *Context, contract *Contract) {
	for _, baseID := range contract.LinearizedBases[1:] {
		base := hctx.Contract(baseID)
		for _, name := range base.Scope.Names() {
			if len(contract.Scope.Lookup(name)) > 0 {
				continue
			}
			for _, decl := range base.Scope.Lookup(name) {
				contract.Scope.Declare(name, decl)
			}
		}
	}
}
