package hir

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
)

// checkUnusedImports walks the finished HIR (not the AST) to flag an import
// directive whose target source contributed nothing a contract in this
// source actually inherited from. Tracking every possible use of an import
// would require a fully expression-lowered HIR; this project's HIR stops
// at the item/declaration level (see package doc), so usage is judged by
// the one cross-file reference pass 4 already resolved: inheritance.
func (l *lowerer) checkUnusedImports(fid source.FileID, pf *pcontext.ParsedFile) {
	if pf == nil || pf.Unit == nil {
		return
	}
	src := l.hctx.SourceOf(fid)
	if src == nil {
		return
	}
	dctx := l.dctxFor(pf)

	usedSources := make(map[SourceID]bool)
	for _, iid := range src.Items {
		if iid.Kind != ItemKindContract {
			continue
		}
		contract := l.hctx.Contract(ContractID(iid.Index))
		for _, ref := range contract.Inherits {
			if ref.Resolved.IsValid() {
				usedSources[l.hctx.ItemSource(contractItemID(ref.Resolved))] = true
			}
		}
	}

	for _, itemID := range pf.Unit.Items {
		item := pf.Builder.Items.Get(itemID)
		if item == nil || item.Kind != ast.ItemImport {
			continue
		}
		imp, ok := pf.Builder.Items.Import(itemID)
		if !ok || imp.ResolvedFile == source.NoFileID {
			continue
		}
		targetSrc := l.hctx.SourceOf(imp.ResolvedFile)
		if targetSrc == nil || usedSources[targetSrc.ID] {
			continue
		}
		dctx.NewWarning(diag.SemaUnusedImport, "unused import").Span(item.Span).Emit()
	}
}
