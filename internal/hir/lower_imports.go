package hir

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
)

// propagateImports runs pass 3: for every import directive in a source,
// copy (or alias) the target source's exported names into the importing
// source's own scope. It assumes pass 1/2 has already populated every
// source's Scope, and that pcontext already resolved each import's target
// FileID (or left it NoFileID, in which case a missing-import diagnostic
// was already reported while walking the import graph).
func (l *lowerer) propagateImports(fid source.FileID, pf *pcontext.ParsedFile) {
	if pf == nil || pf.Unit == nil {
		return
	}
	importingSrc := l.hctx.SourceOf(fid)
	if importingSrc == nil {
		return
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
		if targetSrc == nil {
			continue
		}
		targetID := targetSrc.ID

		switch imp.Form {
		case ast.ImportStar:
			importingSrc.Scope.Declare(imp.Alias, Declaration{Res: NamespaceRes(targetID), Span: item.Span})

		case ast.ImportPlain:
			if imp.Alias != source.NoSymbol {
				importingSrc.Scope.Declare(imp.Alias, Declaration{Res: NamespaceRes(targetID), Span: item.Span})
				continue
			}
			for _, name := range targetSrc.Scope.Names() {
				for _, decl := range targetSrc.Scope.Lookup(name) {
					importingSrc.Scope.Declare(name, Declaration{Res: decl.Res, Span: item.Span})
				}
			}

		case ast.ImportSelective:
			for _, entry := range pf.Builder.Items.ImportSymbols(imp) {
				local := entry.Alias
				if local == source.NoSymbol {
					local = entry.Name
				}
				decls := targetSrc.Scope.Lookup(entry.Name)
				for _, decl := range decls {
					importingSrc.Scope.Declare(local, Declaration{Res: decl.Res, Span: entry.Span})
				}
			}
		}
	}
}
