package hir

import (
	"sort"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
)

// Lower drives the four AST-to-HIR passes over every file a ParsingContext
// has parsed: item collection, export-scope population, import-name
// propagation, and inheritance linearization. Each pass runs to completion
// over every source before the next begins, so that pass 3's cross-file
// name propagation only ever reads module scopes pass 2 has already fully
// populated, and pass 4's linearization only ever reads base-contract
// lookups pass 3 has already fully resolved.
func Lower(pc *pcontext.ParsingContext) *Context {
	hctx := NewContext()
	parsed := pc.Sources()

	files := make([]source.FileID, 0, len(parsed))
	for id := range parsed {
		files = append(files, id)
	}
	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	l := &lowerer{hctx: hctx, parsed: parsed}

	// Pass 1 + 2: collect every item and declare it into its source's scope.
	for _, fid := range files {
		l.lowerSource(fid, parsed[fid])
	}
	// Pass 3: propagate imported names into the importing source's scope.
	for _, fid := range files {
		l.propagateImports(fid, parsed[fid])
	}
	// Pass 4: resolve and C3-linearize every contract's inheritance list.
	for _, fid := range files {
		l.linearizeContracts(parsed[fid])
	}
	// Unused-import detection walks the finished HIR rather than the AST,
	// using whatever cross-file references pass 4 already resolved.
	for _, fid := range files {
		l.checkUnusedImports(fid, parsed[fid])
	}

	return hctx
}

// lowerer holds the state threaded through every pass.
type lowerer struct {
	hctx   *Context
	parsed map[source.FileID]*pcontext.ParsedFile
}

func (l *lowerer) dctxFor(pf *pcontext.ParsedFile) *diag.DiagCtxt {
	return diag.NewDiagCtxt(pf.Bag)
}

func lookup(pf *pcontext.ParsedFile, s source.Symbol) string {
	return pf.Builder.Interner.MustLookup(s)
}

// itemKindKeyword names the payload kind for a duplicate-definition message.
func itemKindKeyword(k ast.ItemKind) string {
	switch k {
	case ast.ItemContract:
		return "contract"
	case ast.ItemFunction:
		return "function"
	case ast.ItemVariable:
		return "variable"
	case ast.ItemStruct:
		return "struct"
	case ast.ItemEnum:
		return "enum"
	case ast.ItemUdvt:
		return "type"
	case ast.ItemError:
		return "error"
	case ast.ItemEvent:
		return "event"
	default:
		return "declaration"
	}
}
