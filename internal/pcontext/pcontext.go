// Package pcontext drives multi-file parsing: it walks the import graph
// breadth-first, parsing each newly-discovered frontier of files with a
// bounded worker pool, until no file introduces an import nobody has queued
// yet. It is the Solidity analog of solc's "parse every source reachable
// from the entry points" driver loop.
package pcontext

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/parser"
	"github.com/sol-lang/solc/internal/resolvefs"
	"github.com/sol-lang/solc/internal/source"
)

// ParsedFile is one file's parse result: its own arena-owned AST and the
// diagnostics produced while lexing/parsing it. The files its imports
// resolved to are recorded on the import items themselves.
type ParsedFile struct {
	FileID  source.FileID
	Builder *ast.Builder
	Unit    *ast.SourceUnit
	Bag     *diag.Bag
}

// Options configures a ParsingContext.
type Options struct {
	// Jobs bounds the number of files parsed concurrently within a single
	// frontier; 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics bounds each file's own diagnostic bag.
	MaxDiagnostics int
	// ParseYul enables surface parsing of `assembly { ... }` blocks.
	ParseYul bool
}

// ParsingContext accumulates entry files, then drives parsing
// across the whole import graph they reach. Parsing is idempotent and
// re-entrant: calling Parse again after adding more entries via AddFile only
// parses the files not already in Sources, extending the graph rather than
// reparsing it (dedup by source.SourceMap identity, i.e. by FileID).
type ParsingContext struct {
	sm       *source.SourceMap
	resolver *resolvefs.FileResolver
	interner *source.Interner
	opts     Options

	parsed  map[source.FileID]*ParsedFile
	queued  map[source.FileID]bool
	pending []source.FileID
}

// New creates a ParsingContext over sm, resolving imports through resolver
// and interning every file's symbols into the shared interner.
func New(sm *source.SourceMap, resolver *resolvefs.FileResolver, interner *source.Interner, opts Options) *ParsingContext {
	return &ParsingContext{
		sm:       sm,
		resolver: resolver,
		interner: interner,
		opts:     opts,
		parsed:   make(map[source.FileID]*ParsedFile),
		queued:   make(map[source.FileID]bool),
	}
}

// AddFile enqueues an already-registered file (an entry point, or one
// resolved ahead of time) to be parsed on the next Parse call. A file
// already parsed or already pending is a no-op.
func (pc *ParsingContext) AddFile(id source.FileID) {
	if pc.queued[id] {
		return
	}
	pc.queued[id] = true
	pc.pending = append(pc.pending, id)
}

// Sources returns every file parsed so far, keyed by FileID.
func (pc *ParsingContext) Sources() map[source.FileID]*ParsedFile {
	return pc.parsed
}

// Parse drains the pending queue, round by round: each round parses the
// current frontier with a bounded worker pool, collects the import edges
// those files discovered, resolves the ones pointing at files not yet
// queued, and loops until a round discovers nothing new.
func (pc *ParsingContext) Parse(ctx context.Context) error {
	for len(pc.pending) > 0 {
		frontier := pc.pending
		pc.pending = nil

		jobs := pc.opts.Jobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(frontier)))

		results := make([]*ParsedFile, len(frontier))
		discovered := make([][]source.FileID, len(frontier))
		for i, fileID := range frontier {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				pf := pc.parseOne(fileID)
				discovered[i] = pc.discoverImports(pf)
				results[i] = pf
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		// Fold results back in on the caller's goroutine: pc.parsed and the
		// pending queue are plain maps/slices, not safe for concurrent
		// writes, so every worker only touches its own ParsedFile/arena and
		// the barrier below is where shared state actually gets mutated.
		for i, pf := range results {
			pc.parsed[pf.FileID] = pf
			for _, next := range discovered[i] {
				pc.AddFile(next)
			}
		}
	}
	return nil
}

// parseOne lexes and parses a single file into its own Builder. Each file
// gets a fresh arena so concurrent workers never contend over the same
// arena's backing slices; only the shared Interner (itself mutex-protected)
// and source map are touched from multiple goroutines.
func (pc *ParsingContext) parseOne(fileID source.FileID) *ParsedFile {
	file := pc.sm.Get(fileID)
	bag := diag.NewBag(pc.opts.MaxDiagnostics)
	dctx := diag.NewDiagCtxt(bag)
	builder := ast.NewBuilder(ast.Hints{}, pc.interner)
	lx := lexer.New(file, lexer.Options{Diags: dctx})

	maxErrors := 0
	if pc.opts.MaxDiagnostics > 0 {
		maxErrors = pc.opts.MaxDiagnostics
	}
	unit := parser.ParseFile(fileID, lx, builder, parser.Options{
		Diags:     dctx,
		MaxErrors: uint(maxErrors),
		ParseYul:  pc.opts.ParseYul,
	})

	return &ParsedFile{FileID: fileID, Builder: builder, Unit: unit, Bag: bag}
}

// discoverImports resolves every import directive in pf, recording a
// diagnostic (and leaving the item's ResolvedFile at its NoFileID default)
// for any that can't be found, and returns the FileIDs of newly resolved
// targets so the caller can fold them into the next frontier.
func (pc *ParsingContext) discoverImports(pf *ParsedFile) []source.FileID {
	if pf.Unit == nil {
		return nil
	}
	fromFile := pc.sm.Get(pf.FileID)
	dctx := diag.NewDiagCtxt(pf.Bag)

	var next []source.FileID
	for _, itemID := range pf.Unit.Items {
		item := pf.Builder.Items.Get(itemID)
		if item == nil || item.Kind != ast.ItemImport {
			continue
		}
		imp, ok := pf.Builder.Items.Import(itemID)
		if !ok {
			continue
		}
		rawPath := pf.Builder.Interner.MustLookup(imp.Path)
		resolved, err := pc.resolver.Resolve(rawPath, fromFile)
		if err != nil {
			dctx.NewError(diag.ProjMissingFile, "import not found: "+err.Error()).
				Span(item.Span).Emit()
			continue
		}
		imp.ResolvedFile = resolved
		next = append(next, resolved)
	}
	return next
}
