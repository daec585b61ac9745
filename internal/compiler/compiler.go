// Package compiler owns the top-level pipeline driver: a Session, a
// ParsingContext, and the lowered HIR/sema artifacts it produces, gated by
// a linear stage progression the way the reference design's Compiler type
// gates its own GlobalCtxt. Everything downstream of parsing reaches the
// program only through the Compiler returned here, never by re-parsing.
package compiler

import (
	"context"
	"time"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/observ"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/resolvefs"
	"github.com/sol-lang/solc/internal/sema"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/trace"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a pipeline stage boundary; Compiler emits one pair of
// these (start, end) per stage to whatever PhaseObserver Options supplies.
type PhaseEvent struct {
	Stage   Stage
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives stage timing events as the Compiler advances.
type PhaseObserver func(PhaseEvent)

// Options configures a Compiler.
type Options struct {
	Jobs           int
	MaxDiagnostics int
	EnableTimings  bool
	PhaseObserver  PhaseObserver
	Tracer         trace.Tracer
}

// Compiler is a pinned, self-referential holder of a Session and the
// pipeline artifacts built on top of it: the ParsingContext during parsing,
// the hir.Context once lowered, and the sema.Result once analyzed. It
// enforces the linear stage progression `none -> parsing -> lowering ->
// analysis`, panicking on any attempt to advance out of order. Parsing is
// the one stage that may be re-entered: AddFile/Parse can be called
// repeatedly while the gate still reads StageParsing.
type Compiler struct {
	Sess *source.Session

	opts   Options
	stage  Stage
	timer  *observ.Timer
	tracer trace.Tracer

	resolver *resolvefs.FileResolver
	pc       *pcontext.ParsingContext
	hctx     *hir.Context
	semaRes  *sema.Result
}

// New creates a Compiler in StageNone, owning a fresh Session.
func New(opts Options) *Compiler {
	sess := source.NewSession()
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	c := &Compiler{
		Sess:     sess,
		opts:     opts,
		stage:    StageNone,
		tracer:   tracer,
		resolver: resolvefs.NewFileResolver(sess.Map),
	}
	if opts.EnableTimings {
		c.timer = observ.NewTimer()
	}
	return c
}

// Stage reports the current position in the pipeline.
func (c *Compiler) Stage() Stage { return c.stage }

// Resolver exposes the FileResolver so a caller can add search paths and
// remappings before the first EnterParsing call.
func (c *Compiler) Resolver() *resolvefs.FileResolver { return c.resolver }

// advance asserts the gate is moving from its immediate predecessor to to,
// with parsing exempted from the "only once" rule: entering StageParsing
// while already in StageParsing is a no-op rather than a violation.
func (c *Compiler) advance(to Stage) {
	if to == StageParsing && c.stage == StageParsing {
		return
	}
	want, ok := c.stage.next()
	if !ok || want != to {
		panic(&invalidTransitionError{from: c.stage, to: to})
	}
	c.stage = to
}

func (c *Compiler) beginPhase(stage Stage) func() {
	span := trace.Begin(c.tracer, trace.ScopePass, stage.String(), 0)
	var idx int
	if c.timer != nil {
		idx = c.timer.Begin(stage.String())
	} else {
		idx = -1
	}
	start := time.Now()
	if c.opts.PhaseObserver != nil {
		c.opts.PhaseObserver(PhaseEvent{Stage: stage, Status: PhaseStart})
	}
	return func() {
		span.End("")
		if c.timer != nil && idx >= 0 {
			c.timer.End(idx, "")
		}
		if c.opts.PhaseObserver != nil {
			c.opts.PhaseObserver(PhaseEvent{Stage: stage, Status: PhaseEnd, Elapsed: time.Since(start)})
		}
	}
}

// EnterParsing loads entry and enqueues it for parsing, creating the
// ParsingContext on first entry. It may be called any number of times with
// different entry files while the gate remains in StageParsing.
func (c *Compiler) EnterParsing(ctx context.Context, entry string) error {
	c.advance(StageParsing)
	end := c.beginPhase(StageParsing)
	defer end()

	if c.pc == nil {
		c.pc = pcontext.New(c.Sess.Map, c.resolver, c.Sess.Symbols, pcontext.Options{
			Jobs:           c.opts.Jobs,
			MaxDiagnostics: c.opts.MaxDiagnostics,
			ParseYul:       true,
		})
	}
	fileID, err := c.resolver.LoadEntry(entry)
	if err != nil {
		return err
	}
	c.pc.AddFile(fileID)
	return c.pc.Parse(ctx)
}

// EnterLowering builds the HIR from everything parsed so far. It is legal
// exactly once, immediately after the last EnterParsing call; a repeat
// attempt panics with a transition error whose message contains
// `from "lowering" to "lowering"`.
func (c *Compiler) EnterLowering() *hir.Context {
	c.advance(StageLowering)
	end := c.beginPhase(StageLowering)
	defer end()

	c.hctx = hir.Lower(c.pc)
	return c.hctx
}

// EnterAnalysis runs semantic binding and checks over the lowered HIR. Legal
// exactly once, immediately after EnterLowering.
func (c *Compiler) EnterAnalysis() *sema.Result {
	c.advance(StageAnalysis)
	end := c.beginPhase(StageAnalysis)
	defer end()

	c.semaRes = sema.Run(c.pc, c.hctx)
	return c.semaRes
}

// HIR returns the lowered program, or nil before EnterLowering.
func (c *Compiler) HIR() *hir.Context { return c.hctx }

// Sema returns the analysis result, or nil before EnterAnalysis.
func (c *Compiler) Sema() *sema.Result { return c.semaRes }

// Sources returns every file parsed so far, keyed by FileID, or nil before
// the first EnterParsing call.
func (c *Compiler) Sources() map[source.FileID]*pcontext.ParsedFile {
	if c.pc == nil {
		return nil
	}
	return c.pc.Sources()
}

// Diagnostics merges every source file's diagnostic bag into one and sorts
// the result with Bag.Sort.
func (c *Compiler) Diagnostics() *diag.Bag {
	out := diag.NewBag(c.opts.MaxDiagnostics)
	if c.pc == nil {
		return out
	}
	for _, pf := range c.pc.Sources() {
		out.Merge(pf.Bag)
	}
	out.Sort()
	return out
}

// TimingReport returns the phase timing report if EnableTimings was set, or
// a zero-value report otherwise.
func (c *Compiler) TimingReport() observ.Report {
	if c.timer == nil {
		return observ.Report{}
	}
	return c.timer.Report()
}

// Catch runs fn and recovers an invalidTransitionError panic, returning it
// as a plain error instead of letting it unwind past the driver boundary.
// Any other panic value is re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if te, ok := r.(*invalidTransitionError); ok {
				err = te
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
