package diag

import (
	"fmt"
	"runtime"

	"github.com/sol-lang/solc/internal/source"
)

// EmissionGuarantee is a marker returned by DiagnosticBuilder.Emit that
// encodes, at the type level, what emitting the diagnostic promised about
// control flow. Go has no typestate, so the guarantee is carried as an
// ordinary (empty) value: a function that receives an ErrorGuaranteed as a
// parameter cannot be called without its caller having actually reported an
// error first.
type EmissionGuarantee interface {
	guarantee()
}

// ErrorGuaranteed witnesses that an error-level diagnostic has been handed
// to a DiagCtxt. Semantic passes that bail out after reporting an error
// return one of these instead of a bare error, so the compiler cannot
// accidentally proceed as if nothing happened.
type ErrorGuaranteed struct{ _ [0]byte }

// NoGuarantee is returned by builders for severities that make no
// particular control-flow promise: notes, help text, warnings, allowed
// (suppressed) diagnostics.
type NoGuarantee struct{ _ [0]byte }

// FatalAbort witnesses that Emit terminated the process; by construction,
// any code after a FatalAbort-typed Emit call is unreachable.
type FatalAbort struct{ _ [0]byte }

// FatalError is like ErrorGuaranteed but for diagnostics severe enough that
// the emitting pass should stop entirely, while still leaving the decision
// to abort the process to an outer driver loop (e.g. per-file compilation
// in a multi-file build continues with the next file).
type FatalError struct{ _ [0]byte }

func (ErrorGuaranteed) guarantee() {}
func (NoGuarantee) guarantee()     {}
func (FatalAbort) guarantee()      {}
func (FatalError) guarantee()      {}

// DiagnosticBuilder accumulates a diagnostic's spans, notes and fixes before
// handing it to a DiagCtxt. G pins down what Emit is allowed to promise the
// caller: NewError returns a *DiagnosticBuilder[ErrorGuaranteed], NewFatal a
// *DiagnosticBuilder[FatalAbort], and so on.
//
// A builder must be consumed by exactly one call to Emit or Cancel. As a
// best-effort backstop against a builder falling out of scope unsent (the
// reference design makes this a hard compile error via #[must_use]; Go
// cannot), an uncollected, un-emitted builder reports itself through its
// finalizer.
type DiagnosticBuilder[G EmissionGuarantee] struct {
	dc   *DiagCtxt
	diag Diagnostic
	done bool
}

func newBuilder[G EmissionGuarantee](dc *DiagCtxt, sev Severity, code Code, msg string) *DiagnosticBuilder[G] {
	b := &DiagnosticBuilder[G]{
		dc:   dc,
		diag: Diagnostic{Severity: sev, Code: code, Message: msg},
	}
	runtime.SetFinalizer(b, func(b *DiagnosticBuilder[G]) {
		if !b.done {
			fmt.Fprintf(dc.stderr(), "internal error: diagnostic builder dropped without Emit: %s\n", b.diag.Message)
		}
	})
	return b
}

// Span sets the primary span.
func (b *DiagnosticBuilder[G]) Span(sp source.Span) *DiagnosticBuilder[G] {
	b.diag.Spans.Primary = sp
	return b
}

// WithSpans sets the full primary+secondary span set at once.
func (b *DiagnosticBuilder[G]) WithSpans(ms MultiSpan) *DiagnosticBuilder[G] {
	b.diag.Spans = ms
	return b
}

// SpanLabel attaches a labelled secondary span.
func (b *DiagnosticBuilder[G]) SpanLabel(sp source.Span, label string) *DiagnosticBuilder[G] {
	b.diag.Spans.Secondary = append(b.diag.Spans.Secondary, LabelledSpan{Span: sp, Label: label})
	return b
}

// Note appends a free-standing note.
func (b *DiagnosticBuilder[G]) Note(msg string) *DiagnosticBuilder[G] {
	b.diag.Notes = append(b.diag.Notes, Note{Msg: msg})
	return b
}

// SpanNote appends a note anchored to a span.
func (b *DiagnosticBuilder[G]) SpanNote(sp source.Span, msg string) *DiagnosticBuilder[G] {
	b.diag.Notes = append(b.diag.Notes, Note{Span: sp, Msg: msg})
	return b
}

// Help appends a help-level note. Represented the same as Note at the data
// level; the distinction matters to emitters, which render help text with
// a different label.
func (b *DiagnosticBuilder[G]) Help(msg string) *DiagnosticBuilder[G] {
	b.diag.Notes = append(b.diag.Notes, Note{Msg: "help: " + msg})
	return b
}

// Fix attaches a ready-to-use fix with default metadata.
func (b *DiagnosticBuilder[G]) Fix(title string, edits ...FixEdit) *DiagnosticBuilder[G] {
	b.diag.Fixes = append(b.diag.Fixes, Fix{
		Title:         title,
		Kind:          FixKindQuickFix,
		Applicability: FixApplicabilityAlwaysSafe,
		Edits:         edits,
	})
	return b
}

// FixSuggestion attaches a fully configured fix, possibly lazy.
func (b *DiagnosticBuilder[G]) FixSuggestion(fix Fix) *DiagnosticBuilder[G] {
	b.diag.Fixes = append(b.diag.Fixes, fix)
	return b
}

// Cancel discards the builder without reporting anything. Used when a
// tentative diagnostic turns out, on further inspection, not to apply.
func (b *DiagnosticBuilder[G]) Cancel() {
	b.done = true
}

// Emit reports the accumulated diagnostic to the owning DiagCtxt and
// returns the guarantee G promises. For G = FatalAbort this call does not
// return: the process exits first.
func (b *DiagnosticBuilder[G]) Emit() G {
	b.done = true
	b.dc.emit(b.diag)
	var g G
	if _, ok := any(g).(FatalAbort); ok {
		b.dc.abort()
	}
	return g
}
