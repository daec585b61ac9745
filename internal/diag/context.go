package diag

import (
	"io"
	"os"
	"sync"
)

// Emitter renders or stores a Diagnostic as it is reported. Implementations
// live in internal/diagfmt (human, JSON, solc-compatible JSON) and in this
// package (Buffer, Silent) for testing and embedding.
type Emitter interface {
	Emit(d Diagnostic)
}

// DiagCtxt is the single point every compiler pass reports diagnostics
// through. It owns the active Emitter, tracks error/warning counts for the
// final exit code, and optionally deduplicates and records every diagnostic
// it has ever seen. Session globals in the reference design are replaced
// here, as elsewhere, by an explicit value threaded through the pipeline
// (see source.Session).
type DiagCtxt struct {
	mu      sync.Mutex
	emitter Emitter
	errW    io.Writer

	errorCount   int
	warningCount int

	canEmitWarnings bool
	treatErrAsFatal int // abort once errorCount reaches this many; 0 disables
	dedup           bool
	track           bool

	seen    map[dedupKey]struct{}
	tracked []Diagnostic
}

type dedupKey struct {
	code    Code
	sev     Severity
	primary string
	message string
}

// NewDiagCtxt constructs a DiagCtxt that reports to emitter. Warnings are
// enabled and deduplication is on by default, matching the reference
// design's defaults.
func NewDiagCtxt(emitter Emitter) *DiagCtxt {
	return &DiagCtxt{
		emitter:         emitter,
		errW:            os.Stderr,
		canEmitWarnings: true,
		dedup:           true,
		seen:            make(map[dedupKey]struct{}),
	}
}

// SetCanEmitWarnings toggles whether Warning/Note/Help diagnostics reach the
// emitter at all; errors and fatals are always emitted.
func (dc *DiagCtxt) SetCanEmitWarnings(on bool) { dc.canEmitWarnings = on }

// SetTreatErrAsFatal makes the Nth error reported abort the process as if
// it were Fatal, the way `-Z treat-err-as-bug=N` does. n <= 0 disables it.
func (dc *DiagCtxt) SetTreatErrAsFatal(n int) { dc.treatErrAsFatal = n }

// SetDeduplicateDiagnostics toggles suppression of diagnostics identical in
// code, severity, primary span and message to one already emitted.
func (dc *DiagCtxt) SetDeduplicateDiagnostics(on bool) { dc.dedup = on }

// SetTrackDiagnostics toggles whether every emitted diagnostic is retained
// for later retrieval via Tracked(), independent of the Emitter.
func (dc *DiagCtxt) SetTrackDiagnostics(on bool) { dc.track = on }

// Tracked returns every diagnostic recorded since tracking was enabled.
func (dc *DiagCtxt) Tracked() []Diagnostic {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	out := make([]Diagnostic, len(dc.tracked))
	copy(out, dc.tracked)
	return out
}

// ErrorCount returns the number of Error/Fatal/FailureNote diagnostics reported.
func (dc *DiagCtxt) ErrorCount() int {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.errorCount
}

// WarningCount returns the number of Warning diagnostics reported.
func (dc *DiagCtxt) WarningCount() int {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.warningCount
}

// HasErrors reports whether the process should exit nonzero: at least one
// Error, Fatal or FailureNote has been reported.
func (dc *DiagCtxt) HasErrors() bool {
	return dc.ErrorCount() > 0
}

func (dc *DiagCtxt) stderr() io.Writer { return dc.errW }

func (dc *DiagCtxt) emit(d Diagnostic) {
	dc.mu.Lock()
	if d.Severity == SevAllow && !dc.track {
		dc.mu.Unlock()
		return
	}
	if dc.dedup {
		key := dedupKey{code: d.Code, sev: d.Severity, primary: d.Spans.Primary.String(), message: d.Message}
		if _, ok := dc.seen[key]; ok {
			dc.mu.Unlock()
			return
		}
		dc.seen[key] = struct{}{}
	}
	if d.Severity.IsError() {
		dc.errorCount++
	} else if d.Severity == SevWarning {
		dc.warningCount++
	}
	if dc.track {
		dc.tracked = append(dc.tracked, d)
	}
	fatal := dc.treatErrAsFatal > 0 && dc.errorCount >= dc.treatErrAsFatal
	suppressed := d.Severity == SevAllow || (!dc.canEmitWarnings && d.Severity <= SevWarning && !d.Severity.IsError())
	emitter := dc.emitter
	dc.mu.Unlock()

	if !suppressed && emitter != nil {
		emitter.Emit(d)
	}
	if fatal {
		dc.abort()
	}
}

// abort flushes and exits the process. Called from Emit() when G is
// FatalAbort, and from treat-err-as-fatal bookkeeping.
func (dc *DiagCtxt) abort() {
	if f, ok := dc.emitter.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	os.Exit(1)
}

// NewError starts an Error-severity diagnostic. Emit returns ErrorGuaranteed.
func (dc *DiagCtxt) NewError(code Code, msg string) *DiagnosticBuilder[ErrorGuaranteed] {
	return newBuilder[ErrorGuaranteed](dc, SevError, code, msg)
}

// NewFatal starts a Fatal-severity diagnostic whose Emit never returns.
func (dc *DiagCtxt) NewFatal(code Code, msg string) *DiagnosticBuilder[FatalAbort] {
	return newBuilder[FatalAbort](dc, SevFatal, code, msg)
}

// NewFatalError is like NewFatal but leaves the decision to abort the
// process to the caller, returning FatalError instead of aborting in Emit.
func (dc *DiagCtxt) NewFatalError(code Code, msg string) *DiagnosticBuilder[FatalError] {
	return newBuilder[FatalError](dc, SevFatal, code, msg)
}

// NewWarning starts a Warning-severity diagnostic.
func (dc *DiagCtxt) NewWarning(code Code, msg string) *DiagnosticBuilder[NoGuarantee] {
	return newBuilder[NoGuarantee](dc, SevWarning, code, msg)
}

// NewNote starts a Note-severity diagnostic, not tied to any error.
func (dc *DiagCtxt) NewNote(code Code, msg string) *DiagnosticBuilder[NoGuarantee] {
	return newBuilder[NoGuarantee](dc, SevNote, code, msg)
}

// NewHelp starts a Help-severity diagnostic.
func (dc *DiagCtxt) NewHelp(code Code, msg string) *DiagnosticBuilder[NoGuarantee] {
	return newBuilder[NoGuarantee](dc, SevHelp, code, msg)
}

// NewFailureNote starts a FailureNote: counts toward the error exit code
// but renders like a note (used for "aborting due to N previous errors").
func (dc *DiagCtxt) NewFailureNote(code Code, msg string) *DiagnosticBuilder[NoGuarantee] {
	return newBuilder[NoGuarantee](dc, SevFailureNote, code, msg)
}
