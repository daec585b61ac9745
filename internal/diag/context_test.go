package diag

import (
	"testing"

	"github.com/sol-lang/solc/internal/source"
)

func TestDiagCtxt_ErrorCounting(t *testing.T) {
	buf := NewBufferEmitter()
	dc := NewDiagCtxt(buf)

	g := dc.NewError(SemaDuplicateDefinition, "symbol `Foo` already declared").
		Span(source.Span{Lo: 1, Hi: 4}).
		SpanNote(source.Span{Lo: 10, Hi: 13}, "previous declaration here").
		Emit()
	_ = g // ErrorGuaranteed: possessing it proves an error was reported

	if dc.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1", dc.ErrorCount())
	}
	if len(buf.Diagnostics) != 1 {
		t.Fatalf("expected 1 emitted diagnostic, got %d", len(buf.Diagnostics))
	}
	if got := buf.Diagnostics[0].Notes[0].Msg; got != "previous declaration here" {
		t.Errorf("note message = %q", got)
	}
}

func TestDiagCtxt_DeduplicatesIdenticalDiagnostics(t *testing.T) {
	buf := NewBufferEmitter()
	dc := NewDiagCtxt(buf)

	sp := source.Span{Lo: 5, Hi: 8}
	dc.NewWarning(SemaUnusedVariable, "unused variable `x`").Span(sp).Emit()
	dc.NewWarning(SemaUnusedVariable, "unused variable `x`").Span(sp).Emit()

	if dc.WarningCount() != 1 {
		t.Fatalf("WarningCount() = %d, want 1 (duplicate should be suppressed)", dc.WarningCount())
	}
	if len(buf.Diagnostics) != 1 {
		t.Fatalf("expected 1 emitted diagnostic after dedup, got %d", len(buf.Diagnostics))
	}
}

func TestDiagCtxt_SuppressesWarningsWhenDisabled(t *testing.T) {
	buf := NewBufferEmitter()
	dc := NewDiagCtxt(buf)
	dc.SetCanEmitWarnings(false)

	dc.NewWarning(SemaPayableFallbackNoReceive, "payable fallback without receive").
		Span(source.Span{Lo: 1, Hi: 2}).Emit()

	if len(buf.Diagnostics) != 0 {
		t.Fatalf("warning should have been suppressed, got %d diagnostics", len(buf.Diagnostics))
	}
	// Still counted internally even though it never reached the emitter.
	if dc.WarningCount() != 1 {
		t.Fatalf("WarningCount() = %d, want 1", dc.WarningCount())
	}
}

func TestDiagCtxt_TrackDiagnostics(t *testing.T) {
	dc := NewDiagCtxt(SilentEmitter{})
	dc.SetTrackDiagnostics(true)

	dc.NewNote(ObsInfo, "pass started").Emit()
	dc.NewNote(ObsInfo, "pass finished").Emit()

	if got := len(dc.Tracked()); got != 2 {
		t.Fatalf("Tracked() returned %d diagnostics, want 2", got)
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Spans: MultiSpan{Primary: source.Span{Lo: 10, Hi: 12}}})
	bag.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Spans: MultiSpan{Primary: source.Span{Lo: 1, Hi: 2}}})
	bag.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Spans: MultiSpan{Primary: source.Span{Lo: 1, Hi: 2}}})

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("after Dedup, Len() = %d, want 2", bag.Len())
	}

	bag.Sort()
	if bag.Items()[0].Spans.Primary.Lo != 1 {
		t.Fatalf("Sort did not order by primary span start")
	}
}
