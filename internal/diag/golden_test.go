package diag

import (
	"testing"

	"github.com/sol-lang/solc/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	m := source.NewSourceMap()
	m.SetBaseDir("/workspace")

	userID := m.Add("/workspace/testdata/golden/Sample.sol", []byte("a\nb\n"), 0)
	internalID := m.Add("/workspace/internal/helper.sol", []byte("x\n"), 0)
	userStart := m.Get(userID).StartPos
	internalStart := m.Get(internalID).StartPos

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Spans:    MultiSpan{Primary: source.Span{Lo: userStart, Hi: userStart + 1}},
			Notes: []Note{
				{Span: source.Span{Lo: internalStart, Hi: internalStart}, Msg: "skip me"},
				{Span: source.Span{Lo: userStart + 2, Hi: userStart + 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SemaDuplicateDefinition,
			Message:  "another",
			Spans:    MultiSpan{Primary: source.Span{Lo: userStart + 2, Hi: userStart + 3}},
		},
	}

	expected := "error E2001 testdata/golden/Sample.sol:1:1 first line second\n" +
		"note E2001 testdata/golden/Sample.sol:2:1 note line\n" +
		"warning E3001 testdata/golden/Sample.sol:2:1 another"

	if got := FormatGoldenDiagnostics(diags, m, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
