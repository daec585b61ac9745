package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
)

func TestJSONBasic(t *testing.T) {
	sm := source.NewSourceMap()
	content := []byte("function main() {\n    string memory x = \"unterminated\n}")
	fileID := sm.AddVirtual("test.sol", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Spans:    diag.SingleSpan(spanIn(sm, fileID, 23, 35)),
	})

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              0,
		IncludeNotes:     true,
	}

	if err := JSON(&buf, bag, sm, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 {
		t.Errorf("expected count=1, got %d", output.Count)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if d.Severity != "error" {
		t.Errorf("expected severity=error, got %s", d.Severity)
	}
	if d.Code != "E1002" {
		t.Errorf("expected code=E1002, got %s", d.Code)
	}
	if d.Message != "unterminated string literal" {
		t.Errorf("unexpected message: %s", d.Message)
	}
	if d.Location.File != "test.sol" {
		t.Errorf("expected file=test.sol, got %s", d.Location.File)
	}
	if d.Location.StartByte != 23 {
		t.Errorf("expected start_byte=23, got %d", d.Location.StartByte)
	}
	if d.Location.EndByte != 35 {
		t.Errorf("expected end_byte=35, got %d", d.Location.EndByte)
	}
	if d.Location.StartLine != 2 {
		t.Errorf("expected start_line=2, got %d", d.Location.StartLine)
	}
}

func TestJSONWithNotes(t *testing.T) {
	sm := source.NewSourceMap()
	content := []byte("uint x = 42;")
	fileID := sm.AddVirtual("test.sol", content)

	primary := spanIn(sm, fileID, 5, 6)
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexUnknownChar,
		Message:  "unused variable",
		Spans:    diag.SingleSpan(primary),
		Notes: []diag.Note{
			{Span: primary, Msg: "consider removing this variable or prefixing with underscore"},
		},
	})

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              0,
		IncludeNotes:     true,
	}

	if err := JSON(&buf, bag, sm, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if len(d.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(d.Notes))
	}
	if d.Notes[0].Message != "consider removing this variable or prefixing with underscore" {
		t.Errorf("unexpected note message: %s", d.Notes[0].Message)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	sm := source.NewSourceMap()
	content := []byte("uint x = 42;")
	fileID := sm.AddVirtual("test.sol", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevNote,
		Code:     diag.LexUnknownChar,
		Message:  "info message",
		Spans:    diag.SingleSpan(spanIn(sm, fileID, 5, 6)),
	})

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: false, PathMode: PathModeBasename, Max: 0}

	if err := JSON(&buf, bag, sm, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	d := output.Diagnostics[0]
	if d.Location.StartLine != 0 {
		t.Errorf("expected start_line to be omitted (0), got %d", d.Location.StartLine)
	}
	if d.Location.StartByte != 5 {
		t.Errorf("expected start_byte=5, got %d", d.Location.StartByte)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	sm := source.NewSourceMap()
	content := []byte("contract C {}")
	fileID := sm.AddVirtual("test.sol", content)
	f := sm.Get(fileID)

	bag := diag.NewBag(10)
	for i := range 5 {
		lo := f.StartPos + uint32(i)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LexUnknownChar,
			Message:  "error message",
			Spans:    diag.SingleSpan(source.Span{Lo: lo, Hi: lo + 1}),
		})
	}

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: false, PathMode: PathModeBasename, Max: 3}

	if err := JSON(&buf, bag, sm, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if output.Count != 3 {
		t.Errorf("expected count=3 (limited), got %d", output.Count)
	}
	if len(output.Diagnostics) != 3 {
		t.Errorf("expected 3 diagnostics (limited), got %d", len(output.Diagnostics))
	}
}

func TestJSONPathModes(t *testing.T) {
	sm := source.NewSourceMap()
	sm.SetBaseDir("/home/user/project")

	content := []byte("contract C {}")
	fileID := sm.AddVirtual("/home/user/project/src/main.sol", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "error",
		Spans:    diag.SingleSpan(spanIn(sm, fileID, 0, 1)),
	})

	tests := []struct {
		name     string
		pathMode PathMode
		expected string
	}{
		{"Absolute", PathModeAbsolute, "/home/user/project/src/main.sol"},
		{"Relative", PathModeRelative, "src/main.sol"},
		{"Basename", PathModeBasename, "main.sol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := JSONOpts{IncludePositions: false, PathMode: tt.pathMode, Max: 0}

			if err := JSON(&buf, bag, sm, opts); err != nil {
				t.Fatalf("JSON() error: %v", err)
			}

			var output DiagnosticsOutput
			if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
				t.Fatalf("invalid JSON output: %v", err)
			}

			if output.Diagnostics[0].Location.File != tt.expected {
				t.Errorf("expected file=%s, got %s", tt.expected, output.Diagnostics[0].Location.File)
			}
		})
	}
}
