package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
)

// spanIn builds a Span at byte offsets [lo, hi) within the file registered
// at id, translating from file-local offsets to the SourceMap's global space.
func spanIn(sm *source.SourceMap, id source.FileID, lo, hi uint32) source.Span {
	f := sm.Get(id)
	return source.Span{Lo: f.StartPos + lo, Hi: f.StartPos + hi}
}

func TestPathModes(t *testing.T) {
	sm := source.NewSourceMap()
	sm.SetBaseDir("/home/user/project")

	content := []byte("string memory x = \"unterminated string\n")
	fileID := sm.AddVirtual("/home/user/project/src/test.sol", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Spans:    diag.SingleSpan(spanIn(sm, fileID, 19, 39)),
	})

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.sol"},
		{"Relative path", PathModeRelative, "src/test.sol"},
		{"Basename only", PathModeBasename, "test.sol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{Color: false, Context: 1, PathMode: tt.mode}

			Pretty(&buf, bag, sm, opts)
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "error") {
				t.Error("expected severity 'error' in output")
			}
			if !strings.Contains(output, "E1002") {
				t.Error("expected code E1002 in output")
			}
			if !strings.Contains(output, "unterminated string") {
				t.Error("expected message in output")
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Short path - as is", "test.sol", "test.sol"},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/file.sol", "file.sol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := source.NewSourceMap()
			content := []byte("uint x = 42;\n")
			fileID := sm.AddVirtual(tt.path, content)

			bag := diag.NewBag(10)
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.LexUnknownChar,
				Message:  "test warning",
				Spans:    diag.SingleSpan(spanIn(sm, fileID, 8, 10)),
			})

			var buf bytes.Buffer
			opts := PrettyOpts{Color: false, Context: 0, PathMode: PathModeAuto}

			Pretty(&buf, bag, sm, opts)
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestPrettyNotes(t *testing.T) {
	sm := source.NewSourceMap()
	content := []byte("import \"./util.sol\" as Util;\n")
	fileID := sm.AddVirtual("test.sol", content)

	primary := spanIn(sm, fileID, 7, 19)
	noteSpan := spanIn(sm, fileID, 23, 27)

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Spans:    diag.SingleSpan(primary),
		Notes: []diag.Note{
			{Span: noteSpan, Msg: "remove trailing alias"},
		},
	})

	var buf bytes.Buffer
	opts := PrettyOpts{
		Color:     false,
		Context:   0,
		PathMode:  PathModeBasename,
		ShowNotes: true,
	}
	Pretty(&buf, bag, sm, opts)

	output := buf.String()
	if !strings.Contains(output, "note: test.sol:1:24") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if !strings.Contains(output, "remove trailing alias") {
		t.Fatalf("expected note message, got:\n%s", output)
	}
}

func TestPrettyMultiLineUnderline(t *testing.T) {
	sm := source.NewSourceMap()
	content := []byte("contract C {\n    function f(\n        uint a\n    ) public {}\n}\n")
	fileID := sm.AddVirtual("test.sol", content)

	span := spanIn(sm, fileID, 28, 40) // spans across "function f(\n        uint a"

	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "malformed parameter list",
		Spans:    diag.SingleSpan(span),
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, sm, PrettyOpts{Color: false, Context: 1, PathMode: PathModeBasename})

	output := buf.String()
	if !strings.Contains(output, "malformed parameter list") {
		t.Fatalf("expected message in output, got:\n%s", output)
	}
}
