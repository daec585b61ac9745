package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
)

// LocationJSON is a file location in JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is an auxiliary note attached to a diagnostic.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root JSON structure.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, sm *source.SourceMap, pathMode PathMode, includePositions bool) LocationJSON {
	f, ok := sm.FileContaining(span.Lo)
	if !ok {
		return LocationJSON{StartByte: span.Lo, EndByte: span.Hi}
	}

	loc := LocationJSON{
		File:      formatPath(f, sm, pathMode),
		StartByte: span.Lo,
		EndByte:   span.Hi,
	}
	if includePositions {
		startPos, endPos, _ := sm.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput builds the JSON-ready structure without encoding it.
func BuildDiagnosticsOutput(bag *diag.Bag, sm *source.SourceMap, opts JSONOpts) (DiagnosticsOutput, error) {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]

		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary(), sm, opts.PathMode, opts.IncludePositions),
		}

		if opts.IncludeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, sm, opts.PathMode, opts.IncludePositions),
				}
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}, nil
}

// JSON encodes bag's diagnostics as a two-space-indented DiagnosticsOutput
// object ({"diagnostics": [...], "count": N}) with full location info.
func JSON(w io.Writer, bag *diag.Bag, sm *source.SourceMap, opts JSONOpts) error {
	output, err := BuildDiagnosticsOutput(bag, sm, opts)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
