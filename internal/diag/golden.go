package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sol-lang/solc/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGoldenDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files. Diagnostics anchored in files under
// a stdlib/ or internal/ directory are dropped, the rest sorted deterministically.
func FormatGoldenDiagnostics(diags []Diagnostic, m *source.SourceMap, includeNotes bool) string {
	return formatDiagnostics(diags, m, includeNotes, true)
}

// FormatShortDiagnostics is like FormatGoldenDiagnostics but keeps every path,
// intended for CLI short-form output.
func FormatShortDiagnostics(diags []Diagnostic, m *source.SourceMap, includeNotes bool) string {
	return formatDiagnostics(diags, m, includeNotes, false)
}

func formatDiagnostics(diags []Diagnostic, m *source.SourceMap, includeNotes, skipInternal bool) string {
	if m == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = appendDiagnostic(rendered, d, m, includeNotes, skipInternal)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendDiagnostic(out []goldenDiagnostic, d Diagnostic, m *source.SourceMap, includeNotes, skipInternal bool) []goldenDiagnostic {
	loc, ok := resolveSpan(m, d.Spans.Primary)
	if ok && (!skipInternal || !shouldSkipPath(loc.Path)) {
		out = append(out, goldenDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     loc.Path,
			Line:     loc.Line,
			Column:   loc.Column,
			Message:  sanitizeMessage(d.Message),
		})
	}

	if includeNotes {
		for _, note := range d.Notes {
			nloc, nok := resolveSpan(m, note.Span)
			if !nok || (skipInternal && shouldSkipPath(nloc.Path)) {
				continue
			}
			out = append(out, goldenDiagnostic{
				Severity: "note",
				Code:     d.Code.ID(),
				Path:     nloc.Path,
				Line:     nloc.Line,
				Column:   nloc.Column,
				Message:  sanitizeMessage(note.Msg),
			})
		}
	}

	return out
}

type resolvedSpan struct {
	Path   string
	Line   uint32
	Column uint32
}

func resolveSpan(m *source.SourceMap, span source.Span) (loc resolvedSpan, ok bool) {
	if span.IsDummy() {
		return resolvedSpan{}, false
	}
	file, found := m.FileContaining(span.Lo)
	if !found {
		return resolvedSpan{}, false
	}
	start, _, resolved := m.Resolve(span)
	if !resolved {
		return resolvedSpan{}, false
	}
	return resolvedSpan{
		Path:   normalizePath(file.FormatPath("relative", m.BaseDir())),
		Line:   start.Line,
		Column: start.Col,
	}, true
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func shouldSkipPath(path string) bool {
	if path == "" {
		return false
	}
	p := strings.TrimLeft(normalizePath(path), "/")
	return strings.HasPrefix(p, "stdlib/") ||
		strings.Contains(p, "/stdlib/") ||
		strings.HasPrefix(p, "internal/") ||
		strings.Contains(p, "/internal/")
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
