package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
)

// visualWidthUpTo computes the visual column width of s up to byteCol
// (1-based byte offset), accounting for tabs and double-width runes.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}

	bytePos := 0
	visualPos := 0

	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}

	return visualPos
}

func formatPath(f *source.SourceFile, sm *source.SourceMap, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", sm.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// Pretty writes bag.Items() (expected pre-sorted via bag.Sort()) as
// human-readable diagnostics: one `path:line:col: SEVERITY CODE: message`
// header per diagnostic, an underlined source snippet, and any notes.
func Pretty(w io.Writer, bag *diag.Bag, sm *source.SourceMap, opts PrettyOpts) {
	var (
		errorColor     = color.New(color.FgRed, color.Bold)
		warningColor   = color.New(color.FgYellow, color.Bold)
		noteColor      = color.New(color.FgCyan, color.Bold)
		pathColor      = color.New(color.FgWhite, color.Bold)
		codeColor      = color.New(color.FgMagenta)
		lineNumColor   = color.New(color.FgBlue)
		underlineColor = color.New(color.FgRed, color.Bold)
	)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context, err := safecast.Conv[uint32](opts.Context)
	if err != nil {
		panic(fmt.Errorf("context overflow: %w", err))
	}
	if context == 0 {
		context = 1
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}

		span := d.Primary()
		f, ok := sm.FileContaining(span.Lo)
		if !ok {
			fmt.Fprintf(w, "<unknown>: %s %s: %s\n", d.Severity, d.Code.ID(), d.Message) //nolint:errcheck
			continue
		}
		lineColStart, lineColEnd, _ := sm.Resolve(span)
		displayPath := formatPath(f, sm, opts.PathMode)

		sevStr := d.Severity.String()
		var sevColored string
		switch d.Severity {
		case diag.SevError, diag.SevFatal, diag.SevFailureNote:
			sevColored = errorColor.Sprint(sevStr)
		case diag.SevWarning:
			sevColored = warningColor.Sprint(sevStr)
		default:
			sevColored = noteColor.Sprint(sevStr)
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", //nolint:errcheck
			pathColor.Sprint(displayPath),
			lineColStart.Line,
			lineColStart.Col,
			sevColored,
			codeColor.Sprint(d.Code.ID()),
			d.Message,
		)

		totalLines, err := safecast.Conv[uint32](len(f.LineIdx))
		if err != nil {
			panic(fmt.Errorf("total lines overflow: %w", err))
		}
		totalLines++
		if len(f.LineIdx) == 0 && len(f.Content) > 0 {
			totalLines = 1
		}

		startLine := lineColStart.Line
		if startLine > context {
			startLine = lineColStart.Line - context
		} else {
			startLine = 1
		}
		endLine := min(lineColStart.Line+context, totalLines)

		if startLine > 1 {
			fmt.Fprintln(w, "...") //nolint:errcheck
		}

		const tabWidth = 8
		lineNumWidth := max(len(fmt.Sprintf("%d", endLine)), 3)

		for lineNum := startLine; lineNum <= endLine; lineNum++ {
			lineText := f.GetLine(lineNum)

			lineNumStr := fmt.Sprintf("%*d", lineNumWidth, lineNum)
			gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(lineNumStr))
			gutterLen := lineNumWidth + 3

			io.WriteString(w, gutter)   //nolint:errcheck
			io.WriteString(w, lineText) //nolint:errcheck
			io.WriteString(w, "\n")     //nolint:errcheck

			if lineNum == lineColStart.Line {
				startCol := lineColStart.Col
				endCol := lineColEnd.Col
				if lineColEnd.Line > lineColStart.Line {
					lenLineText, err := safecast.Conv[uint32](len(lineText))
					if err != nil {
						panic(fmt.Errorf("len line text overflow: %w", err))
					}
					endCol = lenLineText + 1
				}

				visualStart := visualWidthUpTo(lineText, startCol, tabWidth)
				visualEnd := visualWidthUpTo(lineText, endCol, tabWidth)

				var underline strings.Builder
				for range gutterLen {
					underline.WriteByte(' ')
				}
				for range visualStart {
					underline.WriteByte(' ')
				}
				spanLen := visualEnd - visualStart
				if spanLen <= 0 {
					underline.WriteByte('^')
				} else {
					for i := range spanLen {
						if i == spanLen-1 {
							underline.WriteByte('^')
						} else {
							underline.WriteByte('~')
						}
					}
				}
				fmt.Fprintln(w, underlineColor.Sprint(underline.String())) //nolint:errcheck
			}
		}

		if endLine < totalLines {
			fmt.Fprintln(w, "...") //nolint:errcheck
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf, ok := sm.FileContaining(note.Span.Lo)
				if !ok {
					fmt.Fprintf(w, "  %s: %s\n", noteColor.Sprint("note"), note.Msg) //nolint:errcheck
					continue
				}
				noteStart, _, _ := sm.Resolve(note.Span)
				fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", //nolint:errcheck
					noteColor.Sprint("note"),
					pathColor.Sprint(formatPath(nf, sm, opts.PathMode)),
					noteStart.Line,
					noteStart.Col,
					note.Msg,
				)
			}
		}
	}
}
