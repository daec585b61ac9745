package lexer

import (
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Diags receives lexical diagnostics (unterminated strings, bad number
	// literals, oversized tokens, unknown characters). May be nil, in which
	// case lexical errors are silently swallowed and the lexer still
	// produces Invalid tokens so the parser can recover.
	Diags *diag.DiagCtxt
}

func (lx *Lexer) reportLex(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Diags == nil {
		return
	}
	switch sev {
	case diag.SevError:
		lx.opts.Diags.NewError(code, msg).Span(sp).Emit()
	case diag.SevWarning:
		lx.opts.Diags.NewWarning(code, msg).Span(sp).Emit()
	default:
		lx.opts.Diags.NewNote(code, msg).Span(sp).Emit()
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(code, diag.SevError, sp, msg)
}
