// Package parser turns a token stream into an arena-owned Solidity AST
// (internal/ast), with best-effort error recovery so a single malformed
// construct does not abort the whole file.
package parser

import (
	"slices"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// Options configures a Parser.
type Options struct {
	// Diags receives syntax diagnostics. May be nil, in which case errors
	// are silently swallowed and the parser still attempts recovery.
	Diags *diag.DiagCtxt
	// MaxErrors stops emitting new diagnostics once this many errors have
	// been reported on Diags (0 disables the limit). Parsing itself
	// continues regardless, so later stages still see a complete AST.
	MaxErrors uint
	// ParseYul enables surface parsing of `assembly { ... }` blocks; when
	// false, the bodies are skipped over as opaque brace-balanced regions.
	// The compiler driver always sets it; cmd/solc has no flag to clear it.
	ParseYul bool
}

func (o *Options) enough() bool {
	if o.MaxErrors == 0 || o.Diags == nil {
		return false
	}
	return uint(o.Diags.ErrorCount()) >= o.MaxErrors
}

// Parser holds the state for parsing a single file into its SourceUnit.
type Parser struct {
	lx   *lexer.Lexer
	b    *ast.Builder
	file source.FileID
	opts Options

	// lastSpan is the span of the last consumed token, used to anchor
	// "expected X" diagnostics at the end of what was actually read rather
	// than wherever the lookahead token (possibly EOF) happens to sit.
	lastSpan source.Span

	// exprDepth guards against stack overflow on deeply nested or
	// adversarially malformed expressions.
	exprDepth int
}

const maxExprDepth = 256

// ParseFile parses lx's token stream as file's contents, registering the
// resulting SourceUnit (and every item/statement/expression/type it
// contains) in b.
func ParseFile(file source.FileID, lx *lexer.Lexer, b *ast.Builder, opts Options) *ast.SourceUnit {
	p := &Parser{lx: lx, b: b, file: file, opts: opts, lastSpan: lx.EmptySpan()}

	startSpan := p.lx.Peek().Span
	unit := p.b.NewUnit(p.file, startSpan)

	for !p.at(token.EOF) {
		before := p.lx.Peek()

		itemID, ok := p.parseItem()
		if ok {
			p.b.PushItem(p.file, itemID)
		} else {
			p.resyncTop()
		}

		// Guarantee forward progress: if neither the successful parse nor
		// the resync consumed anything, force one token through so a
		// pathological input can't spin the loop forever.
		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}

	unit.Span = startSpan.To(p.lastSpan)
	return unit
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// atReturnsKeyword reports whether the lookahead is the contextual "returns"
// keyword, which introduces a function/function-type return list. It is not
// in the reserved keyword table (unlike the `return` statement keyword), so
// it is recognized by identifier text instead.
func (p *Parser) atReturnsKeyword() bool {
	peek := p.lx.Peek()
	return peek.Kind == token.Ident && peek.Text == "returns"
}

// atAbstractKeyword reports whether the lookahead is the contextual
// "abstract" keyword preceding a contract declaration.
func (p *Parser) atAbstractKeyword() bool {
	peek := p.lx.Peek()
	return peek.Kind == token.Ident && peek.Text == "abstract"
}

// advance consumes and returns the next token, updating lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// errSpan returns the best span to anchor an "unexpected"/"expected"
// diagnostic at: the lookahead token's own span, unless it is EOF, in which
// case a zero-length span just past the last token actually consumed.
func (p *Parser) errSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return p.lastSpan.ShrinkToHi()
	}
	return peek.Span
}

// expect consumes the next token if it has kind k; otherwise it reports
// code/msg at errSpan and returns a synthetic Invalid token plus false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.errSpan()
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// report emits an error-severity diagnostic, subject to opts.MaxErrors.
func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Diags == nil || p.opts.enough() {
		return
	}
	p.opts.Diags.NewError(code, msg).Span(sp).Emit()
}

// warn emits a warning-severity diagnostic.
func (p *Parser) warn(code diag.Code, sp source.Span, msg string) {
	if p.opts.Diags == nil {
		return
	}
	p.opts.Diags.NewWarning(code, msg).Span(sp).Emit()
}

// resyncUntil consumes tokens until the lookahead is one of stop or EOF,
// without consuming the stop token itself.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) {
		if slices.Contains(stop, p.lx.Peek().Kind) {
			return
		}
		p.advance()
	}
}

// topLevelStarters are the tokens that can begin a new top-level item;
// resyncTop treats any of them, or a semicolon, as a safe place to stop.
var topLevelStarters = []token.Kind{
	token.KwPragma, token.KwImport, token.KwUsing, token.KwContract,
	token.KwInterface, token.KwLibrary, token.KwFunction, token.KwModifier,
	token.KwStruct, token.KwEnum, token.KwType, token.KwError, token.KwEvent,
	token.Semicolon,
}

// resyncTop recovers from a failed top-level item by skipping to the next
// plausible item start or a semicolon, consuming the semicolon if found.
func (p *Parser) resyncTop() {
	prev := p.lx.Peek()
	p.resyncUntil(topLevelStarters...)
	if !p.at(token.EOF) && p.lx.Peek().Span == prev.Span && p.lx.Peek().Kind == prev.Kind {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// intern interns tok's text as a Symbol.
func (p *Parser) intern(tok token.Token) source.Symbol { return p.b.Intern(tok.Text) }

// parseIdent expects an identifier and interns it.
func (p *Parser) parseIdent() (source.Symbol, source.Span, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
	if !ok {
		return source.Symbol(0), tok.Span, false
	}
	return p.intern(tok), tok.Span, true
}

// parsePath parses a dotted identifier path (`A.B.C`), used for inheritance
// specifiers, using-directive library/function names, and user-defined type
// references.
func (p *Parser) parsePath() ([]source.Symbol, source.Span, bool) {
	name, span, ok := p.parseIdent()
	if !ok {
		return nil, span, false
	}
	path := []source.Symbol{name}
	for p.at(token.Dot) {
		p.advance()
		seg, segSpan, ok := p.parseIdent()
		if !ok {
			return path, span.To(segSpan), false
		}
		path = append(path, seg)
		span = span.To(segSpan)
	}
	return path, span, true
}
