package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseUsing parses a `using ... for ...;` directive, either naming a single
// library (`using Lib for T;`) or a brace-delimited function list
// (`using {f, g as +} for T;`), optionally `global` and/or `for *`.
func (p *Parser) parseUsing() (ast.ItemID, bool) {
	start := p.advance() // `using`

	var libraryPath []source.Symbol
	var functions []ast.UsingFunction

	if p.at(token.LBrace) {
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			path, span, ok := p.parsePath()
			if !ok {
				break
			}
			fn := ast.UsingFunction{Path: path, Span: span}
			if p.at(token.KwAs) {
				p.advance()
				opTok := p.advance()
				fn.Operator = p.intern(opTok)
				fn.Span = fn.Span.To(opTok.Span)
			}
			functions = append(functions, fn)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RBrace, diag.SynUsingForMalformed, "expected '}' to close using function list")
	} else {
		path, _, ok := p.parsePath()
		if !ok {
			p.resyncUntil(token.Semicolon)
		}
		libraryPath = path
	}

	if _, ok := p.expect(token.KwFor, diag.SynUsingForMalformed, "expected 'for' in using directive"); !ok {
		p.resyncUntil(token.Semicolon)
	}

	var forType ast.TypeID
	var forAny bool
	if p.at(token.Star) {
		p.advance()
		forAny = true
	} else {
		forType, _ = p.parseType()
	}

	global := false
	if p.at(token.KwGlobal) {
		p.advance()
		global = true
	}

	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after using directive")
	return p.b.Items.NewUsing(libraryPath, functions, forType, forAny, global, start.Span.To(semi.Span)), true
}
