package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseStruct parses `struct Name { T1 f1; T2 f2; ... }`.
func (p *Parser) parseStruct() (ast.ItemID, bool) {
	start := p.advance() // `struct`
	name, nameSpan, _ := p.parseIdent()
	p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open struct body")

	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		typ, _ := p.parseType()
		fname, fnameSpan, ok := p.parseIdent()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
		}
		semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after struct field")
		fields = append(fields, ast.StructField{Name: fname, NameSpan: fnameSpan, Type: typ, Span: fnameSpan.To(semi.Span)})
	}
	rbrace, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct body")
	return p.b.Items.NewStruct(name, nameSpan, fields, start.Span.To(rbrace.Span)), true
}

// parseEnum parses `enum Name { A, B, C }`.
func (p *Parser) parseEnum() (ast.ItemID, bool) {
	start := p.advance() // `enum`
	name, nameSpan, _ := p.parseIdent()
	p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open enum body")

	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		vname, vspan, ok := p.parseIdent()
		if !ok {
			break
		}
		variants = append(variants, ast.EnumVariant{Name: vname, Span: vspan})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	rbrace, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum body")
	return p.b.Items.NewEnum(name, nameSpan, variants, start.Span.To(rbrace.Span)), true
}

// parseUdvt parses `type Name is UnderlyingType;`.
func (p *Parser) parseUdvt() (ast.ItemID, bool) {
	start := p.advance() // `type`
	name, nameSpan, _ := p.parseIdent()
	p.expect(token.KwIs, diag.SynExpectType, "expected 'is' in user-defined value type declaration")
	underlying, _ := p.parseType()
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after type declaration")
	return p.b.Items.NewUdvt(name, nameSpan, underlying, start.Span.To(semi.Span)), true
}

// parseError parses `error Name(T1 a, T2 b);`.
func (p *Parser) parseError() (ast.ItemID, bool) {
	start := p.advance() // `error`
	name, nameSpan, _ := p.parseIdent()
	params := p.parseParamList(false)
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after error declaration")
	return p.b.Items.NewError(name, nameSpan, params, start.Span.To(semi.Span)), true
}

// parseEvent parses `event Name(T1 indexed a, T2 b) anonymous?;`.
func (p *Parser) parseEvent() (ast.ItemID, bool) {
	start := p.advance() // `event`
	name, nameSpan, _ := p.parseIdent()
	params := p.parseEventParamList()
	anonymous := false
	if p.at(token.KwAnonymous) {
		p.advance()
		anonymous = true
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after event declaration")
	return p.b.Items.NewEvent(name, nameSpan, params, anonymous, start.Span.To(semi.Span)), true
}

// parseParamList parses a parenthesized, comma-separated parameter list.
// Names are optional unless requireNames is set (true for function bodies
// with implementations, false for bare declarations/errors where solc still
// permits a trailing unnamed parameter).
func (p *Parser) parseParamList(requireNames bool) []ast.Param {
	p.expect(token.LParen, diag.SynExpectType, "expected '(' to open parameter list")
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		typ, typOK := p.parseType()
		if !typOK {
			p.resyncUntil(token.Comma, token.RParen)
		}
		loc := ast.LocationNone
		if p.lx.Peek().Kind.IsDataLocationKeyword() {
			loc = dataLocationOf(p.advance().Kind)
		}
		var name source.Symbol
		var nameSpan source.Span
		if p.at(token.Ident) {
			name, nameSpan, _ = p.parseIdent()
		} else if requireNames {
			p.report(diag.SynExpectIdentifier, p.errSpan(), "expected parameter name")
		}
		params = append(params, ast.Param{Type: typ, Location: loc, Name: name, NameSpan: nameSpan})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list")
	return params
}

// parseEventParamList is parseParamList's event-specific sibling: each
// parameter may carry the `indexed` keyword.
func (p *Parser) parseEventParamList() []ast.Param {
	p.expect(token.LParen, diag.SynExpectType, "expected '(' to open event parameter list")
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		typ, _ := p.parseType()
		indexed := false
		if p.at(token.KwIndexed) {
			p.advance()
			indexed = true
		}
		var name source.Symbol
		var nameSpan source.Span
		if p.at(token.Ident) {
			name, nameSpan, _ = p.parseIdent()
		}
		params = append(params, ast.Param{Type: typ, Name: name, NameSpan: nameSpan, Indexed: indexed})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close event parameter list")
	return params
}
