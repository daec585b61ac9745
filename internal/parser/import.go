package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseImport parses one of Solidity's three import forms:
//
//	import "path";
//	import "path" as Alias;
//	import * as Alias from "path";
//	import {A, B as C} from "path";
func (p *Parser) parseImport() (ast.ItemID, bool) {
	start := p.advance() // `import`

	if p.at(token.Star) {
		return p.parseStarImport(start.Span)
	}
	if p.at(token.LBrace) {
		return p.parseSelectiveImport(start.Span)
	}
	return p.parsePlainImport(start.Span)
}

func (p *Parser) parsePlainImport(startSpan source.Span) (ast.ItemID, bool) {
	pathTok, ok := p.expect(token.StringLit, diag.SynImportMalformed, "expected a string literal import path")
	if !ok {
		p.resyncUntil(token.Semicolon)
	}
	var alias source.Symbol
	if p.at(token.KwAs) {
		p.advance()
		alias, _, _ = p.parseIdent()
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")
	return p.b.Items.NewImport(ast.ImportPlain, p.intern(pathTok), alias, nil, startSpan.To(semi.Span)), true
}

func (p *Parser) parseStarImport(startSpan source.Span) (ast.ItemID, bool) {
	p.advance() // `*`
	if _, ok := p.expect(token.KwAs, diag.SynImportMalformed, "expected 'as' after '*'"); !ok {
		p.resyncUntil(token.Semicolon)
	}
	alias, _, _ := p.parseIdent()
	if _, ok := p.expect(token.KwFrom, diag.SynImportMalformed, "expected 'from' in import directive"); !ok {
		p.resyncUntil(token.Semicolon)
	}
	pathTok, _ := p.expect(token.StringLit, diag.SynImportMalformed, "expected a string literal import path")
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")
	return p.b.Items.NewImport(ast.ImportStar, p.intern(pathTok), alias, nil, startSpan.To(semi.Span)), true
}

func (p *Parser) parseSelectiveImport(startSpan source.Span) (ast.ItemID, bool) {
	p.advance() // `{`
	var symbols []ast.ImportSymbol
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			break
		}
		sym := ast.ImportSymbol{Name: name, Span: nameSpan}
		if p.at(token.KwAs) {
			p.advance()
			alias, aliasSpan, _ := p.parseIdent()
			sym.Alias = alias
			sym.Span = sym.Span.To(aliasSpan)
		}
		symbols = append(symbols, sym)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace, diag.SynImportMalformed, "expected '}' to close import symbol list")
	if _, ok := p.expect(token.KwFrom, diag.SynImportMalformed, "expected 'from' in import directive"); !ok {
		p.resyncUntil(token.Semicolon)
	}
	pathTok, _ := p.expect(token.StringLit, diag.SynImportMalformed, "expected a string literal import path")
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")
	return p.b.Items.NewImport(ast.ImportSelective, p.intern(pathTok), source.Symbol(0), symbols, startSpan.To(semi.Span)), true
}
