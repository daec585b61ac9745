package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/semver"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parsePragma parses `pragma solidity <req>;`, `pragma abicoder v1|v2;`,
// `pragma experimental <name>;`, or an unrecognized `pragma <ident> ...;`,
// kept verbatim.
func (p *Parser) parsePragma() (ast.ItemID, bool) {
	start := p.advance() // `pragma`

	switch {
	case p.at(token.KwSolidity):
		return p.parseSolidityPragma(start.Span)
	case p.at(token.KwAbicoder):
		return p.parseAbicoderPragma(start.Span)
	case p.at(token.KwExperimental):
		return p.parseExperimentalPragma(start.Span)
	default:
		return p.parseUnrecognizedPragma(start.Span)
	}
}

func (p *Parser) parseSolidityPragma(startSpan source.Span) (ast.ItemID, bool) {
	p.advance() // `solidity`

	var text []byte
	reqStart := p.lx.Peek().Span
	for !p.at(token.Semicolon) && !p.at(token.EOF) {
		tok := p.advance()
		text = append(text, tok.Text...)
		// Rejoin adjacent tokens ("0.8" ".0") without a gap; keep a space
		// only where the source had one, so range components stay apart.
		if next := p.lx.Peek(); next.Kind != token.Semicolon && next.Span.Lo > tok.Span.Hi {
			text = append(text, ' ')
		}
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after pragma")

	req, err := semver.Parse(string(text), reqStart.Lo)
	if err != nil {
		p.report(diag.SynPragmaVersionMalformed, reqStart, "malformed version requirement: "+err.Error())
		return p.b.Items.NewPragma(ast.PragmaItem{Kind: ast.PragmaSolidityVersion}, startSpan.To(semi.Span)), true
	}
	return p.b.Items.NewPragma(ast.PragmaItem{
		Kind:    ast.PragmaSolidityVersion,
		Version: req,
	}, startSpan.To(semi.Span)), true
}

func (p *Parser) parseAbicoderPragma(startSpan source.Span) (ast.ItemID, bool) {
	p.advance() // `abicoder`
	var version uint8
	tok, ok := p.expect(token.Ident, diag.SynPragmaMalformed, "expected 'v1' or 'v2' after 'abicoder'")
	if ok {
		switch tok.Text {
		case "v1":
			version = 1
		case "v2":
			version = 2
		default:
			p.report(diag.SynPragmaMalformed, tok.Span, "expected 'v1' or 'v2' after 'abicoder'")
		}
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after pragma")
	return p.b.Items.NewPragma(ast.PragmaItem{
		Kind:            ast.PragmaAbicoder,
		AbicoderVersion: version,
	}, startSpan.To(semi.Span)), true
}

func (p *Parser) parseExperimentalPragma(startSpan source.Span) (ast.ItemID, bool) {
	p.advance() // `experimental`
	name, _, _ := p.parseIdent()
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after pragma")
	return p.b.Items.NewPragma(ast.PragmaItem{
		Kind: ast.PragmaExperimental,
		Name: name,
	}, startSpan.To(semi.Span)), true
}

func (p *Parser) parseUnrecognizedPragma(startSpan source.Span) (ast.ItemID, bool) {
	name, _, ok := p.parseIdent()
	if !ok {
		p.resyncUntil(token.Semicolon)
		semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after pragma")
		return p.b.Items.NewPragma(ast.PragmaItem{Kind: ast.PragmaUnrecognized}, startSpan.To(semi.Span)), true
	}
	var tokens []source.Symbol
	for !p.at(token.Semicolon) && !p.at(token.EOF) {
		tok := p.advance()
		tokens = append(tokens, p.intern(tok))
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after pragma")
	return p.b.Items.NewPragma(ast.PragmaItem{
		Kind:   ast.PragmaUnrecognized,
		Name:   name,
		Tokens: tokens,
	}, startSpan.To(semi.Span)), true
}
