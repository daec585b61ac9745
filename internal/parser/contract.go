package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/token"
)

// parseContract parses a contract/interface/library/abstract-contract
// declaration, its inheritance list, and its body.
func (p *Parser) parseContract() (ast.ItemID, bool) {
	startSpan := p.lx.Peek().Span
	kind := ast.ContractKindContract
	if p.atAbstractKeyword() {
		p.advance()
		kind = ast.ContractKindAbstract
	}
	switch p.lx.Peek().Kind {
	case token.KwInterface:
		p.advance()
		kind = ast.ContractKindInterface
	case token.KwLibrary:
		p.advance()
		kind = ast.ContractKindLibrary
	default:
		p.expect(token.KwContract, diag.SynUnexpectedToken, "expected 'contract', 'interface', or 'library'")
	}

	name, nameSpan, _ := p.parseIdent()

	var inherits []ast.InheritSpec
	if p.at(token.KwIs) {
		p.advance()
		for {
			path, span, ok := p.parsePath()
			if !ok {
				break
			}
			spec := ast.InheritSpec{Path: path, Span: span}
			if p.at(token.LParen) {
				args := p.parseCallArgList()
				spec.Args = make([]ast.ExprID, len(args))
				for i, a := range args {
					spec.Args[i] = a.Expr
				}
				spec.Span = spec.Span.To(p.lastSpan)
			}
			inherits = append(inherits, spec)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}

	bodyStart, _ := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open contract body")
	items := p.parseContractBody()
	bodyEnd, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close contract body")
	bodySpan := bodyStart.Span.To(bodyEnd.Span)

	return p.b.Items.NewContract(name, nameSpan, kind, inherits, items, bodySpan, startSpan.To(bodyEnd.Span)), true
}

// contractBodyStarters are the tokens that can begin a declaration nested in
// a contract body; used by parseContractBody's recovery loop.
var contractBodyStarters = []token.Kind{
	token.KwUsing, token.KwFunction, token.KwModifier, token.KwStruct,
	token.KwEnum, token.KwType, token.KwError, token.KwEvent,
	token.KwConstructor, token.KwFallback, token.KwReceive,
	token.RBrace, token.Semicolon,
}

// parseContractBody parses the declarations nested inside a contract's
// braces: using directives, functions (including constructor/fallback/
// receive/modifier), state variables, structs, enums, UDVTs, errors, and
// events.
func (p *Parser) parseContractBody() []ast.ContractItem {
	var items []ast.ContractItem
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek()
		kind, id, ok := p.parseContractItem()
		if ok {
			items = append(items, ast.ContractItem{Kind: kind, Item: id, Span: p.b.Items.Get(id).Span})
		} else {
			p.resyncUntil(contractBodyStarters...)
			if p.at(token.Semicolon) {
				p.advance()
			}
		}
		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}
	return items
}

func (p *Parser) parseContractItem() (ast.ItemKind, ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwUsing:
		id, ok := p.parseUsing()
		return ast.ItemUsing, id, ok
	case token.KwFunction, token.KwConstructor, token.KwFallback, token.KwReceive, token.KwModifier:
		id, ok := p.parseFunctionLike()
		return ast.ItemFunction, id, ok
	case token.KwStruct:
		id, ok := p.parseStruct()
		return ast.ItemStruct, id, ok
	case token.KwEnum:
		id, ok := p.parseEnum()
		return ast.ItemEnum, id, ok
	case token.KwType:
		id, ok := p.parseUdvt()
		return ast.ItemUdvt, id, ok
	case token.KwError:
		id, ok := p.parseError()
		return ast.ItemError, id, ok
	case token.KwEvent:
		id, ok := p.parseEvent()
		return ast.ItemEvent, id, ok
	default:
		id, ok := p.parseStateVariable()
		return ast.ItemVariable, id, ok
	}
}
