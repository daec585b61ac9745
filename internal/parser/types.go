package parser

import (
	"strconv"
	"strings"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseType parses a type expression: elementary, mapping, array suffixes,
// function type, user-defined path, or a parenthesized tuple type.
func (p *Parser) parseType() (ast.TypeID, bool) {
	base, ok := p.parseTypeAtom()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.parseArraySuffixes(base), true
}

func (p *Parser) parseArraySuffixes(base ast.TypeID) ast.TypeID {
	baseNode := p.b.Types.Get(base)
	span := baseNode.Span
	for p.at(token.LBracket) {
		lbracket := p.advance()
		var size ast.ExprID = ast.NoExprID
		if !p.at(token.RBracket) {
			size, _ = p.parseExpr()
		}
		rbracket, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array type")
		span = span.To(lbracket.Span).To(rbracket.Span)
		base = p.b.Types.NewArray(ast.ArrayType{Element: base, Size: size}, span)
	}
	return base
}

// parseTypeAtom parses a single type expression with no array suffix.
func (p *Parser) parseTypeAtom() (ast.TypeID, bool) {
	switch {
	case p.at(token.KwMapping):
		return p.parseMappingType()
	case p.at(token.KwFunction):
		return p.parseFunctionType()
	case p.lx.Peek().Kind.IsElementaryTypeKeyword():
		return p.parseElementaryType()
	case p.at(token.LParen):
		return p.parseTupleType()
	case p.at(token.Ident):
		path, span, ok := p.parsePath()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.b.Types.NewUserDefined(path, span), true
	default:
		sp := p.errSpan()
		p.report(diag.SynExpectType, sp, "expected a type")
		return ast.NoTypeID, false
	}
}

func (p *Parser) parseElementaryType() (ast.TypeID, bool) {
	tok := p.advance()
	elem := ast.ElementaryType{}
	switch tok.Kind {
	case token.KwAddress:
		elem.Elem = ast.ElemAddress
		if p.at(token.KwPayable) {
			p.advance()
			elem.Elem = ast.ElemAddressPayable
			tok.Span = tok.Span.To(p.lastSpan)
		}
	case token.KwBool:
		elem.Elem = ast.ElemBool
	case token.KwString:
		elem.Elem = ast.ElemString
	case token.KwBytes:
		if tok.Text == "bytes" {
			elem.Elem = ast.ElemBytes
		} else {
			elem.Elem = ast.ElemFixedBytes
			elem.Width, _ = parseUintSuffix(tok.Text, "bytes")
		}
	case token.KwInt:
		elem.Elem = ast.ElemInt
		if tok.Text == "int" {
			elem.Width = 256
		} else {
			elem.Width, _ = parseUintSuffix(tok.Text, "int")
		}
	case token.KwUint:
		elem.Elem = ast.ElemUint
		if tok.Text == "uint" {
			elem.Width = 256
		} else {
			elem.Width, _ = parseUintSuffix(tok.Text, "uint")
		}
	case token.KwFixed, token.KwUfixed:
		if tok.Kind == token.KwFixed {
			elem.Elem = ast.ElemFixed
		} else {
			elem.Elem = ast.ElemUfixed
		}
		elem.M, elem.N = parseFixedSuffix(tok.Text, tok.Kind == token.KwFixed)
	}
	return p.b.Types.NewElementary(elem, tok.Span), true
}

func parseUintSuffix(text, prefix string) (uint16, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(text, prefix))
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

func parseFixedSuffix(text string, signed bool) (m, n uint16) {
	prefix := "ufixed"
	if signed {
		prefix = "fixed"
	}
	rest := strings.TrimPrefix(text, prefix)
	if rest == text {
		return 128, 18
	}
	idx := strings.IndexByte(rest, 'x')
	if idx < 0 {
		return 128, 18
	}
	mv, err1 := strconv.Atoi(rest[:idx])
	nv, err2 := strconv.Atoi(rest[idx+1:])
	if err1 != nil || err2 != nil {
		return 128, 18
	}
	return uint16(mv), uint16(nv)
}

func (p *Parser) parseMappingType() (ast.TypeID, bool) {
	start := p.advance() // `mapping`
	p.expect(token.LParen, diag.SynMappingKeyInvalid, "expected '(' after 'mapping'")
	key, _ := p.parseTypeAtom()
	key = p.parseArraySuffixes(key)
	var keyName source.Symbol
	if p.at(token.Ident) {
		keyName, _, _ = p.parseIdent()
	}
	p.expect(token.FatArrow, diag.SynMappingKeyInvalid, "expected '=>' in mapping type")
	value, _ := p.parseType()
	var valueName source.Symbol
	if p.at(token.Ident) {
		valueName, _, _ = p.parseIdent()
	}
	rparen, _ := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close mapping type")
	span := start.Span.To(rparen.Span)
	return p.b.Types.NewMapping(ast.MappingType{Key: key, KeyName: keyName, Value: value, ValueName: valueName}, span), true
}

func (p *Parser) parseFunctionType() (ast.TypeID, bool) {
	start := p.advance() // `function`
	p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'function'")
	var params []ast.FunctionTypeParam
	for !p.at(token.RParen) && !p.at(token.EOF) {
		typ, _ := p.parseType()
		loc := ast.LocationNone
		if p.lx.Peek().Kind.IsDataLocationKeyword() {
			loc = dataLocationOf(p.advance().Kind)
		}
		params = append(params, ast.FunctionTypeParam{Type: typ, Location: loc})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close function type parameter list")

	vis := ast.VisDefault
	mut := ast.MutNonpayable
	for p.lx.Peek().Kind.IsVisibilityKeyword() || p.lx.Peek().Kind.IsStateMutabilityKeyword() {
		k := p.advance().Kind
		if k.IsVisibilityKeyword() {
			vis = visibilityOf(k)
		} else {
			mut = mutabilityOf(k)
		}
	}

	var returns []ast.FunctionTypeParam
	end := p.lastSpan
	if p.atReturnsKeyword() {
		p.advance()
		p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'returns'")
		for !p.at(token.RParen) && !p.at(token.EOF) {
			typ, _ := p.parseType()
			loc := ast.LocationNone
			if p.lx.Peek().Kind.IsDataLocationKeyword() {
				loc = dataLocationOf(p.advance().Kind)
			}
			returns = append(returns, ast.FunctionTypeParam{Type: typ, Location: loc})
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		end, _ = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close function type return list")
		end = end.Span
	}
	span := start.Span.To(end)
	return p.b.Types.NewFunction(params, returns, vis, mut, span), true
}

func (p *Parser) parseTupleType() (ast.TypeID, bool) {
	start := p.advance() // `(`
	var elements []ast.TypeID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			elements = append(elements, ast.NoTypeID)
			p.advance()
			continue
		}
		typ, _ := p.parseType()
		elements = append(elements, typ)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	rparen, _ := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tuple type")
	return p.b.Types.NewTuple(elements, start.Span.To(rparen.Span)), true
}

func dataLocationOf(k token.Kind) ast.DataLocation {
	switch k {
	case token.KwMemory:
		return ast.LocationMemory
	case token.KwStorage:
		return ast.LocationStorage
	case token.KwCalldata:
		return ast.LocationCalldata
	default:
		return ast.LocationNone
	}
}

func visibilityOf(k token.Kind) ast.Visibility {
	switch k {
	case token.KwPublic:
		return ast.VisPublic
	case token.KwPrivate:
		return ast.VisPrivate
	case token.KwInternal:
		return ast.VisInternal
	case token.KwExternal:
		return ast.VisExternal
	default:
		return ast.VisDefault
	}
}

func mutabilityOf(k token.Kind) ast.Mutability {
	switch k {
	case token.KwPure:
		return ast.MutPure
	case token.KwView:
		return ast.MutView
	case token.KwPayable:
		return ast.MutPayable
	default:
		return ast.MutNonpayable
	}
}
