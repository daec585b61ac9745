package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseYulBlock parses an inline-assembly `{ ... }` block. When
// Options.ParseYul is false (the zero value; the compiler driver always
// sets it), the block is skipped as an opaque brace-balanced region
// instead of being parsed into the Yul sub-AST.
func (p *Parser) parseYulBlock() ast.YulBlockID {
	if !p.opts.ParseYul {
		return p.skipYulBlock()
	}
	start, _ := p.expect(token.LBrace, diag.SynYulUnexpected, "expected '{' to open assembly block")
	var stmts []ast.YulStmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek()
		stmt, ok := p.parseYulStmt()
		if ok {
			stmts = append(stmts, stmt)
		} else {
			p.resyncUntil(token.RBrace)
		}
		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}
	end, _ := p.expect(token.RBrace, diag.SynYulUnexpected, "expected '}' to close assembly block")
	return p.b.Yul.NewBlock(stmts, start.Span.To(end.Span))
}

// skipYulBlock consumes a balanced `{ ... }` region without building any Yul
// nodes, returning an empty block spanning the skipped text.
func (p *Parser) skipYulBlock() ast.YulBlockID {
	start, _ := p.expect(token.LBrace, diag.SynYulUnexpected, "expected '{' to open assembly block")
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
	}
	return p.b.Yul.NewBlock(nil, start.Span.To(p.lastSpan))
}

func (p *Parser) parseYulStmt() (ast.YulStmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseYulBlock(), true
	case token.KwLet:
		return p.parseYulVarDecl()
	case token.KwIf:
		return p.parseYulIf()
	case token.KwFor:
		return p.parseYulFor()
	case token.Ident:
		if p.lx.Peek().Text == "switch" {
			return p.parseYulSwitch()
		}
		return p.parseYulAssignOrCall()
	case token.KwFunction:
		return p.parseYulFunctionDef()
	default:
		if p.lx.Peek().Text == "leave" {
			tok := p.advance()
			return p.b.Yul.NewLeave(tok.Span), true
		}
		if p.at(token.KwBreak) {
			tok := p.advance()
			return p.b.Yul.NewBreak(tok.Span), true
		}
		if p.at(token.KwContinue) {
			tok := p.advance()
			return p.b.Yul.NewContinue(tok.Span), true
		}
		p.report(diag.SynYulUnexpected, p.errSpan(), "expected a Yul statement")
		return ast.NoYulStmtID, false
	}
}

// parseYulVarDecl parses `let x, y := expr` or a bare `let x`.
func (p *Parser) parseYulVarDecl() (ast.YulStmtID, bool) {
	start := p.advance() // `let`
	var syms []source.Symbol
	for {
		name, _, ok := p.parseYulIdentText()
		if !ok {
			break
		}
		syms = append(syms, name)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	var init ast.YulExprID = ast.NoYulExprID
	end := p.lastSpan
	if p.at(token.ColonEq) {
		p.advance()
		init, _ = p.parseYulExpr()
		end = p.b.Yul.Expr(init).Span
	}
	return p.b.Yul.NewVarDecl(syms, init, start.Span.To(end)), true
}

// parseYulAssignOrCall parses an identifier-led Yul statement: a single or
// multi-target assignment (`x := e`, `x, y := f()`), or a bare call
// expression statement (`mstore(0, 1)`).
func (p *Parser) parseYulAssignOrCall() (ast.YulStmtID, bool) {
	first := p.lx.Peek()
	name, _, ok := p.parseYulIdentText()
	if !ok {
		return ast.NoYulStmtID, false
	}

	if p.at(token.Comma) || p.at(token.ColonEq) {
		targets := []source.Symbol{name}
		for p.at(token.Comma) {
			p.advance()
			next, _, ok := p.parseYulIdentText()
			if !ok {
				break
			}
			targets = append(targets, next)
		}
		p.expect(token.ColonEq, diag.SynYulUnexpected, "expected ':=' in Yul assignment")
		value, _ := p.parseYulExpr()
		end := p.b.Yul.Expr(value).Span
		return p.b.Yul.NewAssign(targets, value, first.Span.To(end)), true
	}

	// Bare identifier reference is not a legal Yul statement on its own; the
	// only other identifier-led form is a call.
	if p.at(token.LParen) {
		call := p.parseYulCallTail(name, first.Span)
		end := p.b.Yul.Expr(call).Span
		return p.b.Yul.NewExprStmt(call, first.Span.To(end)), true
	}

	p.report(diag.SynYulUnexpected, first.Span, "expected ':=' or '(' after identifier")
	return ast.NoYulStmtID, false
}

func (p *Parser) parseYulIf() (ast.YulStmtID, bool) {
	start := p.advance() // `if`
	cond, _ := p.parseYulExpr()
	body := p.parseYulBlock()
	end := p.b.Yul.Block(body).Span
	return p.b.Yul.NewIf(cond, body, start.Span.To(end)), true
}

func (p *Parser) parseYulFor() (ast.YulStmtID, bool) {
	start := p.advance() // `for`
	init := p.parseYulBlock()
	cond, _ := p.parseYulExpr()
	post := p.parseYulBlock()
	body := p.parseYulBlock()
	end := p.b.Yul.Block(body).Span
	return p.b.Yul.NewFor(init, cond, post, body, start.Span.To(end)), true
}

func (p *Parser) parseYulSwitch() (ast.YulStmtID, bool) {
	start := p.advance() // `switch`
	subject, _ := p.parseYulExpr()
	var cases []ast.YulCase
	for p.at(token.Ident) && (p.lx.Peek().Text == "case" || p.lx.Peek().Text == "default") {
		caseTok := p.advance()
		isDefault := caseTok.Text == "default"
		var lit ast.YulExprID = ast.NoYulExprID
		if !isDefault {
			lit, _ = p.parseYulExpr()
		}
		body := p.parseYulBlock()
		bodySpan := p.b.Yul.Block(body).Span
		cases = append(cases, ast.YulCase{Default: isDefault, Literal: lit, Body: body, Span: caseTok.Span.To(bodySpan)})
	}
	end := start.Span
	if len(cases) > 0 {
		end = cases[len(cases)-1].Span
	}
	return p.b.Yul.NewSwitch(subject, cases, start.Span.To(end)), true
}

func (p *Parser) parseYulFunctionDef() (ast.YulStmtID, bool) {
	start := p.advance() // `function`
	name, nameSpan, _ := p.parseYulIdentText()
	p.expect(token.LParen, diag.SynYulExpectIdentifier, "expected '(' after Yul function name")
	var params []ast.YulParam
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pname, pspan, ok := p.parseYulIdentText()
		if !ok {
			break
		}
		params = append(params, ast.YulParam{Name: pname, Span: pspan})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close Yul function parameter list")

	var returns []ast.YulParam
	if p.at(token.Arrow) {
		p.advance()
		for {
			rname, rspan, ok := p.parseYulIdentText()
			if !ok {
				break
			}
			returns = append(returns, ast.YulParam{Name: rname, Span: rspan})
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}

	body := p.parseYulBlock()
	end := p.b.Yul.Block(body).Span
	return p.b.Yul.NewFunctionDef(name, nameSpan, params, returns, body, start.Span.To(end)), true
}

// parseYulIdentText expects a Yul identifier. Yul identifiers collide with
// several Solidity keywords (e.g. a local named `let`'s use as a variable
// name never arises, but `function`/`if`/`for` are reused token kinds), so
// this accepts any Ident token verbatim.
func (p *Parser) parseYulIdentText() (source.Symbol, source.Span, bool) {
	tok, ok := p.expect(token.Ident, diag.SynYulExpectIdentifier, "expected identifier")
	if !ok {
		return source.Symbol(0), tok.Span, false
	}
	return p.intern(tok), tok.Span, true
}

func (p *Parser) parseYulExpr() (ast.YulExprID, bool) {
	switch {
	case p.at(token.NumberLit) || p.at(token.HexNumberLit):
		tok := p.advance()
		return p.b.Yul.NewLit(ast.YulLitNumber, p.intern(tok), tok.Span), true
	case p.at(token.StringLit):
		tok := p.advance()
		return p.b.Yul.NewLit(ast.YulLitString, p.intern(tok), tok.Span), true
	case p.at(token.HexStringLit):
		tok := p.advance()
		return p.b.Yul.NewLit(ast.YulLitHexString, p.intern(tok), tok.Span), true
	case p.at(token.KwTrue) || p.at(token.KwFalse) || p.at(token.BoolLit):
		tok := p.advance()
		return p.b.Yul.NewLit(ast.YulLitBool, p.intern(tok), tok.Span), true
	case p.at(token.Ident):
		tok := p.advance()
		name := p.intern(tok)
		if p.at(token.LParen) {
			return p.parseYulCallTail(name, tok.Span), true
		}
		return p.b.Yul.NewIdent(name, tok.Span), true
	default:
		sp := p.errSpan()
		p.report(diag.SynYulUnexpected, sp, "expected a Yul expression")
		return ast.NoYulExprID, false
	}
}

func (p *Parser) parseYulCallTail(callee source.Symbol, calleeSpan source.Span) ast.YulExprID {
	p.advance() // `(`
	var args []ast.YulExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, _ := p.parseYulExpr()
		args = append(args, arg)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	rparen, _ := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close Yul call")
	return p.b.Yul.NewCall(callee, args, calleeSpan.To(rparen.Span))
}
