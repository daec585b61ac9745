package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// stmtStarters are the tokens that can begin a new statement; used by the
// block parser's recovery loop.
var stmtStarters = []token.Kind{
	token.LBrace, token.KwIf, token.KwFor, token.KwWhile, token.KwDo,
	token.KwReturn, token.KwBreak, token.KwContinue, token.KwEmit,
	token.KwRevert, token.KwTry, token.KwAssembly, token.KwUnchecked,
	token.RBrace, token.Semicolon,
}

// parseBlock parses a `{ ... }` statement list. unchecked marks the block as
// having been entered via the `unchecked` keyword (StmtUnchecked vs StmtBlock).
func (p *Parser) parseBlock(unchecked bool) ast.StmtID {
	start, _ := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open block")
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek()
		stmt, ok := p.parseStmt()
		if ok {
			stmts = append(stmts, stmt)
		} else {
			p.resyncUntil(stmtStarters...)
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
	end, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	return p.b.Stmts.NewBlock(stmts, unchecked, start.Span.To(end.Span))
}

// parseStmt parses a single statement.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseBlock(false), true
	case token.KwUnchecked:
		p.advance()
		return p.parseBlock(true), true
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak:
		tok := p.advance()
		semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'break'")
		return p.b.Stmts.NewBreak(tok.Span.To(semi.Span)), true
	case token.KwContinue:
		tok := p.advance()
		semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'continue'")
		return p.b.Stmts.NewContinue(tok.Span.To(semi.Span)), true
	case token.KwEmit:
		return p.parseEmitStmt()
	case token.KwRevert:
		return p.parseRevertStmt()
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwAssembly:
		return p.parseAssemblyStmt()
	default:
		return p.parseSimpleStmt()
	}
}

func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	start := p.advance() // `if`
	p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'if'")
	cond, _ := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after if condition")
	then, _ := p.parseStmt()
	els := ast.NoStmtID
	end := p.b.Stmts.Get(then).Span
	if p.at(token.KwElse) {
		p.advance()
		els, _ = p.parseStmt()
		end = p.b.Stmts.Get(els).Span
	}
	return p.b.Stmts.NewIf(cond, then, els, start.Span.To(end)), true
}

func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	start := p.advance() // `for`
	p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'for'")

	init := ast.NoStmtID
	if p.at(token.Semicolon) {
		p.advance()
	} else {
		init, _ = p.parseSimpleStmt()
	}

	cond := ast.NoExprID
	if !p.at(token.Semicolon) {
		cond, _ = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop condition")

	post := ast.NoExprID
	if !p.at(token.RParen) {
		post, _ = p.parseExpr()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-loop clauses")

	body, _ := p.parseStmt()
	end := p.b.Stmts.Get(body).Span
	return p.b.Stmts.NewFor(init, cond, post, body, start.Span.To(end)), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	start := p.advance() // `while`
	p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'while'")
	cond, _ := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after while condition")
	body, _ := p.parseStmt()
	end := p.b.Stmts.Get(body).Span
	return p.b.Stmts.NewWhile(cond, body, false, start.Span.To(end)), true
}

func (p *Parser) parseDoWhileStmt() (ast.StmtID, bool) {
	start := p.advance() // `do`
	body, _ := p.parseStmt()
	p.expect(token.KwWhile, diag.SynExpectExpression, "expected 'while' after do-block")
	p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'while'")
	cond, _ := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after while condition")
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after do-while statement")
	return p.b.Stmts.NewWhile(cond, body, true, start.Span.To(semi.Span)), true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	start := p.advance() // `return`
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		value, _ = p.parseExpr()
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return statement")
	return p.b.Stmts.NewReturn(value, start.Span.To(semi.Span)), true
}

func (p *Parser) parseEmitStmt() (ast.StmtID, bool) {
	start := p.advance() // `emit`
	call, _ := p.parseExpr()
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after emit statement")
	return p.b.Stmts.NewEmit(call, start.Span.To(semi.Span)), true
}

func (p *Parser) parseRevertStmt() (ast.StmtID, bool) {
	start := p.advance() // `revert`
	call, _ := p.parseExpr()
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after revert statement")
	return p.b.Stmts.NewRevert(call, start.Span.To(semi.Span)), true
}

// allocateTryParams copies a catch clause's parameter list into the Stmts
// table's shared TryReturns arena, mirroring the (start, count) indirection
// ast.Items uses for function parameter lists.
func (p *Parser) allocateTryParams(params []ast.Param) (ast.ParamID, uint32) {
	if len(params) == 0 {
		return ast.NoParamID, 0
	}
	var start ast.ParamID
	for idx, param := range params {
		id := ast.ParamID(p.b.Stmts.TryReturns.Allocate(param))
		if idx == 0 {
			start = id
		}
	}
	return start, uint32(len(params))
}

// parseTryStmt parses `try expr returns (...)? { ... } catch ... { ... }`.
func (p *Parser) parseTryStmt() (ast.StmtID, bool) {
	start := p.advance() // `try`
	call, _ := p.parseExpr()

	var returns []ast.Param
	if p.atReturnsKeyword() {
		p.advance()
		returns = p.parseParamList(false)
	}

	body := p.parseBlock(false)

	var clauses []ast.TryCatchClause
	end := p.b.Stmts.Get(body).Span
	for p.at(token.KwCatch) {
		clauseStart := p.advance() // `catch`
		var name source.Symbol
		var params []ast.Param
		if p.at(token.Ident) {
			name, _, _ = p.parseIdent()
			params = p.parseParamList(false)
		} else if p.at(token.LParen) {
			params = p.parseParamList(false)
		}
		clauseBody := p.parseBlock(false)
		clauseEnd := p.b.Stmts.Get(clauseBody).Span
		paramsStart, paramsCount := p.allocateTryParams(params)
		clauses = append(clauses, ast.TryCatchClause{
			Name:        name,
			ParamsStart: paramsStart,
			ParamsCount: paramsCount,
			Body:        clauseBody,
			Span:        clauseStart.Span.To(clauseEnd),
		})
		end = clauseEnd
	}

	return p.b.Stmts.NewTry(call, returns, body, clauses, start.Span.To(end)), true
}

// parseAssemblyStmt parses `assembly ("flag")? { ... }`, delegating the body
// to the inline-assembly (Yul) sub-parser.
func (p *Parser) parseAssemblyStmt() (ast.StmtID, bool) {
	start := p.advance() // `assembly`
	var flags []source.Symbol
	if p.at(token.StringLit) {
		for p.at(token.StringLit) {
			tok := p.advance()
			flags = append(flags, p.intern(tok))
		}
	}
	block := p.parseYulBlock()
	return p.b.Stmts.NewAssembly(block, flags, start.Span.To(p.lastSpan)), true
}

// parseSimpleStmt parses the statement forms that can't be distinguished
// from their leading keyword alone: a variable declaration (possibly tuple
// destructuring), or a bare expression statement.
func (p *Parser) parseSimpleStmt() (ast.StmtID, bool) {
	if p.at(token.LParen) {
		if targets, ok := p.tryParseTupleVarDeclTargets(); ok {
			return p.finishVarDecl(targets, p.lastSpan)
		}
	}
	if p.startsTypeNotExpr() {
		return p.parseVarDeclStmt()
	}
	expr, ok := p.parseExpr()
	if !ok {
		p.resyncUntil(token.Semicolon, token.RBrace)
		if p.at(token.Semicolon) {
			p.advance()
		}
		return ast.NoStmtID, false
	}
	span := p.b.Exprs.Get(expr).Span
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after statement")
	return p.b.Stmts.NewExprStmt(expr, span.To(semi.Span)), true
}

// startsTypeNotExpr reports whether the lookahead can only begin a type
// (elementary type keyword, `mapping`, or `function`), disambiguating a
// variable declaration like `uint256 x;` from an expression statement.
// A bare identifier is ambiguous between a user-defined-type declaration
// and a plain expression; parseVarDeclStmt resolves that case by trying
// the declaration form first and falling back to an expression.
func (p *Parser) startsTypeNotExpr() bool {
	k := p.lx.Peek().Kind
	return k.IsElementaryTypeKeyword() || k == token.KwMapping || k == token.KwFunction
}

// parseVarDeclStmt parses `Type [location] name [= init];`, or falls back to
// a bare expression statement when a leading identifier turns out not to
// introduce a declaration (`Counter.increment();` vs `Counter c;`).
func (p *Parser) parseVarDeclStmt() (ast.StmtID, bool) {
	start := p.lx.Peek().Span
	typ, ok := p.parseType()
	if !ok {
		p.resyncUntil(token.Semicolon, token.RBrace)
		return ast.NoStmtID, false
	}
	loc := ast.LocationNone
	if p.lx.Peek().Kind.IsDataLocationKeyword() {
		loc = dataLocationOf(p.advance().Kind)
	}
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		p.resyncUntil(token.Semicolon, token.RBrace)
		return ast.NoStmtID, false
	}
	target := ast.VarDeclTarget{Name: name, NameSpan: nameSpan, Type: typ, Location: loc}
	return p.finishVarDecl([]ast.VarDeclTarget{target}, start)
}

// tryParseTupleVarDeclTargets speculatively parses a parenthesized
// destructuring declaration target list, `(uint a, , Foo.Bar memory b) = `.
// The lexer only offers one token of lookahead, so disambiguating this from
// a parenthesized expression (`(a, b) = f()`, assigning to existing names)
// requires backtracking: the attempt runs with diagnostics suppressed, and
// on anything other than a fully-typed target list immediately followed by
// `=` it rewinds the lexer to the opening paren via SetRange and reports no
// commitment, leaving the statement to be parsed as a plain expression.
func (p *Parser) tryParseTupleVarDeclTargets() ([]ast.VarDeclTarget, bool) {
	startTok := p.lx.Peek()
	savedLastSpan := p.lastSpan
	savedDiags := p.opts.Diags
	p.opts.Diags = nil

	rewind := func() ([]ast.VarDeclTarget, bool) {
		p.opts.Diags = savedDiags
		p.lx.SetRange(startTok.Span.Lo, 0)
		p.lastSpan = savedLastSpan
		return nil, false
	}

	p.advance() // `(`
	var targets []ast.VarDeclTarget
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			targets = append(targets, ast.VarDeclTarget{Type: ast.NoTypeID})
			p.advance()
			continue
		}
		typ, typOK := p.parseType()
		if !typOK {
			return rewind()
		}
		loc := ast.LocationNone
		if p.lx.Peek().Kind.IsDataLocationKeyword() {
			loc = dataLocationOf(p.advance().Kind)
		}
		name, nameSpan, nameOK := p.parseIdent()
		if !nameOK {
			return rewind()
		}
		targets = append(targets, ast.VarDeclTarget{Name: name, NameSpan: nameSpan, Type: typ, Location: loc})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if !p.at(token.RParen) {
		return rewind()
	}
	p.advance() // `)`
	if !p.at(token.Assign) {
		return rewind()
	}
	p.opts.Diags = savedDiags
	return targets, true
}

func (p *Parser) finishVarDecl(targets []ast.VarDeclTarget, start source.Span) (ast.StmtID, bool) {
	init := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		init, _ = p.parseExpr()
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	return p.b.Stmts.NewVarDecl(targets, init, start.To(semi.Span)), true
}
