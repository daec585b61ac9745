package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseExpr parses a full expression, including assignment.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	p.exprDepth++
	defer func() { p.exprDepth-- }()
	if p.exprDepth > maxExprDepth {
		p.report(diag.SynExpectExpression, p.errSpan(), "expression nested too deeply")
		return ast.NoExprID, false
	}
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.ExprID, bool) {
	left, ok := p.parseTernary()
	if !ok {
		return left, false
	}
	op, isAssign := assignOpAt(p.lx.Peek().Kind)
	if !isAssign {
		return left, true
	}
	p.advance()
	right, _ := p.parseAssignment()
	leftSpan := p.b.Exprs.Get(left).Span
	rightSpan := p.b.Exprs.Get(right).Span
	return p.b.Exprs.NewAssign(op, left, right, leftSpan.To(rightSpan)), true
}

func (p *Parser) parseTernary() (ast.ExprID, bool) {
	cond, ok := p.parseBinary(0)
	if !ok {
		return cond, false
	}
	if !p.at(token.Question) {
		return cond, true
	}
	p.advance()
	then, _ := p.parseAssignment()
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' in ternary expression")
	els, _ := p.parseAssignment()
	condSpan := p.b.Exprs.Get(cond).Span
	elsSpan := p.b.Exprs.Get(els).Span
	return p.b.Exprs.NewTernary(cond, then, els, condSpan.To(elsSpan)), true
}

// parseBinary implements precedence climbing over Solidity's binary operator
// ladder (`||` lowest, `**` highest, both documented in full in the
// reference manual's "Order of Precedence of Operators" table).
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return left, false
	}
	for {
		op, prec, rightAssoc, isBin := binaryOpAt(p.lx.Peek().Kind)
		if !isBin || prec < minPrec {
			return left, true
		}
		p.advance()
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, _ := p.parseBinary(nextMin)
		leftSpan := p.b.Exprs.Get(left).Span
		rightSpan := p.b.Exprs.Get(right).Span
		left = p.b.Exprs.NewBinary(op, left, right, leftSpan.To(rightSpan))
	}
}

func binaryOpAt(k token.Kind) (op ast.BinaryOp, prec int, rightAssoc bool, ok bool) {
	switch k {
	case token.OrOr:
		return ast.BinaryOr, 0, false, true
	case token.AndAnd:
		return ast.BinaryAnd, 1, false, true
	case token.EqEq:
		return ast.BinaryEq, 2, false, true
	case token.BangEq:
		return ast.BinaryNotEq, 2, false, true
	case token.Lt:
		return ast.BinaryLess, 3, false, true
	case token.LtEq:
		return ast.BinaryLessEq, 3, false, true
	case token.Gt:
		return ast.BinaryGreater, 3, false, true
	case token.GtEq:
		return ast.BinaryGreaterEq, 3, false, true
	case token.Pipe:
		return ast.BinaryBitOr, 4, false, true
	case token.Caret:
		return ast.BinaryBitXor, 5, false, true
	case token.Amp:
		return ast.BinaryBitAnd, 6, false, true
	case token.Shl:
		return ast.BinaryShl, 7, false, true
	case token.Shr:
		return ast.BinaryShr, 7, false, true
	case token.Plus:
		return ast.BinaryAdd, 8, false, true
	case token.Minus:
		return ast.BinarySub, 8, false, true
	case token.Star:
		return ast.BinaryMul, 9, false, true
	case token.Slash:
		return ast.BinaryDiv, 9, false, true
	case token.Percent:
		return ast.BinaryMod, 9, false, true
	case token.StarStar:
		return ast.BinaryExp, 10, true, true
	default:
		return 0, 0, false, false
	}
}

func assignOpAt(k token.Kind) (ast.AssignOp, bool) {
	switch k {
	case token.Assign:
		return ast.AssignPlain, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignMod, true
	case token.PipeAssign:
		return ast.AssignBitOr, true
	case token.CaretAssign:
		return ast.AssignBitXor, true
	case token.AmpAssign:
		return ast.AssignBitAnd, true
	case token.ShlAssign:
		return ast.AssignShl, true
	case token.ShrAssign:
		return ast.AssignShr, true
	default:
		return 0, false
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	start := p.lx.Peek()
	switch start.Kind {
	case token.Bang:
		p.advance()
		operand, _ := p.parseUnary()
		return p.b.Exprs.NewUnary(ast.UnaryNot, operand, start.Span.To(p.b.Exprs.Get(operand).Span)), true
	case token.Tilde:
		p.advance()
		operand, _ := p.parseUnary()
		return p.b.Exprs.NewUnary(ast.UnaryBitNot, operand, start.Span.To(p.b.Exprs.Get(operand).Span)), true
	case token.Minus:
		p.advance()
		operand, _ := p.parseUnary()
		return p.b.Exprs.NewUnary(ast.UnaryNeg, operand, start.Span.To(p.b.Exprs.Get(operand).Span)), true
	case token.PlusPlus:
		p.advance()
		operand, _ := p.parseUnary()
		return p.b.Exprs.NewUnary(ast.UnaryPreInc, operand, start.Span.To(p.b.Exprs.Get(operand).Span)), true
	case token.MinusMinus:
		p.advance()
		operand, _ := p.parseUnary()
		return p.b.Exprs.NewUnary(ast.UnaryPreDec, operand, start.Span.To(p.b.Exprs.Get(operand).Span)), true
	case token.KwDelete:
		p.advance()
		operand, _ := p.parseUnary()
		return p.b.Exprs.NewUnary(ast.UnaryDelete, operand, start.Span.To(p.b.Exprs.Get(operand).Span)), true
	case token.KwNew:
		return p.parseNewExpr()
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parseNewExpr() (ast.ExprID, bool) {
	start := p.advance() // `new`
	typ, _ := p.parseType()
	span := start.Span.To(p.b.Types.Get(typ).Span)
	return p.b.Exprs.NewNew(typ, span), true
}

// parsePostfix parses a primary expression followed by any chain of call,
// call-options, index, slice, and member-access suffixes.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return expr, false
	}
	for {
		switch {
		case p.at(token.LParen):
			args, named := p.parseParenArgList()
			calleeSpan := p.b.Exprs.Get(expr).Span
			expr = p.b.Exprs.NewCall(expr, args, named, calleeSpan.To(p.lastSpan))
		case p.at(token.LBrace):
			opts := p.parseCallOptionsBlock()
			calleeSpan := p.b.Exprs.Get(expr).Span
			expr = p.b.Exprs.NewCallOptions(expr, opts, calleeSpan.To(p.lastSpan))
		case p.at(token.Dot):
			p.advance()
			name, nameSpan, _ := p.parseIdent()
			baseSpan := p.b.Exprs.Get(expr).Span
			expr = p.b.Exprs.NewMember(expr, name, nameSpan, baseSpan.To(nameSpan))
		case p.at(token.LBracket):
			expr = p.parseIndexOrSlice(expr)
		case p.at(token.PlusPlus):
			tok := p.advance()
			baseSpan := p.b.Exprs.Get(expr).Span
			expr = p.b.Exprs.NewUnary(ast.UnaryPostInc, expr, baseSpan.To(tok.Span))
		case p.at(token.MinusMinus):
			tok := p.advance()
			baseSpan := p.b.Exprs.Get(expr).Span
			expr = p.b.Exprs.NewUnary(ast.UnaryPostDec, expr, baseSpan.To(tok.Span))
		default:
			return expr, true
		}
	}
}

func (p *Parser) parseIndexOrSlice(base ast.ExprID) ast.ExprID {
	p.advance() // `[`
	baseSpan := p.b.Exprs.Get(base).Span

	if p.at(token.Colon) {
		p.advance()
		var end ast.ExprID = ast.NoExprID
		if !p.at(token.RBracket) {
			end, _ = p.parseExpr()
		}
		rbracket, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close slice")
		return p.b.Exprs.NewSlice(base, ast.NoExprID, end, baseSpan.To(rbracket.Span))
	}

	if p.at(token.RBracket) {
		rbracket, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'")
		return p.b.Exprs.NewSlice(base, ast.NoExprID, ast.NoExprID, baseSpan.To(rbracket.Span))
	}

	first, _ := p.parseExpr()
	if p.at(token.Colon) {
		p.advance()
		var end ast.ExprID = ast.NoExprID
		if !p.at(token.RBracket) {
			end, _ = p.parseExpr()
		}
		rbracket, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close slice")
		return p.b.Exprs.NewSlice(base, first, end, baseSpan.To(rbracket.Span))
	}
	rbracket, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close index")
	return p.b.Exprs.NewIndex(base, first, baseSpan.To(rbracket.Span))
}

// parsePrimary parses an atomic expression: identifiers, literals,
// parenthesized tuples, array literals, `new`, and type-as-expression forms
// (elementary type conversions, `payable(...)`, `type(T)`).
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Ident:
		p.advance()
		return p.b.Exprs.NewIdent(p.intern(tok), tok.Span), true

	case tok.Kind == token.KwTrue || tok.Kind == token.KwFalse || tok.Kind == token.BoolLit:
		p.advance()
		return p.b.Exprs.NewLit(ast.LitExpr{Kind: ast.LitBool, Text: p.intern(tok)}, tok.Span), true

	case tok.Kind == token.NumberLit || tok.Kind == token.HexNumberLit:
		p.advance()
		lit := ast.LitExpr{Kind: ast.LitNumber, Text: p.intern(tok)}
		if unit, ok := p.peekUnitSuffix(); ok {
			lit.Unit = unit
		}
		return p.b.Exprs.NewLit(lit, tok.Span.To(p.lastSpan)), true

	case tok.Kind == token.StringLit:
		p.advance()
		return p.b.Exprs.NewLit(ast.LitExpr{Kind: ast.LitString, Text: p.intern(tok)}, tok.Span), true

	case tok.Kind == token.UnicodeStringLit:
		p.advance()
		return p.b.Exprs.NewLit(ast.LitExpr{Kind: ast.LitUnicodeString, Text: p.intern(tok)}, tok.Span), true

	case tok.Kind == token.HexStringLit:
		p.advance()
		return p.b.Exprs.NewLit(ast.LitExpr{Kind: ast.LitHexString, Text: p.intern(tok)}, tok.Span), true

	case tok.Kind == token.AddressLit:
		p.advance()
		return p.b.Exprs.NewLit(ast.LitExpr{Kind: ast.LitNumber, Text: p.intern(tok)}, tok.Span), true

	case tok.Kind == token.KwType:
		p.advance()
		p.expect(token.LParen, diag.SynExpectType, "expected '(' after 'type'")
		typ, _ := p.parseType()
		rparen, _ := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close type(...)")
		return p.b.Exprs.NewTypeCall(typ, tok.Span.To(rparen.Span)), true

	case tok.Kind.IsElementaryTypeKeyword() || tok.Kind == token.KwPayable:
		typ, _ := p.parseTypeAtom()
		typSpan := p.b.Types.Get(typ).Span
		return p.b.Exprs.NewTypeExpr(typ, typSpan), true

	case tok.Kind == token.LParen:
		return p.parseTupleExpr()

	case tok.Kind == token.LBracket:
		return p.parseArrayExpr()

	default:
		p.report(diag.SynExpectExpression, tok.Span, "expected an expression")
		return ast.NoExprID, false
	}
}

// peekUnitSuffix recognizes the optional denomination suffix on a number
// literal (wei, gwei, ether, seconds, minutes, hours, days, weeks) and
// consumes it if present.
func (p *Parser) peekUnitSuffix() (unit source.Symbol, ok bool) {
	peek := p.lx.Peek()
	if peek.Kind != token.Ident {
		return source.Symbol(0), false
	}
	switch peek.Text {
	case "wei", "gwei", "ether", "seconds", "minutes", "hours", "days", "weeks":
		p.advance()
		return p.intern(peek), true
	default:
		return source.Symbol(0), false
	}
}

func (p *Parser) parseTupleExpr() (ast.ExprID, bool) {
	start := p.advance() // `(`
	var elements []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			elements = append(elements, ast.NoExprID)
			p.advance()
			continue
		}
		expr, _ := p.parseExpr()
		elements = append(elements, expr)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	rparen, _ := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parenthesized expression")
	return p.b.Exprs.NewTuple(elements, start.Span.To(rparen.Span)), true
}

func (p *Parser) parseArrayExpr() (ast.ExprID, bool) {
	start := p.advance() // `[`
	var elements []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		expr, _ := p.parseExpr()
		elements = append(elements, expr)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	rbracket, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	return p.b.Exprs.NewArray(elements, start.Span.To(rbracket.Span)), true
}

// parseParenArgList parses a call's argument list: either a positional,
// comma-separated expression list, or the named-argument form
// `({a: 1, b: 2})` (a single brace block as the sole argument).
func (p *Parser) parseParenArgList() ([]ast.CallArg, bool) {
	p.advance() // `(`
	if p.at(token.LBrace) {
		args := p.parseNamedArgBlock()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close call")
		return args, true
	}
	var args []ast.CallArg
	for !p.at(token.RParen) && !p.at(token.EOF) {
		expr, _ := p.parseExpr()
		args = append(args, ast.CallArg{Expr: expr})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close call")
	return args, false
}

// parseCallArgList parses a bare parenthesized call argument list (used by
// inheritance specifiers and modifier invocations, neither of which support
// the named-argument brace form).
func (p *Parser) parseCallArgList() []ast.CallArg {
	p.expect(token.LParen, diag.SynExpectType, "expected '(' to open call argument list")
	var args []ast.CallArg
	for !p.at(token.RParen) && !p.at(token.EOF) {
		expr, _ := p.parseExpr()
		args = append(args, ast.CallArg{Expr: expr})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close call argument list")
	return args
}

func (p *Parser) parseNamedArgBlock() []ast.CallArg {
	p.advance() // `{`
	var args []ast.CallArg
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, _, ok := p.parseIdent()
		if !ok {
			break
		}
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' in named argument")
		expr, _ := p.parseExpr()
		args = append(args, ast.CallArg{Name: name, Expr: expr})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close named argument list")
	return args
}

// parseCallOptionsBlock parses the `{key: value, ...}` block following a
// callee in `f.call{value: v, gas: g}(...)`.
func (p *Parser) parseCallOptionsBlock() []ast.CallOption {
	p.advance() // `{`
	var opts []ast.CallOption
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, _, ok := p.parseIdent()
		if !ok {
			break
		}
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' in call options")
		expr, _ := p.parseExpr()
		opts = append(opts, ast.CallOption{Name: name, Value: expr})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close call options")
	return opts
}
