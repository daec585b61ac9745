package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

// parseFunctionLike parses a function, constructor, fallback, receive, or
// modifier declaration: a signature (name, parameters, visibility,
// mutability, modifier invocations, overrides, virtual) followed by either a
// `{ ... }` body or a bare `;`.
func (p *Parser) parseFunctionLike() (ast.ItemID, bool) {
	startSpan := p.lx.Peek().Span
	kindTok := p.advance()

	decl := ast.FunctionDecl{}
	switch kindTok.Kind {
	case token.KwConstructor:
		decl.Kind = ast.FunctionKindConstructor
	case token.KwFallback:
		decl.Kind = ast.FunctionKindFallback
	case token.KwReceive:
		decl.Kind = ast.FunctionKindReceive
	case token.KwModifier:
		decl.Kind = ast.FunctionKindModifier
	default:
		decl.Kind = ast.FunctionKindRegular
	}

	if decl.Kind == ast.FunctionKindRegular || decl.Kind == ast.FunctionKindModifier {
		decl.Name, decl.NameSpan, _ = p.parseIdent()
	}

	params := p.parseParamList(false)

	var returns []ast.Param
	for {
		switch {
		case p.lx.Peek().Kind.IsVisibilityKeyword():
			k := p.advance().Kind
			if decl.Visibility != ast.VisDefault {
				p.report(diag.SynDuplicateVisibility, p.lastSpan, "visibility specified more than once")
			}
			decl.Visibility = visibilityOf(k)
		case p.lx.Peek().Kind.IsStateMutabilityKeyword():
			k := p.advance().Kind
			if decl.Mutability != ast.MutNonpayable {
				p.report(diag.SynDuplicateStateMutability, p.lastSpan, "state mutability specified more than once")
			}
			decl.Mutability = mutabilityOf(k)
		case p.at(token.KwVirtual):
			p.advance()
			decl.Virtual = true
		case p.at(token.KwOverride):
			p.advance()
			decl.HasOverride = true
			if p.at(token.LParen) {
				p.advance()
				for !p.at(token.RParen) && !p.at(token.EOF) {
					path, _, ok := p.parsePath()
					if !ok {
						break
					}
					if len(path) > 0 {
						decl.Overrides = append(decl.Overrides, path[len(path)-1])
					}
					if p.at(token.Comma) {
						p.advance()
						continue
					}
					break
				}
				p.expect(token.RParen, diag.SynOverrideListMalformed, "expected ')' to close override list")
			}
		case p.at(token.Ident) && !p.atReturnsKeyword():
			mod := p.parseModifierInvocation()
			decl.Modifiers = append(decl.Modifiers, mod)
		case p.atReturnsKeyword():
			p.advance()
			returns = p.parseParamList(false)
		default:
			goto doneModifiers
		}
	}
doneModifiers:

	if decl.Kind == ast.FunctionKindFallback || decl.Kind == ast.FunctionKindReceive {
		if len(params) != 0 {
			code := diag.SynFallbackHasParams
			if decl.Kind == ast.FunctionKindReceive {
				code = diag.SynReceiveHasParams
			}
			p.report(code, startSpan, "fallback/receive must not declare parameters")
		}
	}

	var bodySpan source.Span
	decl.Body = ast.NoStmtID
	if p.at(token.LBrace) {
		decl.Body = p.parseBlock(false)
		bodySpan = p.b.Stmts.Get(decl.Body).Span
	} else {
		semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' or a function body")
		bodySpan = semi.Span
	}

	span := startSpan.To(bodySpan)
	return p.b.Items.NewFunction(decl, params, returns, span), true
}

// parseModifierInvocation parses one entry of a function's modifier list or
// a derived constructor's base-constructor call: a dotted path optionally
// followed by a parenthesized argument list.
func (p *Parser) parseModifierInvocation() ast.ModifierInvocation {
	path, span, _ := p.parsePath()
	var args []ast.ExprID
	if p.at(token.LParen) {
		callArgs := p.parseCallArgList()
		args = make([]ast.ExprID, len(callArgs))
		for i, a := range callArgs {
			args[i] = a.Expr
		}
		span = span.To(p.lastSpan)
	}
	return ast.ModifierInvocation{Path: path, Args: args, Span: span}
}

// parseStateVariable parses a contract-level state variable declaration:
// `Type [public|private|internal] [constant|immutable] name [= init];`.
func (p *Parser) parseStateVariable() (ast.ItemID, bool) {
	startSpan := p.lx.Peek().Span
	typ, ok := p.parseType()
	if !ok {
		p.resyncUntil(token.Semicolon, token.RBrace)
		return ast.NoItemID, false
	}

	v := ast.VariableDecl{Type: typ}
	for {
		switch {
		case p.lx.Peek().Kind.IsVisibilityKeyword():
			v.Visibility = visibilityOf(p.advance().Kind)
		case p.at(token.KwConstant):
			p.advance()
			v.Constant = true
		case p.at(token.KwImmutable):
			p.advance()
			v.Immutable = true
		case p.at(token.KwOverride):
			p.advance()
			if p.at(token.LParen) {
				p.advance()
				for !p.at(token.RParen) && !p.at(token.EOF) {
					p.parsePath()
					if p.at(token.Comma) {
						p.advance()
						continue
					}
					break
				}
				p.expect(token.RParen, diag.SynOverrideListMalformed, "expected ')' to close override list")
			}
		default:
			goto doneModifiers
		}
	}
doneModifiers:

	v.Name, v.NameSpan, _ = p.parseIdent()
	v.Init = ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		v.Init, _ = p.parseExpr()
	}
	semi, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after state variable declaration")
	return p.b.Items.NewVariable(v, startSpan.To(semi.Span)), true
}
