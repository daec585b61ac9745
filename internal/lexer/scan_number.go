package lexer

import (
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/token"
)

// scanNumber scans a decimal or hex number literal. Solidity has no binary
// or octal literal syntax and no built-in numeric suffixes (the `wei`,
// `gwei`, `ether`, `seconds`, `minutes`, ... unit denominations are parsed
// as a separate trailing Ident by the parser, not folded into the literal
// here). Whether a NumberLit is integer- or fraction-valued is a semantic
// question, not a lexical one: both "1" and "1.5" are NumberLit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			if lx.cursor.Peek() != '_' {
				digits++
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if digits == 0 {
			lx.errLex(diag.LexBadNumberLiteral, sp, "expected hex digit after '0x'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		return token.Token{Kind: token.HexNumberLit, Span: sp, Text: lx.text(sp)}
	}

	kind := token.NumberLit

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumberLiteral, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.scanDecDigits()
		return lx.finishNumber(start, kind)
	}

	lx.scanDecDigits()

	if _, b1, ok := lx.cursor.Peek2(); ok && lx.cursor.Peek() == '.' && isDec(b1) {
		lx.cursor.Bump()
		lx.scanDecDigits()
	}

	return lx.finishNumber(start, kind)
}

func (lx *Lexer) scanDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumberLiteral, sp, "expected digit in exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.scanDecDigits()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
