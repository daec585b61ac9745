package lexer

import (
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/token"
)

// scanString scans a plain string literal, quoted with either ' or ".
// Solidity strings accept \n \t \r \\ \' \" \0 \xNN \uXXXX escapes; this
// lexer neither decodes nor validates them: it skips the one byte after
// each backslash, so an unknown or truncated escape is not reported.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexNewlineInString, sp, "unescaped newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanPrefixedString continues a unicode"..." or hex"..." literal whose
// prefix identifier has already been scanned. The cursor sits on the
// opening quote; start marks the beginning of the prefix identifier so the
// resulting token's span covers the whole "unicode\"...\"" or "hex\"...\""
// sequence.
func (lx *Lexer) scanPrefixedString(start Mark, kind token.Kind) token.Token {
	quote := lx.cursor.Bump()
	unterminated := diag.LexUnterminatedUnicodeString
	if kind == token.HexStringLit {
		unterminated = diag.LexUnterminatedHexString
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if kind == token.HexStringLit {
				if !isValidHexStringBody(lx.text(sp)) {
					lx.errLex(diag.LexOddHexDigits, sp, "hex string must contain an even number of hex digits")
				}
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(unterminated, sp, "unescaped newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(unterminated, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// isValidHexStringBody reports whether the hex digits inside a hex"..."
// literal (stripped of its "hex" prefix and quotes) form an even-length run.
func isValidHexStringBody(full string) bool {
	if len(full) < 2 {
		return true
	}
	// Strip the "hex" prefix and the surrounding quote characters.
	inner := full
	for len(inner) > 0 && inner[0] != '"' && inner[0] != '\'' {
		inner = inner[1:]
	}
	if len(inner) < 2 {
		return true
	}
	inner = inner[1 : len(inner)-1]
	digits := 0
	for i := 0; i < len(inner); i++ {
		if inner[i] == '_' {
			continue
		}
		digits++
	}
	return digits%2 == 0
}
