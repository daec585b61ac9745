package lexer

import (
	"bytes"

	"github.com/sol-lang/solc/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it through
// token.LookupKeyword. Token.Text is always the exact source slice; the
// lowercase copy used for lookup is scratch, never attached to the token.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.text(sp)

	lower := toLowerASCII(lex)
	if k, ok := token.LookupKeyword(lower); ok {
		return token.Token{Kind: k, Span: sp, Text: lex}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: lex}
}

const utf8RuneSelf = 0x80

func toLowerASCII(s string) string {
	if bytes.IndexFunc([]byte(s), func(r rune) bool { return r >= 'A' && r <= 'Z' }) == -1 {
		return s
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
