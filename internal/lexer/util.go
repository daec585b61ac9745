package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// text returns the source slice covered by sp as a string. sp is expressed
// in global (concatenated-source-map) offsets; the file's content is
// indexed locally, so the file's StartPos is subtracted first.
func (lx *Lexer) text(sp source.Span) string {
	lo, hi := lx.cursor.local(sp.Lo), lx.cursor.local(sp.Hi)
	if int(hi) > len(lx.file.Content) {
		hi = uint32(len(lx.file.Content))
	}
	if lo > hi {
		return ""
	}
	return string(lx.file.Content[lo:hi])
}

// peekRune reads the byte at the cursor as a rune, decoding UTF-8 when the
// leading byte is non-ASCII.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.local(lx.cursor.Off):])
	return r, sz
}

// bumpRune advances the cursor past the rune returned by peekRune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}
func isIdentStartRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isNumberAfterDot reports whether the cursor sits on '.' directly followed
// by a decimal digit, the lookahead used to route a bare '.' into scanNumber.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// try3/try2 consume the given byte sequence if it matches at the cursor.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
