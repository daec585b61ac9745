package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

const maxTokenLength = 64 * 1024 // hard limit in bytes to avoid pathological tokens

// Lexer converts a SourceFile's content into a stream of tokens.
type Lexer struct {
	file   *source.SourceFile
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // leading trivia accumulated ahead of the next token
}

// New creates a Lexer over file.
func New(file *source.SourceFile, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// SetRange restricts the lexer to the global-offset range [start, end)
// within its file, used by the parser to re-lex an inline assembly block
// or other sub-region in isolation.
func (lx *Lexer) SetRange(start, end uint32) {
	if lx == nil {
		return
	}
	lx.cursor.Off = start
	if end != 0 {
		lx.cursor.Limit = end
	}
	lx.look = nil
	lx.hold = nil
}

// Next returns the next significant token, with its leading trivia attached.
// Past EOF it always returns another EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan(), Leading: lx.takeHold()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
		if tok.Kind == token.Ident && (tok.Text == "unicode" || tok.Text == "hex") {
			if q := lx.cursor.Peek(); q == '"' || q == '\'' {
				kind := token.UnicodeStringLit
				if tok.Text == "hex" {
					kind = token.HexStringLit
				}
				tok = lx.scanPrefixedString(Mark(tok.Span.Lo), kind)
			}
		}

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	lx.enforceTokenLength(&tok)
	return tok
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{Lo: lx.cursor.Off, Hi: lx.cursor.Off}
}

func (lx *Lexer) enforceTokenLength(tok *token.Token) {
	if tok == nil {
		return
	}
	length := tok.Span.Hi - tok.Span.Lo
	if length <= maxTokenLength {
		return
	}
	msg := fmt.Sprintf("token length %d exceeds limit %d", length, maxTokenLength)
	lx.errLex(diag.LexTokenTooLong, tok.Span, msg)
	tok.Kind = token.Invalid
	if tok.Text == "" {
		tok.Text = lx.text(tok.Span)
	}
	// Fast-forward to EOF to avoid cascading work on a pathological token.
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = lx.file.StartPos + off
	}
}
