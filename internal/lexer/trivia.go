package lexer

import (
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/token"
)

// collectLeadingTrivia accumulates the run of trivia preceding the next
// significant token into lx.hold:
//   - runs of ' '/'\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - //... up to \n becomes TriviaLineComment
//   - ///... up to \n becomes TriviaDocLine (NatSpec); ////... stays a
//     TriviaLineComment
//   - /* ... */ becomes TriviaBlockComment, nesting-aware
//   - /** ... */ becomes TriviaDocBlock (NatSpec); /***... and /**/ stay
//     TriviaBlockComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaSpace, Span: sp, Text: lx.text(sp)})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaNewline, Span: sp, Text: lx.text(sp)})
			continue
		}

		if b == '\r' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBareCarriageReturn, sp, "bare carriage return (source should be CRLF-normalized before lexing)")
			continue
		}

		if b == '/' {
			if lx.scanCommentOrDocIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentOrDocIntoHold scans //, ///, /* */ or /** */ at the cursor
// into lx.hold. Returns false (and rewinds) if the cursor is not actually
// on a comment, so the caller falls through to operator scanning for a
// bare '/'.
func (lx *Lexer) scanCommentOrDocIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			if lx.cursor.Peek() != '/' {
				kind = token.TriviaDocLine
			}
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
		return true

	case '*':
		lx.cursor.Bump()
		kind := token.TriviaBlockComment
		if lx.cursor.Peek() == '*' {
			if b0, b1, ok := lx.cursor.Peek2(); !(ok && b0 == '*' && (b1 == '/' || b1 == '*')) {
				kind = token.TriviaDocBlock
			}
		}
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
