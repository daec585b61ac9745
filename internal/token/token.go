package token

import (
	"github.com/sol-lang/solc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, HexNumberLit, StringLit, UnicodeStringLit, HexStringLit, BoolLit, AddressLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, StarStar, Assign, PlusAssign, MinusAssign, StarAssign,
		SlashAssign, PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign,
		EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq, Shl, Shr, Amp, Pipe, Caret, Tilde, AndAnd, OrOr,
		Question, Colon, ColonEq, Semicolon, Comma, Dot, Arrow, FatArrow, PlusPlus, MinusMinus,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, At:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword (this excludes
// the elementary-type keywords, which have their own IsElementaryTypeKeyword).
func (t Token) IsKeyword() bool {
	return t.Kind >= KwPragma && t.Kind <= KwReceive
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
