package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/source"
	"github.com/sol-lang/solc/internal/token"
)

func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	sm := source.NewSourceMap()
	id := sm.AddVirtual("test.sol", []byte(input))
	file := sm.Get(id)

	bag := diag.NewBag(64)
	dc := diag.NewDiagCtxt(bag)
	lx := lexer.New(file, lexer.Options{Diags: dc})
	return lx, bag
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\ndiags: %v",
			len(expected), len(tokens), input, tokensToString(tokens), bag.Items())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v", kind, tok.Kind)
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
}

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []string{"foo", "_bar", "__test", "x123", "camelCase", "UPPER", "$money"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.Ident, in) })
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	tests := []string{"переменная", "δ", "函数"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.Ident, in) })
	}
}

func TestKeywords_Lowercase(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"contract", token.KwContract},
		{"interface", token.KwInterface},
		{"library", token.KwLibrary},
		{"function", token.KwFunction},
		{"modifier", token.KwModifier},
		{"event", token.KwEvent},
		{"error", token.KwError},
		{"struct", token.KwStruct},
		{"enum", token.KwEnum},
		{"mapping", token.KwMapping},
		{"public", token.KwPublic},
		{"private", token.KwPrivate},
		{"internal", token.KwInternal},
		{"external", token.KwExternal},
		{"payable", token.KwPayable},
		{"memory", token.KwMemory},
		{"storage", token.KwStorage},
		{"calldata", token.KwCalldata},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"return", token.KwReturn},
		{"emit", token.KwEmit},
		{"revert", token.KwRevert},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"fallback", token.KwFallback},
		{"receive", token.KwReceive},
		{"constructor", token.KwConstructor},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, tok.Kind)
			}
		})
	}
}

func TestKeywords_CapitalizedAreIdents(t *testing.T) {
	tests := []string{"Contract", "FUNCTION", "Payable", "True"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.Ident, in) })
	}
}

func TestElementaryTypeFamilies(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"address", token.KwAddress},
		{"bool", token.KwBool},
		{"string", token.KwString},
		{"bytes", token.KwBytes},
		{"bytes32", token.KwBytes},
		{"bytes1", token.KwBytes},
		{"uint", token.KwUint},
		{"uint256", token.KwUint},
		{"int8", token.KwInt},
		{"fixed128x18", token.KwFixed},
		{"ufixed8x80", token.KwUfixed},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) { expectSingleToken(t, tt.input, tt.kind, tt.input) })
	}
	if _, ok := token.LookupKeyword("address"); !ok {
		t.Fatal("sanity: address must be a keyword")
	}
}

func TestNumbers_Decimal(t *testing.T) {
	tests := []string{"0", "123", "456789", "1_000", "1_000_000"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.NumberLit, in) })
	}
}

func TestNumbers_Hexadecimal(t *testing.T) {
	tests := []string{"0x0", "0xF", "0xDEADBEEF", "0xff", "0xAB_CD", "0X123"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.HexNumberLit, in) })
	}
}

func TestNumbers_Fraction(t *testing.T) {
	tests := []string{"1.0", "3.14", "0.5", "123.456", "1.", ".5", ".123"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.NumberLit, in) })
	}
}

func TestNumbers_Scientific(t *testing.T) {
	tests := []string{"1e10", "1E10", "1e+10", "1e-10", "1.5e10", "3.14e-2"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.NumberLit, in) })
	}
}

func TestNumbers_InvalidExponent(t *testing.T) {
	tests := []string{"1e", "1e+", "1e-"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx, bag := makeTestLexer(in)
			tok := lx.Next()
			if tok.Kind != token.Invalid && !bag.HasErrors() {
				t.Errorf("expected Invalid token or diagnostic for %q, got %v", in, tok.Kind)
			}
		})
	}
}

func TestNumbers_DotFollowedByLetter(t *testing.T) {
	// ".e10" is Dot + Ident, not a number: a leading '.' only starts a
	// number when immediately followed by a digit.
	expectTokens(t, ".e10", []token.Kind{token.Dot, token.Ident})
}

func TestString_Simple(t *testing.T) {
	tests := []string{`""`, `"hello"`, `"hello world"`, `'single'`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.StringLit, in) })
	}
}

func TestString_Escapes(t *testing.T) {
	tests := []string{`"hello\nworld"`, `"quote\"inside"`, `"backslash\\"`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) { expectSingleToken(t, in, token.StringLit, in) })
	}
}

func TestString_Unterminated(t *testing.T) {
	tests := []string{`"hello`, `"unclosed string`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx, bag := makeTestLexer(in)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for unterminated string, got %v", tok.Kind)
			}
			if !bag.HasErrors() {
				t.Error("expected diagnostic for unterminated string")
			}
		})
	}
}

func TestUnicodeAndHexStringLiterals(t *testing.T) {
	expectSingleToken(t, `unicode"café"`, token.UnicodeStringLit, `unicode"café"`)
	expectSingleToken(t, `hex"deadbeef"`, token.HexStringLit, `hex"deadbeef"`)
}

func TestHexStringOddDigitsIsError(t *testing.T) {
	lx, bag := makeTestLexer(`hex"abc"`)
	tok := lx.Next()
	if tok.Kind != token.HexStringLit {
		t.Fatalf("expected HexStringLit, got %v", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic for an odd digit count")
	}
	if bag.Items()[0].Code != diag.LexOddHexDigits {
		t.Fatalf("expected LexOddHexDigits, got %v", bag.Items()[0].Code)
	}
}

func TestUnicodeSeparatedPrefixIsPlainIdent(t *testing.T) {
	// A space between "unicode" and the quote means it's just an Ident
	// followed by an ordinary string, not a prefixed literal.
	expectTokens(t, `unicode "hello"`, []token.Kind{token.Ident, token.StringLit})
}

func TestOperators_Single(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.Plus}, {"-", token.Minus}, {"*", token.Star}, {"/", token.Slash},
		{"%", token.Percent}, {"=", token.Assign}, {"!", token.Bang}, {"<", token.Lt},
		{">", token.Gt}, {"&", token.Amp}, {"|", token.Pipe}, {"^", token.Caret},
		{"~", token.Tilde}, {"?", token.Question}, {":", token.Colon}, {";", token.Semicolon},
		{",", token.Comma}, {".", token.Dot},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) { expectSingleToken(t, tt.input, tt.kind, tt.input) })
	}
}

func TestOperators_Double(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"==", token.EqEq}, {"!=", token.BangEq}, {"<=", token.LtEq}, {">=", token.GtEq},
		{"<<", token.Shl}, {">>", token.Shr}, {"&&", token.AndAnd}, {"||", token.OrOr},
		{"->", token.Arrow}, {"=>", token.FatArrow}, {"++", token.PlusPlus}, {"--", token.MinusMinus},
		{"**", token.StarStar}, {":=", token.ColonEq},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) { expectSingleToken(t, tt.input, tt.kind, tt.input) })
	}
}

func TestOperators_Triple(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<<=", token.ShlAssign}, {">>=", token.ShrAssign},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) { expectSingleToken(t, tt.input, tt.kind, tt.input) })
	}
}

func TestOperators_Greedy(t *testing.T) {
	expectTokens(t, "<<=", []token.Kind{token.ShlAssign})
	expectTokens(t, "<<x", []token.Kind{token.Shl, token.Ident})
	expectTokens(t, "a**b", []token.Kind{token.Ident, token.StarStar, token.Ident})
}

func TestTrivia_Spaces(t *testing.T) {
	lx, _ := makeTestLexer("  \t  foo")
	tok := lx.Next()
	if tok.Kind != token.Ident || len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaSpace {
		t.Fatalf("expected Ident with one TriviaSpace, got %v %+v", tok.Kind, tok.Leading)
	}
}

func TestTrivia_DocLine(t *testing.T) {
	lx, _ := makeTestLexer("/// @notice mints a token\nfunction mint() public {}")
	tok := lx.Next()
	if tok.Kind != token.KwFunction {
		t.Fatalf("expected KwFunction, got %v", tok.Kind)
	}
	if len(tok.Leading) != 2 || tok.Leading[0].Kind != token.TriviaDocLine {
		t.Fatalf("expected leading [TriviaDocLine, TriviaNewline], got %+v", tok.Leading)
	}
}

func TestTrivia_DocBlock(t *testing.T) {
	lx, _ := makeTestLexer("/** @dev NatSpec block */\nfunction f() public {}")
	tok := lx.Next()
	if len(tok.Leading) == 0 || tok.Leading[0].Kind != token.TriviaDocBlock {
		t.Fatalf("expected TriviaDocBlock leading trivia, got %+v", tok.Leading)
	}
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("/* unterminated\nfunction")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("expected EOF after unterminated comment consuming all input, got %v", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected diagnostic for unterminated block comment")
	}
}

func TestLexer_ContractSkeleton(t *testing.T) {
	input := `pragma solidity ^0.8.0;
contract Counter {
    uint256 public count;
    function increment() external {
        count += 1;
    }
}`
	expectTokens(t, input, []token.Kind{
		// "0.8" greedily lexes as one fraction literal and ".0" as another;
		// the version pragma parser (not the lexer) rejoins the adjacent
		// tokens into the dotted version "0.8.0".
		token.KwPragma, token.KwSolidity, token.Caret, token.NumberLit, token.NumberLit, token.Semicolon,
		token.KwContract, token.Ident, token.LBrace,
		token.KwUint, token.KwPublic, token.Ident, token.Semicolon,
		token.KwFunction, token.Ident, token.LParen, token.RParen, token.KwExternal, token.LBrace,
		token.Ident, token.PlusAssign, token.NumberLit, token.Semicolon,
		token.RBrace,
		token.RBrace,
	})
}

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b c")

	peek1 := lx.Peek()
	if peek1.Kind != token.Ident || peek1.Text != "a" {
		t.Fatalf("first peek: expected Ident 'a', got %v %q", peek1.Kind, peek1.Text)
	}
	peek2 := lx.Peek()
	if peek2 != peek1 {
		t.Error("second peek should return the same token")
	}
	next1 := lx.Next()
	if next1 != peek1 {
		t.Error("next should return the peeked token")
	}
	next2 := lx.Next()
	if next2.Text != "b" {
		t.Errorf("expected 'b', got %q", next2.Text)
	}
}

func TestLexer_EOF(t *testing.T) {
	lx, _ := makeTestLexer("x")
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF again past end of input, got %v", tok.Kind)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF for empty input, got %v", tok.Kind)
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	tests := []string{"#", "§", "€"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx, bag := makeTestLexer(in)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for unknown char %q, got %v", in, tok.Kind)
			}
			if !bag.HasErrors() {
				t.Error("expected diagnostic for unknown character")
			}
		})
	}
}

func BenchmarkLexer_ContractSkeleton(b *testing.B) {
	input := "contract C { function f() public { uint256 x = 1 + 2 * 3; } }"
	sm := source.NewSourceMap()
	id := sm.AddVirtual("bench.sol", []byte(input))
	file := sm.Get(id)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}
