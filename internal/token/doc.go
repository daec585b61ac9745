// Package token defines lexical token kinds and trivia for the Solidity
// front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Lo..Hi).
//   - Elementary type names (address, bool, uint256, bytes32, fixed128x18,
//     ...) are lexed as dedicated keyword kinds (KwAddress, KwUint, ...),
//     not as Ident: Solidity reserves the whole uintN/intN/bytesN/fixedMxN/
//     ufixedMxN families as words, so "uint256" can never be a variable
//     name. Exact bit-width/precision validity is not checked by the lexer
//     or by any later stage.
//   - Directives and comments are represented as leading Trivia and never
//     appear in the main token stream; doc comments (/// or /** */
//     immediately preceding a declaration) are Trivia with TriviaDocLine/
//     TriviaDocBlock kind so the parser can attach NatSpec text to items.
package token
