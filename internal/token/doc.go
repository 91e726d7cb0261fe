// Package token defines the token kinds produced by the name scanner.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Tokens of kind Ident, TypeName and Operator carry a non-nil Name whose
//     text equals Token.Text; every other kind carries a nil Name.
//   - Comments and whitespace never appear as tokens; they are kept as
//     leading Trivia of the next token.
package token
