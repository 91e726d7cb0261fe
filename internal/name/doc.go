// Package name defines the lexical name values of the front end:
// Identifier (lowercase-leading), TypeName (uppercase-leading) and Operator
// (symbol-leading).
// Invariants:
//   - A constructed value holds a non-empty ASCII text.
//   - Every byte of the text belongs to the category alphabet and the first
//     byte belongs to the category leading set.
//   - An Operator is never the single byte "=".
//   - Values are immutable; equality is exact byte equality of the text.
//   - The zero value is not a name; constructors never return it.
//
// All three categories share one table-driven checker (see Check). The
// leading sets partition the first byte, so a text is a member of at most one
// category.
package name
