package token

import (
	"lexid/internal/name"
	"lexid/internal/source"
)

// Token is a single scanned token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Name    name.Name // set for name kinds only
	Leading []Trivia
}

// IsName reports whether the token carries a validated name.
func (t Token) IsName() bool { return t.Kind.IsName() && t.Name != nil }

// KindOf returns the token kind for a name category.
func KindOf(c name.Category) Kind {
	switch c {
	case name.CategoryIdentifier:
		return Ident
	case name.CategoryTypeName:
		return TypeName
	case name.CategoryOperator:
		return Operator
	default:
		return Invalid
	}
}
