package name

import (
	"hash/maphash"
	"strings"
)

// Identifier is a lowercase-leading name: variables, fields, functions.
type Identifier struct {
	text string
}

// NewIdentifier validates s and returns it as an Identifier.
func NewIdentifier(s string) (Identifier, error) {
	if err := check(CategoryIdentifier, s); err != nil {
		return Identifier{}, err
	}
	return Identifier{text: s}, nil
}

// NewIdentifierBytes validates b and returns an Identifier holding a copy of it.
func NewIdentifierBytes(b []byte) (Identifier, error) {
	if err := check(CategoryIdentifier, b); err != nil {
		return Identifier{}, err
	}
	return Identifier{text: string(b)}, nil
}

// MustIdentifier is NewIdentifier that panics on invalid input.
func MustIdentifier(s string) Identifier {
	id, err := NewIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Identifier) Category() Category { return CategoryIdentifier }

// Text returns the stored text without copying.
func (id Identifier) Text() string { return id.text }

// OwnedText returns an independent copy of the text.
func (id Identifier) OwnedText() string { return strings.Clone(id.text) }

// IsZero reports whether id is the zero value, i.e. was never constructed.
func (id Identifier) IsZero() bool { return id.text == "" }

func (id Identifier) Equal(other Identifier) bool { return id.text == other.text }

// Compare orders identifiers lexicographically by bytes.
func (id Identifier) Compare(other Identifier) int { return strings.Compare(id.text, other.text) }

// Hash depends only on the text.
func (id Identifier) Hash(seed maphash.Seed) uint64 { return maphash.String(seed, id.text) }

func (id Identifier) String() string { return id.text }

// GoString renders the debug form, e.g. "Identifier foo".
func (id Identifier) GoString() string { return debugString(CategoryIdentifier, id.text) }

func (Identifier) isName() {}
