package name

import (
	"hash/maphash"
	"strings"
)

// TypeName is an uppercase-leading name: types, constructors, modules.
type TypeName struct {
	text string
}

// NewTypeName validates s and returns it as a TypeName.
func NewTypeName(s string) (TypeName, error) {
	if err := check(CategoryTypeName, s); err != nil {
		return TypeName{}, err
	}
	return TypeName{text: s}, nil
}

// NewTypeNameBytes validates b and returns a TypeName holding a copy of it.
func NewTypeNameBytes(b []byte) (TypeName, error) {
	if err := check(CategoryTypeName, b); err != nil {
		return TypeName{}, err
	}
	return TypeName{text: string(b)}, nil
}

// MustTypeName is NewTypeName that panics on invalid input.
func MustTypeName(s string) TypeName {
	tn, err := NewTypeName(s)
	if err != nil {
		panic(err)
	}
	return tn
}

func (tn TypeName) Category() Category { return CategoryTypeName }

// Text returns the stored text without copying.
func (tn TypeName) Text() string { return tn.text }

// OwnedText returns an independent copy of the text.
func (tn TypeName) OwnedText() string { return strings.Clone(tn.text) }

// IsZero reports whether tn is the zero value.
func (tn TypeName) IsZero() bool { return tn.text == "" }

func (tn TypeName) Equal(other TypeName) bool { return tn.text == other.text }

// Compare orders type names lexicographically by bytes.
func (tn TypeName) Compare(other TypeName) int { return strings.Compare(tn.text, other.text) }

// Hash depends only on the text.
func (tn TypeName) Hash(seed maphash.Seed) uint64 { return maphash.String(seed, tn.text) }

func (tn TypeName) String() string { return tn.text }

// GoString renders the debug form, e.g. "TypeName Option".
func (tn TypeName) GoString() string { return debugString(CategoryTypeName, tn.text) }

func (TypeName) isName() {}
