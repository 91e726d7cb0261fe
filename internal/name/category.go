package name

import (
	"fmt"
	"slices"
	"strings"
)

// Category identifies one of the three name kinds.
type Category uint8

const (
	// CategoryIdentifier is a lowercase-leading name: variables, fields, functions.
	CategoryIdentifier Category = iota + 1
	// CategoryTypeName is an uppercase-leading name: types, constructors, modules.
	CategoryTypeName
	// CategoryOperator is a symbol-leading name used for infix and prefix operators.
	CategoryOperator
)

// Categories lists every category in declaration order.
var Categories = [...]Category{CategoryIdentifier, CategoryTypeName, CategoryOperator}

func (c Category) String() string {
	switch c {
	case CategoryIdentifier:
		return "Identifier"
	case CategoryTypeName:
		return "TypeName"
	case CategoryOperator:
		return "Operator"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= CategoryIdentifier && c <= CategoryOperator
}

// ParseCategory accepts a category name in any case, plus the short forms
// ident, type and op.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "identifier", "ident":
		return CategoryIdentifier, nil
	case "typename", "type":
		return CategoryTypeName, nil
	case "operator", "op":
		return CategoryOperator, nil
	}
	return 0, fmt.Errorf("unknown category %q (expected: identifier|typename|operator)", s)
}

// byteSet is a membership table over all byte values; bytes >= 0x80 are never set.
type byteSet [256]bool

func (s *byteSet) has(b byte) bool { return s[b] }

// members returns set bytes in ascending order.
func (s *byteSet) members() []byte {
	out := make([]byte, 0, 64)
	for i := range s {
		if s[i] {
			out = append(out, byte(i))
		}
	}
	return out
}

func makeSet(parts ...string) byteSet {
	var s byteSet
	for _, p := range parts {
		for i := 0; i < len(p); i++ {
			s[p[i]] = true
		}
	}
	return s
}

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "+-*/%~<>=?!"
)

// descriptor is the parameter of the shared checker.
type descriptor struct {
	alphabet byteSet
	leading  byteSet
	// reserved rejects a text that otherwise passed; nil means no extra rule.
	reserved func(s string) bool

	// sorted members, filled by init for the generator
	alphabetList []byte
	leadingList  []byte
}

var descriptors = [...]descriptor{
	CategoryIdentifier: {
		alphabet: makeSet(lowerChars, upperChars, digitChars, "_", symbolChars),
		leading:  makeSet(lowerChars),
	},
	CategoryTypeName: {
		alphabet: makeSet(lowerChars, upperChars, digitChars, "_", symbolChars),
		leading:  makeSet(upperChars),
	},
	CategoryOperator: {
		alphabet: makeSet(lowerChars, upperChars, "_", symbolChars),
		leading:  makeSet(symbolChars),
		reserved: func(s string) bool { return s == "=" },
	},
}

func init() {
	for _, c := range Categories {
		d := &descriptors[c]
		d.alphabetList = d.alphabet.members()
		d.leadingList = d.leading.members()
	}
}

func (c Category) descriptor() *descriptor {
	if !c.Valid() {
		return nil
	}
	return &descriptors[c]
}

// Alphabet returns the bytes allowed anywhere in a name of category c.
func (c Category) Alphabet() []byte {
	d := c.descriptor()
	if d == nil {
		return nil
	}
	return slices.Clone(d.alphabetList)
}

// Leading returns the bytes allowed as the first byte of a name of category c.
func (c Category) Leading() []byte {
	d := c.descriptor()
	if d == nil {
		return nil
	}
	return slices.Clone(d.leadingList)
}
