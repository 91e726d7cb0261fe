package name

import (
	"hash/maphash"
	"strings"
)

// Operator is a symbol-leading name such as "+", "==" or "*=".
// The bare "=" is reserved for binding and is never an Operator.
type Operator struct {
	text string
}

// NewOperator validates s and returns it as an Operator.
func NewOperator(s string) (Operator, error) {
	if err := check(CategoryOperator, s); err != nil {
		return Operator{}, err
	}
	return Operator{text: s}, nil
}

// NewOperatorBytes validates b and returns an Operator holding a copy of it.
func NewOperatorBytes(b []byte) (Operator, error) {
	if err := check(CategoryOperator, b); err != nil {
		return Operator{}, err
	}
	return Operator{text: string(b)}, nil
}

// MustOperator is NewOperator that panics on invalid input.
func MustOperator(s string) Operator {
	op, err := NewOperator(s)
	if err != nil {
		panic(err)
	}
	return op
}

func (op Operator) Category() Category { return CategoryOperator }
func (op Operator) Text() string { return op.text }
func (op Operator) OwnedText() string { return strings.Clone(op.text) }
func (op Operator) IsZero() bool { return op.text == "" }
func (op Operator) Equal(o Operator) bool { return op.text == o.text }
func (op Operator) Compare(o Operator) int {
	return strings.Compare(op.text, o.text)
}
func (op Operator) Hash(seed maphash.Seed) uint64 { return maphash.String(seed, op.text) }
func (op Operator) String() string { return op.text }
func (op Operator) GoString() string { return debugString(CategoryOperator, op.text) }

func (Operator) isName() {}
