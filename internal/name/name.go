package name

import "strings"

// Name is any of Identifier, TypeName or Operator. It is used where a grammar
// position accepts more than one category. The interface is sealed.
type Name interface {
	Category() Category
	Text() string
	String() string
	GoString() string
	isName()
}

var (
	_ Name = Identifier{}
	_ Name = TypeName{}
	_ Name = Operator{}
)

// New constructs a name of the given category.
func New(c Category, s string) (Name, error) {
	switch c {
	case CategoryIdentifier:
		return wrap(NewIdentifier(s))
	case CategoryTypeName:
		return wrap(NewTypeName(s))
	case CategoryOperator:
		return wrap(NewOperator(s))
	default:
		return nil, check(c, s)
	}
}

// wrap keeps a failed construction from leaking a zero value into a non-nil Name.
func wrap[N Name](n N, err error) (Name, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Parse constructs a name of whichever category accepts s. On failure the
// error describes s against the category its first byte aims at.
func Parse(s string) (Name, error) {
	return New(categoryFor(s), s)
}

// ParseBytes is Parse over a byte slice; the result holds a copy.
func ParseBytes(b []byte) (Name, error) {
	switch categoryFor(b) {
	case CategoryTypeName:
		return wrap(NewTypeNameBytes(b))
	case CategoryOperator:
		return wrap(NewOperatorBytes(b))
	default:
		return wrap(NewIdentifierBytes(b))
	}
}

// Same reports whether a and b are the same category with identical text.
func Same(a, b Name) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Category() == b.Category() && a.Text() == b.Text()
}

// CompareNames orders by category first, then by text bytes.
func CompareNames(a, b Name) int {
	if a.Category() != b.Category() {
		if a.Category() < b.Category() {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Text(), b.Text())
}

func debugString(c Category, s string) string {
	return c.String() + " " + s
}
