package name

import (
	"math/rand/v2"
)

// DefaultMaxLen bounds the length of generated names.
const DefaultMaxLen = 8

// Minimal values returned when a Generator has no randomness source.
var (
	minimalIdentifier = Identifier{text: "v"}
	minimalTypeName   = TypeName{text: "T"}
	minimalOperators  = [...]Operator{{text: "+"}, {text: "*"}}
)

// MinimalIdentifier returns "v".
func MinimalIdentifier() Identifier { return minimalIdentifier }

// MinimalTypeName returns "T".
func MinimalTypeName() TypeName { return minimalTypeName }

// MinimalOperators returns "+" and "*", the values a Generator without a
// randomness source alternates between.
func MinimalOperators() [2]Operator { return minimalOperators }

// Generator produces names that satisfy every invariant by construction. It is
// meant for property tests and fuzz harnesses that need well-formed names
// without a lexer pass. A Generator is not safe for concurrent use.
type Generator struct {
	rnd    *rand.Rand
	maxLen int
	ops    uint // round-robin position over minimalOperators when rnd is nil
}

// NewGenerator returns a generator drawing from r. With a nil r it returns the
// fixed minimal values, cycling through the two minimal operators.
func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rnd: r, maxLen: DefaultMaxLen}
}

// WithMaxLen sets the maximum generated length; n < 1 is treated as 1.
func (g *Generator) WithMaxLen(n int) *Generator {
	g.maxLen = max(n, 1)
	return g
}

func (g *Generator) Identifier() Identifier {
	if g.rnd == nil {
		return minimalIdentifier
	}
	return Identifier{text: g.sample(CategoryIdentifier)}
}

func (g *Generator) TypeName() TypeName {
	if g.rnd == nil {
		return minimalTypeName
	}
	return TypeName{text: g.sample(CategoryTypeName)}
}

// Operator never returns "=".
func (g *Generator) Operator() Operator {
	if g.rnd == nil {
		op := minimalOperators[g.ops%uint(len(minimalOperators))]
		g.ops++
		return op
	}
	for {
		s := g.sample(CategoryOperator)
		if !descriptors[CategoryOperator].reserved(s) {
			return Operator{text: s}
		}
	}
}

// Name returns a generated name of category c, or nil for an unknown category.
func (g *Generator) Name(c Category) Name {
	switch c {
	case CategoryIdentifier:
		return g.Identifier()
	case CategoryTypeName:
		return g.TypeName()
	case CategoryOperator:
		return g.Operator()
	default:
		return nil
	}
}

func (g *Generator) sample(c Category) string {
	d := &descriptors[c]
	leading, alphabet := d.leadingList, d.alphabetList

	n := 1 + g.rnd.IntN(g.maxLen)
	buf := make([]byte, n)
	buf[0] = leading[g.rnd.IntN(len(leading))]
	for i := 1; i < n; i++ {
		buf[i] = alphabet[g.rnd.IntN(len(alphabet))]
	}
	return string(buf)
}

// junkBytes are bytes outside every alphabet, mixed into candidates.
const junkBytes = " .,;:()[]{}\"'`#$&|^@\\\t\n\x00\x7f\x80\xff"

// Candidate draws an arbitrary candidate, valid or not, for suites that test
// the checker itself. Unlike the name methods it needs a randomness source.
func Candidate(r *rand.Rand, maxLen int) string {
	n := r.IntN(max(maxLen, 1) + 1)
	pool := lowerChars + upperChars + digitChars + "_" + symbolChars + junkBytes
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = pool[r.IntN(len(pool))]
	}
	return string(buf)
}

// FromFuzzBytes maps arbitrary fuzzer input onto a valid name of category c.
// Each input byte selects one alphabet member; empty input yields the minimal
// value. Operators that would come out as "=" are replaced by "==".
func FromFuzzBytes(c Category, data []byte) Name {
	d := c.descriptor()
	if d == nil {
		return nil
	}
	if len(data) == 0 {
		switch c {
		case CategoryTypeName:
			return minimalTypeName
		case CategoryOperator:
			return minimalOperators[0]
		default:
			return minimalIdentifier
		}
	}
	leading, alphabet := d.leadingList, d.alphabetList
	buf := make([]byte, len(data))
	buf[0] = leading[int(data[0])%len(leading)]
	for i := 1; i < len(data); i++ {
		buf[i] = alphabet[int(data[i])%len(alphabet)]
	}
	s := string(buf)
	switch c {
	case CategoryTypeName:
		return TypeName{text: s}
	case CategoryOperator:
		if d.reserved(s) {
			s = "=="
		}
		return Operator{text: s}
	default:
		return Identifier{text: s}
	}
}
