package name_test

import (
	"hash/maphash"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexid/internal/name"
)

func TestPropertyCategoryDisjointness(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	for range 20000 {
		s := name.Candidate(r, 6)
		accepted := 0
		for _, c := range name.Categories {
			if name.IsValid(c, s) {
				accepted++
			}
		}
		require.LessOrEqual(t, accepted, 1, "%q accepted by %d categories", s, accepted)
	}
}

func TestPropertyEqualityHashConsistency(t *testing.T) {
	seed := maphash.MakeSeed()
	g := name.NewGenerator(rand.New(rand.NewPCG(5, 6))).WithMaxLen(2)
	for range 2000 {
		a, b := g.Identifier(), g.Identifier()
		require.Equal(t, a.Text() == b.Text(), a == b)
		require.Equal(t, a.Text() == b.Text(), a.Equal(b))
		require.Equal(t, a.Text() == b.Text(), a.Compare(b) == 0)
		if a == b {
			require.Equal(t, a.Hash(seed), b.Hash(seed))
		}
		x, y := g.Operator(), g.Operator()
		require.Equal(t, x.Text() == y.Text(), x == y)
		if x == y {
			require.Equal(t, x.Hash(seed), y.Hash(seed))
		}
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	g := name.NewGenerator(rand.New(rand.NewPCG(9, 9)))
	for range 1000 {
		id := g.Identifier()
		back, err := name.NewIdentifier(id.Text())
		require.NoError(t, err)
		require.Equal(t, id, back)

		tn := g.TypeName()
		backTN, err := name.NewTypeName(tn.Text())
		require.NoError(t, err)
		require.Equal(t, tn, backTN)

		op := g.Operator()
		backOp, err := name.NewOperator(op.Text())
		require.NoError(t, err)
		require.Equal(t, op, backOp)

		parsed, err := name.Parse(op.Text())
		require.NoError(t, err)
		require.True(t, name.Same(op, parsed))
	}
}

func TestPropertyCheckerAgreesWithConstructors(t *testing.T) {
	r := rand.New(rand.NewPCG(77, 78))
	for range 20000 {
		s := name.Candidate(r, 5)
		_, errID := name.NewIdentifier(s)
		_, errTN := name.NewTypeName(s)
		_, errOp := name.NewOperator(s)
		assert.Equal(t, name.IsValid(name.CategoryIdentifier, s), errID == nil, s)
		assert.Equal(t, name.IsValid(name.CategoryTypeName, s), errTN == nil, s)
		assert.Equal(t, name.IsValid(name.CategoryOperator, s), errOp == nil, s)
	}
}

func TestPropertyTextStable(t *testing.T) {
	g := name.NewGenerator(rand.New(rand.NewPCG(1, 1)))
	for range 200 {
		tn := g.TypeName()
		before := tn.Text()
		_ = tn.OwnedText()
		_ = tn.String()
		_ = tn.GoString()
		_, _ = tn.MarshalText()
		require.Equal(t, before, tn.Text())
	}
}
