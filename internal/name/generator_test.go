package name_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexid/internal/name"
)

const samples = 500

func TestGeneratorMinimalValues(t *testing.T) {
	g := name.NewGenerator(nil)
	assert.Equal(t, name.MinimalIdentifier(), g.Identifier())
	assert.Equal(t, "v", g.Identifier().Text())
	assert.Equal(t, "T", g.TypeName().Text())

	seen := map[string]int{}
	for range samples {
		op := g.Operator()
		require.True(t, name.IsValid(name.CategoryOperator, op.Text()))
		seen[op.Text()]++
	}
	assert.Equal(t, map[string]int{"+": samples / 2, "*": samples / 2}, seen)
}

func TestMinimalValuesAreCopies(t *testing.T) {
	ops := name.MinimalOperators()
	ops[0] = name.Operator{}
	require.True(t, ops[0].IsZero())

	g := name.NewGenerator(nil)
	assert.Equal(t, "v", g.Identifier().Text())
	assert.Equal(t, name.MinimalOperators()[0], g.Operator())
	minimal := []name.Name{
		name.MinimalIdentifier(), name.MinimalTypeName(),
		name.MinimalOperators()[0], name.MinimalOperators()[1],
	}
	for _, n := range minimal {
		assert.True(t, name.IsValid(n.Category(), n.Text()), "%#v", n)
	}
}

func TestGeneratorValidity(t *testing.T) {
	g := name.NewGenerator(rand.New(rand.NewPCG(1, 2)))
	for _, c := range name.Categories {
		lengths := map[int]bool{}
		for range samples {
			n := g.Name(c)
			require.NotNil(t, n)
			require.Equal(t, c, n.Category())
			require.NoError(t, name.Check(c, n.Text()), "%#v", n)
			assert.LessOrEqual(t, len(n.Text()), name.DefaultMaxLen)
			lengths[len(n.Text())] = true
		}
		assert.Greater(t, len(lengths), 1, "%s lengths never vary", c)
	}
	assert.Nil(t, g.Name(name.Category(0)))
}

func TestGeneratorOperatorsNeverReserved(t *testing.T) {
	// single-byte operators make "=" likely to be drawn
	g := name.NewGenerator(rand.New(rand.NewPCG(7, 7))).WithMaxLen(1)
	distinct := map[string]bool{}
	for range samples {
		op := g.Operator()
		require.NotEqual(t, "=", op.Text())
		require.True(t, name.IsValid(name.CategoryOperator, op.Text()))
		distinct[op.Text()] = true
	}
	assert.Len(t, distinct, len(name.CategoryOperator.Leading())-1)
}

func TestGeneratorWithMaxLenClamps(t *testing.T) {
	g := name.NewGenerator(rand.New(rand.NewPCG(3, 4))).WithMaxLen(0)
	for range 50 {
		assert.Len(t, g.Identifier().Text(), 1)
	}
}

func TestFromFuzzBytes(t *testing.T) {
	assert.Equal(t, name.MinimalIdentifier(), name.FromFuzzBytes(name.CategoryIdentifier, nil))
	assert.Equal(t, name.MinimalTypeName(), name.FromFuzzBytes(name.CategoryTypeName, nil))
	assert.Equal(t, "+", name.FromFuzzBytes(name.CategoryOperator, nil).Text())
	assert.Nil(t, name.FromFuzzBytes(name.Category(0), []byte("x")))

	r := rand.New(rand.NewPCG(11, 13))
	for range samples {
		data := make([]byte, r.IntN(12))
		for i := range data {
			data[i] = byte(r.UintN(256))
		}
		for _, c := range name.Categories {
			n := name.FromFuzzBytes(c, data)
			require.NoError(t, name.Check(c, n.Text()), "%#v from %q", n, data)
		}
	}

	// '=' is at index 7 of the operator leading set
	eq := name.FromFuzzBytes(name.CategoryOperator, []byte{7})
	assert.Equal(t, "==", eq.Text())
}
