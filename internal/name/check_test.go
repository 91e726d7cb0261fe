package name_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexid/internal/name"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		cat    name.Category
		in     string
		reason name.Reason // 0 = valid
		index  int
	}{
		{name.CategoryIdentifier, "foo", 0, 0},
		{name.CategoryIdentifier, "x1", 0, 0},
		{name.CategoryIdentifier, "is_empty?", 0, 0},
		{name.CategoryIdentifier, "set!", 0, 0},
		{name.CategoryIdentifier, "a+b", 0, 0},
		{name.CategoryIdentifier, "fooBar", 0, 0},
		{name.CategoryIdentifier, "", name.ReasonEmpty, 0},
		{name.CategoryIdentifier, "Foo", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryIdentifier, "_foo", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryIdentifier, "1foo", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryIdentifier, "+foo", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryIdentifier, "foo bar", name.ReasonIllegalCharacter, 3},
		{name.CategoryIdentifier, "foo.bar", name.ReasonIllegalCharacter, 3},
		{name.CategoryIdentifier, "fooé", name.ReasonIllegalCharacter, 3},

		{name.CategoryTypeName, "Foo", 0, 0},
		{name.CategoryTypeName, "T", 0, 0},
		{name.CategoryTypeName, "Map2_k", 0, 0},
		{name.CategoryTypeName, "", name.ReasonEmpty, 0},
		{name.CategoryTypeName, "foo", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryTypeName, "_Foo", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryTypeName, "Foo::Bar", name.ReasonIllegalCharacter, 3},

		{name.CategoryOperator, "+", 0, 0},
		{name.CategoryOperator, "*", 0, 0},
		{name.CategoryOperator, "==", 0, 0},
		{name.CategoryOperator, "*=", 0, 0},
		{name.CategoryOperator, "<=>", 0, 0},
		{name.CategoryOperator, "!not_a", 0, 0},
		{name.CategoryOperator, "", name.ReasonEmpty, 0},
		{name.CategoryOperator, "=", name.ReasonReservedOperator, 0},
		{name.CategoryOperator, "a+", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryOperator, "_+", name.ReasonBadLeadingCharacter, 0},
		{name.CategoryOperator, "+1", name.ReasonIllegalCharacter, 1},
		{name.CategoryOperator, "=.", name.ReasonIllegalCharacter, 1},
	}
	for _, tt := range tests {
		t.Run(tt.cat.String()+"/"+tt.in, func(t *testing.T) {
			err := name.Check(tt.cat, tt.in)
			if tt.reason == 0 {
				assert.NoError(t, err)
				assert.NoError(t, name.CheckBytes(tt.cat, []byte(tt.in)))
				assert.True(t, name.IsValid(tt.cat, tt.in))
				assert.True(t, name.IsValidBytes(tt.cat, []byte(tt.in)))
				return
			}
			var ne *name.InvalidNameError
			require.ErrorAs(t, err, &ne)
			assert.Equal(t, tt.reason, ne.Reason)
			assert.Equal(t, tt.cat, ne.Category)
			assert.Equal(t, tt.index, ne.Index)
			assert.False(t, name.IsValid(tt.cat, tt.in))

			var byBytes *name.InvalidNameError
			require.ErrorAs(t, name.CheckBytes(tt.cat, []byte(tt.in)), &byBytes)
			assert.Equal(t, *ne, *byBytes)
		})
	}
}

func TestCheckNonASCIIAndControlBytes(t *testing.T) {
	for _, c := range name.Categories {
		for b := 0x80; b <= 0xff; b++ {
			assert.False(t, name.IsValidBytes(c, []byte{byte(b)}))
			assert.False(t, name.IsValidBytes(c, []byte{'a', byte(b)}))
		}
		for b := 0; b < 0x20; b++ {
			assert.False(t, name.IsValidBytes(c, []byte{byte(b)}))
		}
	}
}

func TestCheckUnknownCategory(t *testing.T) {
	reason, ok := name.ReasonOf(name.Check(name.Category(0), "foo"))
	require.True(t, ok)
	assert.Equal(t, name.ReasonUnknownCategory, reason)
	assert.False(t, name.IsValid(name.Category(42), "foo"))
}

func TestCheckValidIsNilInterface(t *testing.T) {
	var err error = name.Check(name.CategoryIdentifier, "foo")
	assert.True(t, err == nil)
	err = name.CheckBytes(name.CategoryOperator, []byte("=="))
	assert.True(t, err == nil)

	err = name.Check(name.CategoryIdentifier, "Foo")
	assert.ErrorIs(t, err, name.ErrInvalidName)
}

func TestInvalidNameErrorWrapsSentinel(t *testing.T) {
	_, err := name.NewIdentifier("foo bar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, name.ErrInvalidName))

	var ne *name.InvalidNameError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, byte(' '), ne.Char)
	assert.Contains(t, err.Error(), "offset 3")

	reason, ok := name.ReasonOf(err)
	assert.True(t, ok)
	assert.Equal(t, name.ReasonIllegalCharacter, reason)

	_, ok = name.ReasonOf(errors.New("other"))
	assert.False(t, ok)
}

func TestErrorMessages(t *testing.T) {
	cases := map[string]string{
		"":   "invalid Operator: empty name",
		"=":  `invalid Operator "=": reserved`,
		"a":  `invalid Operator "a": Operator cannot start with 'a'`,
		"+ ": `invalid Operator "+ ": illegal character ' ' at offset 1`,
	}
	for in, want := range cases {
		_, err := name.NewOperator(in)
		require.Error(t, err, in)
		assert.Equal(t, want, err.Error())
	}

	_, err := name.NewIdentifier("a\x80")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte 0x80")
}

func TestClassify(t *testing.T) {
	cases := map[string]name.Category{
		"foo": name.CategoryIdentifier,
		"Foo": name.CategoryTypeName,
		"+":   name.CategoryOperator,
		"->":  name.CategoryOperator,
	}
	for in, want := range cases {
		got, ok := name.Classify(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "=", "_", "1", "foo bar", "é"} {
		_, ok := name.Classify(in)
		assert.False(t, ok, in)
	}
}

func TestAlphabetsAndLeadingSets(t *testing.T) {
	assert.Len(t, name.CategoryIdentifier.Leading(), 26)
	assert.Len(t, name.CategoryTypeName.Leading(), 26)
	assert.Equal(t, []byte("!%*+-/<=>?~"), name.CategoryOperator.Leading())

	// 26*2 letters + 10 digits + '_' + 11 symbols
	assert.Len(t, name.CategoryIdentifier.Alphabet(), 74)
	assert.Len(t, name.CategoryTypeName.Alphabet(), 74)
	assert.Len(t, name.CategoryOperator.Alphabet(), 64)
	assert.NotContains(t, name.CategoryOperator.Alphabet(), byte('0'))

	for _, c := range name.Categories {
		for _, b := range c.Leading() {
			assert.Contains(t, c.Alphabet(), b, "leading byte %q of %s outside alphabet", b, c)
		}
	}
	assert.Nil(t, name.Category(0).Alphabet())
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]name.Category{
		"identifier": name.CategoryIdentifier,
		"Ident":      name.CategoryIdentifier,
		"TypeName":   name.CategoryTypeName,
		"type":       name.CategoryTypeName,
		" OP ":       name.CategoryOperator,
	} {
		got, err := name.ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := name.ParseCategory("keyword")
	require.Error(t, err)
}
