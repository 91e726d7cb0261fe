package name_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"lexid/internal/name"
)

type binding struct {
	Var  name.Identifier `json:"var" msgpack:"var"`
	Type name.TypeName   `json:"type" msgpack:"type"`
	Op   name.Operator   `json:"op" msgpack:"op"`
}

func TestJSONUsesText(t *testing.T) {
	b := binding{
		Var:  name.MustIdentifier("xs"),
		Type: name.MustTypeName("List"),
		Op:   name.MustOperator("++"),
	}
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"var":"xs","type":"List","op":"++"}`, string(data))

	var back binding
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b, back)
}

func TestJSONRejectsInvalid(t *testing.T) {
	var b binding
	err := json.Unmarshal([]byte(`{"var":"xs","type":"List","op":"="}`), &b)
	require.Error(t, err)
	assert.ErrorIs(t, err, name.ErrInvalidName)
	assert.True(t, b.Op.IsZero())
}

func TestMsgpackRoundTrip(t *testing.T) {
	b := binding{
		Var:  name.MustIdentifier("acc"),
		Type: name.MustTypeName("Result"),
		Op:   name.MustOperator("?"),
	}
	data, err := msgpack.Marshal(b)
	require.NoError(t, err)

	var back binding
	require.NoError(t, msgpack.Unmarshal(data, &back))
	assert.Equal(t, b, back)
}

func TestMsgpackRejectsInvalid(t *testing.T) {
	raw, err := msgpack.Marshal(map[string]string{"var": "Acc", "type": "Result", "op": "+"})
	require.NoError(t, err)

	var back binding
	err = msgpack.Unmarshal(raw, &back)
	require.Error(t, err)
	assert.ErrorIs(t, err, name.ErrInvalidName)
}

func TestTagged(t *testing.T) {
	for _, n := range []name.Name{name.MustIdentifier("f"), name.MustTypeName("F"), name.MustOperator("-")} {
		tag := name.Tag(n)
		data, err := msgpack.Marshal(tag)
		require.NoError(t, err)

		var back name.Tagged
		require.NoError(t, msgpack.Unmarshal(data, &back))
		got, err := back.Name()
		require.NoError(t, err)
		assert.True(t, name.Same(n, got))
	}

	_, err := name.Tagged{Category: name.CategoryTypeName, Text: "lower"}.Name()
	assert.ErrorIs(t, err, name.ErrInvalidName)
}

func TestCategoryText(t *testing.T) {
	data, err := json.Marshal(name.Tag(name.MustOperator("<=")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"Operator","text":"<="}`, string(data))

	var back name.Tagged
	require.NoError(t, json.Unmarshal([]byte(`{"category":"typename","text":"Vec"}`), &back))
	assert.Equal(t, name.CategoryTypeName, back.Category)

	_, err = name.Category(9).MarshalText()
	require.Error(t, err)
	require.Error(t, json.Unmarshal([]byte(`{"category":"keyword","text":"x"}`), &back))
}

func TestCategoryMsgpackRejectsUndeclared(t *testing.T) {
	data, err := msgpack.Marshal(name.CategoryOperator)
	require.NoError(t, err)
	var c name.Category
	require.NoError(t, msgpack.Unmarshal(data, &c))
	assert.Equal(t, name.CategoryOperator, c)

	for _, raw := range []uint8{0, 9, 255} {
		data, err := msgpack.Marshal(raw)
		require.NoError(t, err)
		got := name.CategoryIdentifier
		require.Error(t, msgpack.Unmarshal(data, &got), "category %d", raw)
		assert.Equal(t, name.CategoryIdentifier, got)
	}
}
