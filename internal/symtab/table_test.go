package symtab

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"lexid/internal/name"
	"lexid/internal/source"
)

func TestTableDeduplicates(t *testing.T) {
	tab := New[name.Identifier](nil)
	sp1 := source.Span{Start: 0, End: 3}
	sp2 := source.Span{Start: 10, End: 13}

	a := tab.Add(name.MustIdentifier("foo"), sp1)
	b := tab.Add(name.MustIdentifier(string([]byte("foo"))), sp2)
	c := tab.Add(name.MustIdentifier("bar"), sp2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, tab.Len())

	e, ok := tab.Lookup(name.MustIdentifier("foo"))
	require.True(t, ok)
	assert.Equal(t, 2, e.Count)
	assert.Equal(t, sp1, e.First)
	assert.Equal(t, "foo", tab.Interner().MustLookup(e.ID))

	_, ok = tab.Lookup(name.MustIdentifier("baz"))
	assert.False(t, ok)

	sorted := tab.Sorted()
	assert.Equal(t, "bar", sorted[0].Name.Text())
	assert.Equal(t, "foo", tab.Entries()[0].Name.Text())
}

func TestSetSharesInterner(t *testing.T) {
	s := NewSet()
	idID := s.Add(name.MustIdentifier("xs"), source.Span{})
	opID := s.Add(name.MustOperator("++"), source.Span{})
	tnID := s.Add(name.MustTypeName("List"), source.Span{})
	assert.Equal(t, 3, s.Len())
	assert.NotEqual(t, idID, opID)
	assert.NotEqual(t, opID, tnID)
	assert.Equal(t, source.NoStringID, s.Add(nil, source.Span{}))

	rows := s.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, name.CategoryIdentifier, rows[0].Name.Category())
	assert.Equal(t, name.CategoryTypeName, rows[1].Name.Category())
	assert.Equal(t, name.CategoryOperator, rows[2].Name.Category())
}

func TestTableConcurrentAdds(t *testing.T) {
	tab := New[name.TypeName](nil)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				tab.Add(name.MustTypeName(fmt.Sprintf("T%d", i)), source.Span{Start: uint32(g)})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, tab.Len())
	for _, e := range tab.Entries() {
		assert.Equal(t, 8, e.Count)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := NewSet()
	s.Add(name.MustIdentifier("fold"), source.Span{})
	s.Add(name.MustIdentifier("fold"), source.Span{})
	s.Add(name.MustTypeName("Tree"), source.Span{})
	s.Add(name.MustOperator("<>"), source.Span{})

	data, err := s.Snapshot()
	require.NoError(t, err)

	back, err := Restore(data)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), back.Len())
	e, ok := back.Idents.Lookup(name.MustIdentifier("fold"))
	require.True(t, ok)
	assert.Equal(t, 2, e.Count)
}

func TestRestoreRejectsInvalid(t *testing.T) {
	bad := snapshotPayload{
		Schema: snapshotSchema,
		Rows:   []snapshotRow{{Name: name.Tagged{Category: name.CategoryOperator, Text: "="}, Count: 1}},
	}
	data, err := msgpack.Marshal(&bad)
	require.NoError(t, err)
	_, err = Restore(data)
	assert.ErrorIs(t, err, name.ErrInvalidName)

	bad.Schema = 99
	data, err = msgpack.Marshal(&bad)
	require.NoError(t, err)
	_, err = Restore(data)
	assert.ErrorContains(t, err, "schema")

	_, err = Restore([]byte{0xc1})
	assert.Error(t, err)
}
