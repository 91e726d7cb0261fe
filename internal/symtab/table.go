// Package symtab deduplicates names seen across sources.
//
// A Table relies only on name equality: two names with the same category and
// text are one entry. Texts are stored once in a shared source.Interner, so
// tables of different categories over the same interner agree on ids.
package symtab

import (
	"slices"
	"sync"

	"lexid/internal/name"
	"lexid/internal/source"
)

// Entry is one distinct name.
type Entry[N name.Name] struct {
	ID    source.StringID
	Name  N
	First source.Span // where the name was first recorded
	Count int
}

// Table is safe for concurrent use.
type Table[N interface {
	name.Name
	comparable
}] struct {
	mu      sync.RWMutex
	strings *source.Interner
	byName  map[N]int // index into entries
	entries []Entry[N]
}

// New creates a table storing texts in in; a nil in gets a private interner.
func New[N interface {
	name.Name
	comparable
}](in *source.Interner) *Table[N] {
	if in == nil {
		in = source.NewInterner()
	}
	return &Table[N]{strings: in, byName: make(map[N]int)}
}

// Add records one occurrence of n at sp and returns its string id.
// The first occurrence fixes the entry span.
func (t *Table[N]) Add(n N, sp source.Span) source.StringID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i, ok := t.byName[n]; ok {
		t.entries[i].Count++
		return t.entries[i].ID
	}
	id := t.strings.Intern(n.Text())
	t.byName[n] = len(t.entries)
	t.entries = append(t.entries, Entry[N]{ID: id, Name: n, First: sp, Count: 1})
	return id
}

// Lookup returns the entry for n.
func (t *Table[N]) Lookup(n N) (Entry[N], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.byName[n]
	if !ok {
		return Entry[N]{}, false
	}
	return t.entries[i], true
}

// Len returns the number of distinct names.
func (t *Table[N]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Entries returns a copy of all entries in first-seen order.
func (t *Table[N]) Entries() []Entry[N] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.entries)
}

// Sorted returns a copy of all entries ordered by name bytes.
func (t *Table[N]) Sorted() []Entry[N] {
	out := t.Entries()
	slices.SortFunc(out, func(a, b Entry[N]) int {
		return name.CompareNames(a.Name, b.Name)
	})
	return out
}

// Interner exposes the backing interner.
func (t *Table[N]) Interner() *source.Interner { return t.strings }
