package symtab

import (
	"lexid/internal/name"
	"lexid/internal/source"
)

// Set groups one table per category over a shared interner.
type Set struct {
	Idents    *Table[name.Identifier]
	TypeNames *Table[name.TypeName]
	Operators *Table[name.Operator]
}

func NewSet() *Set {
	in := source.NewInterner()
	return &Set{
		Idents:    New[name.Identifier](in),
		TypeNames: New[name.TypeName](in),
		Operators: New[name.Operator](in),
	}
}

// Add dispatches n to the table of its category.
func (s *Set) Add(n name.Name, sp source.Span) source.StringID {
	switch v := n.(type) {
	case name.Identifier:
		return s.Idents.Add(v, sp)
	case name.TypeName:
		return s.TypeNames.Add(v, sp)
	case name.Operator:
		return s.Operators.Add(v, sp)
	default:
		return source.NoStringID
	}
}

// Len counts distinct names across all categories.
func (s *Set) Len() int {
	return s.Idents.Len() + s.TypeNames.Len() + s.Operators.Len()
}

// Row is a category-erased entry used for listing and serialisation.
type Row struct {
	Name  name.Name
	ID    source.StringID
	First source.Span
	Count int
}

// Rows lists every entry ordered by category, then text.
func (s *Set) Rows() []Row {
	out := make([]Row, 0, s.Len())
	out = appendRows(out, s.Idents)
	out = appendRows(out, s.TypeNames)
	out = appendRows(out, s.Operators)
	return out
}

func appendRows[N interface {
	name.Name
	comparable
}](out []Row, t *Table[N]) []Row {
	for _, e := range t.Sorted() {
		out = append(out, Row{Name: e.Name, ID: e.ID, First: e.First, Count: e.Count})
	}
	return out
}
