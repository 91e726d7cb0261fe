package lexer

import (
	"testing"

	"lexid/internal/source"
)

func TestCursorBasics(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("c.lx", []byte("ab")))
	c := NewCursor(f)

	m := c.Mark()
	if c.Peek() != 'a' || c.Bump() != 'a' || c.Peek() != 'b' {
		t.Fatal("Peek/Bump out of step")
	}
	if c.Eat('x') || !c.Eat('b') {
		t.Fatal("Eat matched the wrong byte")
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("cursor must be at EOF")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 || sp.File != f.ID {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatal("Reset did not rewind")
	}
}
