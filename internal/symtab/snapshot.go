package symtab

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"lexid/internal/name"
)

const snapshotSchema uint16 = 1

type snapshotRow struct {
	Name  name.Tagged `msgpack:"n"`
	Count int         `msgpack:"c"`
}

type snapshotPayload struct {
	Schema uint16        `msgpack:"schema"`
	Rows   []snapshotRow `msgpack:"rows"`
}

// Snapshot encodes the set as msgpack. Spans are not kept: they refer to a
// FileSet that does not outlive the process.
func (s *Set) Snapshot() ([]byte, error) {
	rows := s.Rows()
	payload := snapshotPayload{Schema: snapshotSchema, Rows: make([]snapshotRow, 0, len(rows))}
	for _, r := range rows {
		payload.Rows = append(payload.Rows, snapshotRow{Name: name.Tag(r.Name), Count: r.Count})
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(&payload); err != nil {
		return nil, fmt.Errorf("encode name snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore decodes a snapshot into a fresh Set. Every name is revalidated; an
// invalid name fails the whole restore.
func Restore(data []byte) (*Set, error) {
	var payload snapshotPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode name snapshot: %w", err)
	}
	if payload.Schema != snapshotSchema {
		return nil, fmt.Errorf("name snapshot schema %d, want %d", payload.Schema, snapshotSchema)
	}
	s := NewSet()
	for i, r := range payload.Rows {
		n, err := r.Name.Name()
		if err != nil {
			return nil, fmt.Errorf("name snapshot row %d: %w", i, err)
		}
		if r.Count < 1 {
			return nil, fmt.Errorf("name snapshot row %d: count %d", i, r.Count)
		}
		s.restore(n, r.Count)
	}
	return s, nil
}

func (s *Set) restore(n name.Name, count int) {
	switch v := n.(type) {
	case name.Identifier:
		s.Idents.restore(v, count)
	case name.TypeName:
		s.TypeNames.restore(v, count)
	case name.Operator:
		s.Operators.restore(v, count)
	}
}

func (t *Table[N]) restore(n N, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i, ok := t.byName[n]; ok {
		t.entries[i].Count += count
		return
	}
	id := t.strings.Intern(n.Text())
	t.byName[n] = len(t.entries)
	t.entries = append(t.entries, Entry[N]{ID: id, Name: n, Count: count})
}
