package source

import (
	"slices"
	"strings"
	"sync"
)

// StringID is a dense handle for an interned string.
type StringID uint32

// NoStringID is reserved for the empty string.
const NoStringID StringID = 0

// Interner maps strings to stable StringIDs. It is safe for concurrent use.
// Interned strings are copied, so callers may pass slices of larger buffers.
type Interner struct {
	mu    sync.RWMutex
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the id of s, adding it on first sight.
func (in *Interner) Intern(s string) StringID {
	in.mu.RLock()
	id, ok := in.index[s]
	in.mu.RUnlock()
	if ok {
		return id
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := strings.Clone(s)
	id = StringID(len(in.byID)) // #nosec G115 -- bounded by memory long before 2^32 entries
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns string(b) without retaining b.
func (in *Interner) InternBytes(b []byte) StringID {
	in.mu.RLock()
	id, ok := in.index[string(b)] // no allocation for map lookups
	in.mu.RUnlock()
	if ok {
		return id
	}
	return in.Intern(string(b))
}

// Lookup returns the string for id.
func (in *Interner) Lookup(id StringID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup is Lookup that panics on an unknown id.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Len counts interned strings including the reserved empty string.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byID)
}

// Snapshot returns a copy of all strings indexed by StringID.
func (in *Interner) Snapshot() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.byID)
}
