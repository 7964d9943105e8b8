// Package storage holds the in-memory entry and link stores a graph is built on.
//
// Stores reject duplicates instead of overwriting and keep insertion order, so
// iteration is deterministic. They are written by a single builder goroutine and
// read concurrently only after the owning graph is sealed.
package storage

import (
	"fmt"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
)

// EntryStore maps identifiers to entries. Entries are copied on the way in and
// on the way out, so nothing outside the store shares its payloads.
type EntryStore struct {
	entries map[identifier.ID]entry.Entry
	order   []identifier.ID
	byKind  map[entry.Kind][]identifier.ID
	byOrder map[int][]identifier.ID
}

// NewEntryStore creates an empty store.
func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make(map[identifier.ID]entry.Entry),
		byKind:  make(map[entry.Kind][]identifier.ID),
		byOrder: make(map[int][]identifier.ID),
	}
}

// Insert adds e. An existing identifier is never overwritten.
func (s *EntryStore) Insert(e entry.Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("insert %s: %w", e.ID, err)
	}
	if _, exists := s.entries[e.ID]; exists {
		return fmt.Errorf("insert %s: %w", e.ID, ErrDuplicate)
	}
	s.entries[e.ID] = e.Clone()
	s.order = append(s.order, e.ID)
	s.byKind[e.Kind] = append(s.byKind[e.Kind], e.ID)
	if n, ok := e.OrderOf(); ok {
		s.byOrder[n] = append(s.byOrder[n], e.ID)
	}
	return nil
}

// Get returns the entry stored under id.
func (s *EntryStore) Get(id identifier.ID) (entry.Entry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return entry.Entry{}, false
	}
	return e.Clone(), true
}

// Has reports whether id is stored.
func (s *EntryStore) Has(id identifier.ID) bool {
	_, ok := s.entries[id]
	return ok
}

// HasKind reports whether id is stored with the given kind.
func (s *EntryStore) HasKind(id identifier.ID, kind entry.Kind) bool {
	e, ok := s.entries[id]
	return ok && e.Kind == kind
}

// OfKind returns entries of one kind in insertion order.
func (s *EntryStore) OfKind(kind entry.Kind) []entry.Entry {
	return s.resolve(s.byKind[kind])
}

// OfOrder returns the anchors, order-level and location-level entries of order n
// in insertion order.
func (s *EntryStore) OfOrder(n int) []entry.Entry {
	return s.resolve(s.byOrder[n])
}

// All returns every entry in insertion order.
func (s *EntryStore) All() []entry.Entry {
	return s.resolve(s.order)
}

// IDs returns every identifier in insertion order.
func (s *EntryStore) IDs() []identifier.ID {
	out := make([]identifier.ID, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of stored entries.
func (s *EntryStore) Len() int { return len(s.order) }

func (s *EntryStore) resolve(ids []identifier.ID) []entry.Entry {
	out := make([]entry.Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.entries[id].Clone())
	}
	return out
}
