package storage

import (
	"fmt"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
)

// LinkStore maps identifiers to links. Every insert is checked against the entry
// store it was created with.
type LinkStore struct {
	entries    *EntryStore
	links      map[identifier.ID]link.Link
	order      []identifier.ID
	byKind     map[link.Kind][]identifier.ID
	byEndpoint map[identifier.ID][]identifier.ID
}

// NewLinkStore creates an empty store resolving references against entries.
func NewLinkStore(entries *EntryStore) *LinkStore {
	return &LinkStore{
		entries:    entries,
		links:      make(map[identifier.ID]link.Link),
		byKind:     make(map[link.Kind][]identifier.ID),
		byEndpoint: make(map[identifier.ID][]identifier.ID),
	}
}

// Insert adds l after checking its endpoints and tag.
func (s *LinkStore) Insert(l link.Link) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("insert %s: %w", l.ID, err)
	}
	if _, exists := s.links[l.ID]; exists {
		return fmt.Errorf("insert %s: %w", l.ID, ErrDuplicate)
	}

	endpointKind := entry.KindLocation
	if l.Kind == link.KindLine {
		endpointKind = entry.KindCoordinate
	}
	for _, id := range []identifier.ID{l.Base, l.Target} {
		if !s.entries.HasKind(id, endpointKind) {
			return fmt.Errorf("insert %s: endpoint %s is not a stored %s: %w", l.ID, id, endpointKind, ErrDanglingReference)
		}
	}
	if l.Tag != "" && !s.entries.HasKind(l.Tag, entry.KindCharacter) {
		return fmt.Errorf("insert %s: tag %s is not a stored character: %w", l.ID, l.Tag, ErrDanglingReference)
	}

	s.links[l.ID] = l
	s.order = append(s.order, l.ID)
	s.byKind[l.Kind] = append(s.byKind[l.Kind], l.ID)
	s.byEndpoint[l.Base] = append(s.byEndpoint[l.Base], l.ID)
	s.byEndpoint[l.Target] = append(s.byEndpoint[l.Target], l.ID)
	return nil
}

// Get returns the link stored under id.
func (s *LinkStore) Get(id identifier.ID) (link.Link, bool) {
	l, ok := s.links[id]
	return l, ok
}

// OfKind returns links of one kind in insertion order.
func (s *LinkStore) OfKind(kind link.Kind) []link.Link {
	return s.resolve(s.byKind[kind])
}

// Touching returns every link with id as an endpoint, in insertion order.
func (s *LinkStore) Touching(id identifier.ID) []link.Link {
	return s.resolve(s.byEndpoint[id])
}

// LinesTouching returns the Lines incident to a Coordinate.
func (s *LinkStore) LinesTouching(coordinate identifier.ID) []link.Link {
	return s.touchingOfKind(coordinate, link.KindLine)
}

// ConnectivesTouching returns the Connectives incident to a Location.
func (s *LinkStore) ConnectivesTouching(location identifier.ID) []link.Link {
	return s.touchingOfKind(location, link.KindConnective)
}

// All returns every link in insertion order.
func (s *LinkStore) All() []link.Link {
	return s.resolve(s.order)
}

// Len returns the number of stored links.
func (s *LinkStore) Len() int { return len(s.order) }

func (s *LinkStore) touchingOfKind(id identifier.ID, kind link.Kind) []link.Link {
	var out []link.Link
	for _, linkID := range s.byEndpoint[id] {
		if l := s.links[linkID]; l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func (s *LinkStore) resolve(ids []identifier.ID) []link.Link {
	out := make([]link.Link, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.links[id])
	}
	return out
}
