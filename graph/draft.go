// Package graph holds the systematics property graph.
//
// A graph is assembled in a Draft, which checks references as entries and links
// are added, and becomes a read-only Graph through Seal. Sealed graphs never
// change and are safe for concurrent readers.
package graph

import (
	"fmt"
	"sort"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
	"github.com/c360studio/systematics/storage"
)

// Draft is a graph under construction.
type Draft struct {
	language entry.Language
	entries  *storage.EntryStore
	links    *storage.LinkStore
	sealed   bool
}

// NewDraft starts an empty graph whose characters belong to language.
func NewDraft(language entry.Language) *Draft {
	entries := storage.NewEntryStore()
	return &Draft{
		language: language,
		entries:  entries,
		links:    storage.NewLinkStore(entries),
	}
}

// AddEntry stores e. The entries e references (its Order, Location, Position or
// Character) must already be present.
func (d *Draft) AddEntry(e entry.Entry) error {
	if d.sealed {
		return ErrSealed
	}
	if err := d.checkReferences(e); err != nil {
		return err
	}
	return d.entries.Insert(e)
}

// AddLink stores l. Its endpoints and tag must already be present.
func (d *Draft) AddLink(l link.Link) error {
	if d.sealed {
		return ErrSealed
	}
	return d.links.Insert(l)
}

// Has reports whether an entry or link with id has been added.
func (d *Draft) Has(id identifier.ID) bool {
	if d.entries.Has(id) {
		return true
	}
	_, ok := d.links.Get(id)
	return ok
}

// Entry returns a copy of the entry added under id.
func (d *Draft) Entry(id identifier.ID) (entry.Entry, bool) { return d.entries.Get(id) }

// Language returns the character language of the draft.
func (d *Draft) Language() entry.Language { return d.language }

func (d *Draft) checkReferences(e entry.Entry) error {
	require := func(id identifier.ID, kind entry.Kind) error {
		if !d.entries.HasKind(id, kind) {
			return fmt.Errorf("%s %s references missing %s %s: %w", e.Kind, e.ID, kind, id, storage.ErrDanglingReference)
		}
		return nil
	}

	switch e.Kind {
	case entry.KindLocation:
		if e.Location == nil {
			return nil
		}
		if err := require(e.Location.OrderID(), entry.KindOrder); err != nil {
			return err
		}
		return require(e.Location.PositionID(), entry.KindPosition)
	case entry.KindSystemName, entry.KindCoherenceAttribute, entry.KindTermDesignation, entry.KindConnectiveDesignation:
		if e.Label == nil {
			return nil
		}
		return require(e.Label.Order, entry.KindOrder)
	case entry.KindTerm:
		if e.Term == nil {
			return nil
		}
		if err := require(e.Term.Location, entry.KindLocation); err != nil {
			return err
		}
		return require(e.Term.Character, entry.KindCharacter)
	case entry.KindCoordinate, entry.KindColour:
		if e.Anchor() == "" {
			return nil
		}
		return require(e.Anchor(), entry.KindLocation)
	case entry.KindCharacter:
		if e.Character != nil && e.Character.Language != d.language {
			return fmt.Errorf("%w: character %s is %s, graph is %s", entry.ErrInvalidEntry, e.ID, e.Character.Language, d.language)
		}
	}
	return nil
}

// Seal validates every present order and returns the read-only graph. A draft
// seals once; later calls return ErrSealed.
func (d *Draft) Seal() (*Graph, error) {
	if d.sealed {
		return nil, ErrSealed
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	d.sealed = true
	return newGraph(d.language, d.entries, d.links), nil
}

// validate checks that each Order n has Locations at exactly positions 1..n and
// that each Location has its Coordinate.
func (d *Draft) validate() error {
	orders := make(map[int]bool)
	for _, e := range d.entries.OfKind(entry.KindOrder) {
		orders[e.Order.Value] = true
	}

	positions := make(map[int]map[int]bool)
	for _, e := range d.entries.OfKind(entry.KindLocation) {
		n := e.Location.Order
		if !orders[n] {
			return fmt.Errorf("%w: location %s without order %d", ErrIncomplete, e.ID, n)
		}
		if positions[n] == nil {
			positions[n] = make(map[int]bool)
		}
		positions[n][e.Location.Position] = true
		if !d.entries.HasKind(identifier.CoordinateID(e.Location.Loc()), entry.KindCoordinate) {
			return fmt.Errorf("%w: location %s has no coordinate", ErrIncomplete, e.ID)
		}
	}

	present := make([]int, 0, len(orders))
	for n := range orders {
		present = append(present, n)
	}
	sort.Ints(present)
	for _, n := range present {
		if len(positions[n]) != n {
			return fmt.Errorf("%w: order %d has %d of %d locations", ErrIncomplete, n, len(positions[n]), n)
		}
	}
	return nil
}
