package graph

import (
	"fmt"
	"sort"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
	"github.com/c360studio/systematics/storage"
)

// Graph is a sealed, read-only systematics graph.
type Graph struct {
	language entry.Language
	entries  *storage.EntryStore
	links    *storage.LinkStore

	orders     []int
	termAt     map[identifier.ID]identifier.ID // location -> term
	labels     map[int]map[entry.Kind]entry.Entry
	locations  map[int][]entry.Entry // by order, position ascending
	byPosition map[int][]entry.Entry // by position, order ascending
}

func newGraph(language entry.Language, entries *storage.EntryStore, links *storage.LinkStore) *Graph {
	g := &Graph{
		language:   language,
		entries:    entries,
		links:      links,
		termAt:     make(map[identifier.ID]identifier.ID),
		labels:     make(map[int]map[entry.Kind]entry.Entry),
		locations:  make(map[int][]entry.Entry),
		byPosition: make(map[int][]entry.Entry),
	}

	for _, e := range entries.OfKind(entry.KindOrder) {
		g.orders = append(g.orders, e.Order.Value)
	}
	sort.Ints(g.orders)

	for _, e := range entries.OfKind(entry.KindLocation) {
		g.locations[e.Location.Order] = append(g.locations[e.Location.Order], e)
		g.byPosition[e.Location.Position] = append(g.byPosition[e.Location.Position], e)
	}
	for _, locs := range g.locations {
		sort.Slice(locs, func(i, j int) bool { return locs[i].Location.Position < locs[j].Location.Position })
	}
	for _, locs := range g.byPosition {
		sort.Slice(locs, func(i, j int) bool { return locs[i].Location.Order < locs[j].Location.Order })
	}

	for _, e := range entries.OfKind(entry.KindTerm) {
		g.termAt[e.Term.Location] = e.ID
	}
	for _, e := range entries.All() {
		if !e.IsOrderLevel() {
			continue
		}
		n, _ := e.OrderOf()
		if g.labels[n] == nil {
			g.labels[n] = make(map[entry.Kind]entry.Entry)
		}
		g.labels[n][e.Kind] = e
	}
	return g
}

// Language returns the language of the graph's characters.
func (g *Graph) Language() entry.Language { return g.language }

// Entry returns the entry stored under id.
func (g *Graph) Entry(id identifier.ID) (entry.Entry, bool) { return g.entries.Get(id) }

// Link returns the link stored under id.
func (g *Graph) Link(id identifier.ID) (link.Link, bool) { return g.links.Get(id) }

// Entries returns every entry in insertion order.
func (g *Graph) Entries() []entry.Entry { return g.entries.All() }

// Links returns every link in insertion order.
func (g *Graph) Links() []link.Link { return g.links.All() }

// EntriesOfKind returns entries of one kind in insertion order.
func (g *Graph) EntriesOfKind(kind entry.Kind) []entry.Entry { return g.entries.OfKind(kind) }

// EntriesOfOrder returns the anchors, order-level and location-level entries of
// order n.
func (g *Graph) EntriesOfOrder(n int) []entry.Entry { return g.entries.OfOrder(n) }

// IDs returns every entry identifier followed by every link identifier.
func (g *Graph) IDs() []identifier.ID {
	ids := g.entries.IDs()
	for _, l := range g.links.All() {
		ids = append(ids, l.ID)
	}
	return ids
}

// Orders returns the orders present, ascending.
func (g *Graph) Orders() []int {
	out := make([]int, len(g.orders))
	copy(out, g.orders)
	return out
}

// HasOrder reports whether order n is present.
func (g *Graph) HasOrder(n int) bool {
	return g.entries.HasKind(identifier.OrderID(n), entry.KindOrder)
}

// Locations returns the Location entries of order n by position.
func (g *Graph) Locations(n int) []entry.Entry {
	return cloneEntries(g.locations[n])
}

// LocationsForPosition returns the Location entries at position p across all
// orders, ascending by order.
func (g *Graph) LocationsForPosition(p int) []entry.Entry {
	return cloneEntries(g.byPosition[p])
}

func cloneEntries(in []entry.Entry) []entry.Entry {
	if len(in) == 0 {
		return nil
	}
	out := make([]entry.Entry, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}

// Terms returns the Term entries of order n by position. Locations without a
// term are skipped.
func (g *Graph) Terms(n int) []entry.Entry {
	var out []entry.Entry
	for _, loc := range g.locations[n] {
		if id, ok := g.termAt[loc.ID]; ok {
			e, _ := g.entries.Get(id)
			out = append(out, e)
		}
	}
	return out
}

// TermAtLocation returns the Term at a Location.
func (g *Graph) TermAtLocation(location identifier.ID) (entry.Term, bool) {
	id, ok := g.termAt[location]
	if !ok {
		return entry.Term{}, false
	}
	e, _ := g.entries.Get(id)
	return *e.Term, true
}

// TermCharacterAt returns the Character of the Term at a Location. It reports
// false when there is no term or its character cannot be resolved.
func (g *Graph) TermCharacterAt(location identifier.ID) (entry.Character, bool) {
	term, ok := g.TermAtLocation(location)
	if !ok {
		return entry.Character{}, false
	}
	return g.character(term.Character)
}

// Character returns the Character stored under id.
func (g *Graph) Character(id identifier.ID) (entry.Character, bool) {
	return g.character(id)
}

func (g *Graph) character(id identifier.ID) (entry.Character, bool) {
	e, ok := g.entries.Get(id)
	if !ok || e.Kind != entry.KindCharacter {
		return entry.Character{}, false
	}
	return *e.Character, true
}

// Characters returns the Character entries of language in insertion order.
func (g *Graph) Characters(language entry.Language) []entry.Entry {
	var out []entry.Entry
	for _, e := range g.entries.OfKind(entry.KindCharacter) {
		if e.Character.Language == language {
			out = append(out, e)
		}
	}
	return out
}

// ConnectivesForLocation returns the Connectives incident to a Location, ordered
// by their endpoints.
func (g *Graph) ConnectivesForLocation(location identifier.ID) ([]link.Link, error) {
	if _, err := g.location(location); err != nil {
		return nil, err
	}
	out := g.links.ConnectivesTouching(location)
	sortLinks(out)
	return out, nil
}

// ConnectivesForTerm returns the Connectives incident to the Term's Location.
func (g *Graph) ConnectivesForTerm(term identifier.ID) ([]link.Link, error) {
	e, ok := g.entries.Get(term)
	if !ok || e.Kind != entry.KindTerm {
		return nil, fmt.Errorf("term %s: %w", term, ErrNotFound)
	}
	return g.ConnectivesForLocation(e.Term.Location)
}

// Connectives returns the Connectives of order n whose endpoints sit at positions
// a and b, in either direction. Zero matches any position.
func (g *Graph) Connectives(n, a, b int) []link.Link {
	var out []link.Link
	for _, l := range g.links.OfKind(link.KindConnective) {
		base, target, err := l.Endpoints()
		if err != nil || base.Order() != n {
			continue
		}
		p, q := base.Position(), target.Position()
		if (matches(a, p) && matches(b, q)) || (matches(a, q) && matches(b, p)) {
			out = append(out, l)
		}
	}
	sortLinks(out)
	return out
}

func matches(want, got int) bool { return want == 0 || want == got }

// Lines returns the Lines of order n ordered by their endpoints.
func (g *Graph) Lines(n int) []link.Link {
	var out []link.Link
	for _, l := range g.links.OfKind(link.KindLine) {
		if order, err := l.Order(); err == nil && order == n {
			out = append(out, l)
		}
	}
	sortLinks(out)
	return out
}

// LinesForCoordinate returns the Lines incident to a Coordinate.
func (g *Graph) LinesForCoordinate(coordinate identifier.ID) []link.Link {
	out := g.links.LinesTouching(coordinate)
	sortLinks(out)
	return out
}

// CoordinateAt returns the Coordinate of a Location. It returns ErrNotFound if the
// Location does not exist. A present Location without a Coordinate cannot pass
// Seal, so that case panics.
func (g *Graph) CoordinateAt(location identifier.ID) (entry.Coordinate, error) {
	loc, err := g.location(location)
	if err != nil {
		return entry.Coordinate{}, err
	}
	e, ok := g.entries.Get(identifier.CoordinateID(loc))
	if !ok || e.Kind != entry.KindCoordinate {
		panic(fmt.Sprintf("graph: sealed location %s has no coordinate", location))
	}
	return *e.Coordinate, nil
}

// Colour returns the Colour of a Location.
func (g *Graph) Colour(location identifier.ID) (entry.Colour, bool) {
	loc, err := g.location(location)
	if err != nil {
		return entry.Colour{}, false
	}
	e, ok := g.entries.Get(identifier.ColourID(loc))
	if !ok || e.Kind != entry.KindColour {
		return entry.Colour{}, false
	}
	return *e.Colour, true
}

// location decodes and resolves a Location identifier.
func (g *Graph) location(id identifier.ID) (identifier.Loc, error) {
	ref, err := identifier.Parse(string(id))
	if err != nil {
		return identifier.Loc{}, fmt.Errorf("location %s: %w", id, err)
	}
	if ref.Kind != identifier.KindLocation || !g.entries.HasKind(id, entry.KindLocation) {
		return identifier.Loc{}, fmt.Errorf("location %s: %w", id, ErrNotFound)
	}
	return ref.Loc, nil
}

// Summary describes one order. Absent order-level entries are nil.
type Summary struct {
	Order                 int     `json:"order"`
	Name                  *string `json:"name,omitempty"`
	Coherence             *string `json:"coherence,omitempty"`
	TermDesignation       *string `json:"term_designation,omitempty"`
	ConnectiveDesignation *string `json:"connective_designation,omitempty"`
}

// OrderSummary returns the order-level vocabulary of order n.
func (g *Graph) OrderSummary(n int) (Summary, error) {
	if !g.HasOrder(n) {
		return Summary{}, fmt.Errorf("order %d: %w", n, ErrNotFound)
	}
	labels := g.labels[n]
	value := func(kind entry.Kind) *string {
		e, ok := labels[kind]
		if !ok {
			return nil
		}
		v := e.Label.Value
		return &v
	}
	return Summary{
		Order:                 n,
		Name:                  value(entry.KindSystemName),
		Coherence:             value(entry.KindCoherenceAttribute),
		TermDesignation:       value(entry.KindTermDesignation),
		ConnectiveDesignation: value(entry.KindConnectiveDesignation),
	}, nil
}

// Slice gathers everything anchored at one Location.
type Slice struct {
	Location    entry.Location   `json:"location"`
	Term        *entry.Term      `json:"term,omitempty"`
	Character   *entry.Character `json:"character,omitempty"`
	Coordinate  entry.Coordinate `json:"coordinate"`
	Colour      *entry.Colour    `json:"colour,omitempty"`
	Connectives []link.Link      `json:"connectives"`
}

// Slice returns the entries and connectives anchored at a Location.
func (g *Graph) Slice(location identifier.ID) (Slice, error) {
	coord, err := g.CoordinateAt(location)
	if err != nil {
		return Slice{}, err
	}
	e, _ := g.entries.Get(location)
	s := Slice{Location: *e.Location, Coordinate: coord}

	if term, ok := g.TermAtLocation(location); ok {
		s.Term = &term
		if c, ok := g.character(term.Character); ok {
			s.Character = &c
		}
	}
	if colour, ok := g.Colour(location); ok {
		s.Colour = &colour
	}
	s.Connectives, err = g.ConnectivesForLocation(location)
	if err != nil {
		return Slice{}, err
	}
	return s, nil
}

// Stats counts the graph's contents.
type Stats struct {
	Orders      int                `json:"orders"`
	Entries     int                `json:"entries"`
	Links       int                `json:"links"`
	Lines       int                `json:"lines"`
	Connectives int                `json:"connectives"`
	Tagged      int                `json:"tagged_connectives"`
	ByKind      map[entry.Kind]int `json:"by_kind"`
}

// Stats returns entry and link counts.
func (g *Graph) Stats() Stats {
	s := Stats{
		Orders:  len(g.orders),
		Entries: g.entries.Len(),
		Links:   g.links.Len(),
		ByKind:  make(map[entry.Kind]int),
	}
	for _, kind := range entry.Kinds() {
		if n := len(g.entries.OfKind(kind)); n > 0 {
			s.ByKind[kind] = n
		}
	}
	for _, l := range g.links.All() {
		switch l.Kind {
		case link.KindLine:
			s.Lines++
		case link.KindConnective:
			s.Connectives++
			if l.Tag != "" {
				s.Tagged++
			}
		}
	}
	return s
}

// sortLinks orders links by base then target location.
func sortLinks(links []link.Link) {
	sort.SliceStable(links, func(i, j int) bool {
		ai, bi, erri := links[i].Endpoints()
		aj, bj, errj := links[j].Endpoints()
		if erri != nil || errj != nil {
			return links[i].ID < links[j].ID
		}
		if ai != aj {
			return ai.Less(aj)
		}
		return bi.Less(bj)
	})
}
