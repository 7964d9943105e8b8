// Package entry defines the node taxonomy of a systematics graph.
//
// Entries fall into four groups:
//
//   - anchors: Order, Position and Location (the pullback of Order and Position)
//   - order-level: SystemName, CoherenceAttribute, TermDesignation and
//     ConnectiveDesignation, each referencing an Order
//   - location-level: Term, Coordinate and Colour, each referencing a Location
//   - Character: unanchored semantic content shared by Terms and Connective tags
//
// Entry is a flat tagged union. Exactly one payload pointer is set and it matches
// Kind; consumers dispatch with a switch on Kind.
package entry

import (
	"fmt"

	"github.com/c360studio/systematics/identifier"
)

// Kind is the entry kind. It shares its values with identifier.Kind.
type Kind = identifier.Kind

// Entry kinds.
const (
	KindOrder                 = identifier.KindOrder
	KindPosition              = identifier.KindPosition
	KindLocation              = identifier.KindLocation
	KindSystemName            = identifier.KindSystemName
	KindCoherenceAttribute    = identifier.KindCoherenceAttribute
	KindTermDesignation       = identifier.KindTermDesignation
	KindConnectiveDesignation = identifier.KindConnectiveDesignation
	KindTerm                  = identifier.KindTerm
	KindCoordinate            = identifier.KindCoordinate
	KindColour                = identifier.KindColour
	KindCharacter             = identifier.KindCharacter
)

// Kinds lists every entry kind in taxonomy order.
func Kinds() []Kind {
	return []Kind{
		KindOrder, KindPosition, KindLocation,
		KindSystemName, KindCoherenceAttribute, KindTermDesignation, KindConnectiveDesignation,
		KindTerm, KindCoordinate, KindColour,
		KindCharacter,
	}
}

// Entry is a node in the graph.
type Entry struct {
	Kind Kind          `json:"kind"`
	ID   identifier.ID `json:"id"`

	Order      *Order      `json:"order,omitempty"`
	Position   *Position   `json:"position,omitempty"`
	Location   *Location   `json:"location,omitempty"`
	Label      *Label      `json:"label,omitempty"`
	Term       *Term       `json:"term,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Colour     *Colour     `json:"colour,omitempty"`
	Character  *Character  `json:"character,omitempty"`
}

// Order is the system level anchor.
type Order struct {
	Value int `json:"value"`
}

// Position is the abstract n-th place, shared across orders.
type Position struct {
	Value int `json:"value"`
}

// Location binds a position within an order.
type Location struct {
	Order    int `json:"order"`
	Position int `json:"position"`
}

// Loc returns the validated pair. Location entries are only built from a valid
// identifier.Loc, so this does not fail for entries held in a store.
func (l Location) Loc() identifier.Loc { return identifier.MustLoc(l.Order, l.Position) }

// OrderID returns the referenced Order identifier.
func (l Location) OrderID() identifier.ID { return identifier.OrderID(l.Order) }

// PositionID returns the referenced Position identifier.
func (l Location) PositionID() identifier.ID { return identifier.PositionID(l.Position) }

// Label is the payload of the four order-level kinds.
type Label struct {
	Order identifier.ID `json:"order"`
	Value string        `json:"value"`
}

// Term places a Character at a Location.
type Term struct {
	Location  identifier.ID `json:"location"`
	Character identifier.ID `json:"character"`
}

// Point3D is a point in model space.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Coordinate is the geometric position of a Location.
type Coordinate struct {
	Location identifier.ID `json:"location"`
	Point    Point3D       `json:"point"`
}

// Colour is the display colour of a Location.
type Colour struct {
	Location identifier.ID `json:"location"`
	Hex      string        `json:"hex"`
	Name     string        `json:"name"`
}

// Character is semantic content in one language.
type Character struct {
	Language Language `json:"language"`
	Value    string   `json:"value"`
}

// NewOrder creates the Order anchor for n.
func NewOrder(n int) (Entry, error) {
	if err := identifier.ValidateOrder(n); err != nil {
		return Entry{}, err
	}
	return Entry{Kind: KindOrder, ID: identifier.OrderID(n), Order: &Order{Value: n}}, nil
}

// NewPosition creates the Position anchor for p.
func NewPosition(p int) (Entry, error) {
	if err := identifier.ValidateOrder(p); err != nil {
		return Entry{}, fmt.Errorf("position: %w", err)
	}
	return Entry{Kind: KindPosition, ID: identifier.PositionID(p), Position: &Position{Value: p}}, nil
}

// NewLocation creates the Location anchor for loc.
func NewLocation(loc identifier.Loc) Entry {
	return Entry{
		Kind:     KindLocation,
		ID:       identifier.LocationID(loc),
		Location: &Location{Order: loc.Order(), Position: loc.Position()},
	}
}

// NewSystemName creates the SystemName of order n.
func NewSystemName(n int, value string) (Entry, error) {
	return newLabel(KindSystemName, identifier.SystemNameID(n), n, value)
}

// NewCoherenceAttribute creates the CoherenceAttribute of order n.
func NewCoherenceAttribute(n int, value string) (Entry, error) {
	return newLabel(KindCoherenceAttribute, identifier.CoherenceAttributeID(n), n, value)
}

// NewTermDesignation creates the TermDesignation of order n.
func NewTermDesignation(n int, value string) (Entry, error) {
	return newLabel(KindTermDesignation, identifier.TermDesignationID(n), n, value)
}

// NewConnectiveDesignation creates the ConnectiveDesignation of order n.
func NewConnectiveDesignation(n int, value string) (Entry, error) {
	return newLabel(KindConnectiveDesignation, identifier.ConnectiveDesignationID(n), n, value)
}

func newLabel(kind Kind, id identifier.ID, n int, value string) (Entry, error) {
	if err := identifier.ValidateOrder(n); err != nil {
		return Entry{}, err
	}
	if value == "" {
		return Entry{}, fmt.Errorf("%s %s: %w", kind, id, ErrEmptyValue)
	}
	return Entry{Kind: kind, ID: id, Label: &Label{Order: identifier.OrderID(n), Value: value}}, nil
}

// NewTerm places the character at loc.
func NewTerm(loc identifier.Loc, character identifier.ID) Entry {
	return Entry{
		Kind: KindTerm,
		ID:   identifier.TermID(loc),
		Term: &Term{Location: identifier.LocationID(loc), Character: character},
	}
}

// NewCoordinate positions loc at p.
func NewCoordinate(loc identifier.Loc, p Point3D) Entry {
	return Entry{
		Kind:       KindCoordinate,
		ID:         identifier.CoordinateID(loc),
		Coordinate: &Coordinate{Location: identifier.LocationID(loc), Point: p},
	}
}

// NewColour colours loc.
func NewColour(loc identifier.Loc, hex, name string) Entry {
	return Entry{
		Kind:   KindColour,
		ID:     identifier.ColourID(loc),
		Colour: &Colour{Location: identifier.LocationID(loc), Hex: hex, Name: name},
	}
}

// NewCharacter creates a Character. The value must slug into a valid identifier.
func NewCharacter(language Language, value string) (Entry, error) {
	if !language.IsValid() {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	if value == "" {
		return Entry{}, fmt.Errorf("character: %w", ErrEmptyValue)
	}
	if err := identifier.ValidateCharacter(string(language), value); err != nil {
		return Entry{}, fmt.Errorf("character %q: %w", value, err)
	}
	return Entry{
		Kind:      KindCharacter,
		ID:        identifier.CharacterID(string(language), value),
		Character: &Character{Language: language, Value: value},
	}, nil
}

// Clone returns a copy of e that shares no payload with it.
func (e Entry) Clone() Entry {
	out := Entry{Kind: e.Kind, ID: e.ID}
	switch {
	case e.Order != nil:
		v := *e.Order
		out.Order = &v
	case e.Position != nil:
		v := *e.Position
		out.Position = &v
	case e.Location != nil:
		v := *e.Location
		out.Location = &v
	case e.Label != nil:
		v := *e.Label
		out.Label = &v
	case e.Term != nil:
		v := *e.Term
		out.Term = &v
	case e.Coordinate != nil:
		v := *e.Coordinate
		out.Coordinate = &v
	case e.Colour != nil:
		v := *e.Colour
		out.Colour = &v
	case e.Character != nil:
		v := *e.Character
		out.Character = &v
	}
	return out
}

// OrderOf returns the order an entry belongs to. Anchors report their own order,
// order-level and location-level entries report the order they reference.
// Positions and Characters belong to no order.
func (e Entry) OrderOf() (int, bool) {
	switch e.Kind {
	case KindOrder:
		return e.Order.Value, true
	case KindLocation:
		return e.Location.Order, true
	case KindSystemName, KindCoherenceAttribute, KindTermDesignation, KindConnectiveDesignation:
		ref, err := identifier.Parse(string(e.Label.Order))
		if err != nil {
			return 0, false
		}
		return ref.Order, true
	case KindTerm, KindCoordinate, KindColour:
		ref, err := identifier.Parse(string(e.Anchor()))
		if err != nil {
			return 0, false
		}
		return ref.Loc.Order(), true
	default:
		return 0, false
	}
}

// Anchor returns the identifier of the entry this entry references: the Order for
// order-level entries, the Location for location-level entries. Anchors and
// Characters return "".
func (e Entry) Anchor() identifier.ID {
	switch e.Kind {
	case KindSystemName, KindCoherenceAttribute, KindTermDesignation, KindConnectiveDesignation:
		return e.Label.Order
	case KindTerm:
		return e.Term.Location
	case KindCoordinate:
		return e.Coordinate.Location
	case KindColour:
		return e.Colour.Location
	default:
		return ""
	}
}

// IsAnchor reports whether e is an Order, Position or Location.
func (e Entry) IsAnchor() bool {
	return e.Kind == KindOrder || e.Kind == KindPosition || e.Kind == KindLocation
}

// IsOrderLevel reports whether e references an Order.
func (e Entry) IsOrderLevel() bool { return e.Label != nil }

// IsLocationLevel reports whether e references a Location.
func (e Entry) IsLocationLevel() bool {
	return e.Kind == KindTerm || e.Kind == KindCoordinate || e.Kind == KindColour
}

// Value returns the display value of an entry: the label or character text, the
// colour name, or the identifier for structural kinds.
func (e Entry) Value() string {
	switch e.Kind {
	case KindSystemName, KindCoherenceAttribute, KindTermDesignation, KindConnectiveDesignation:
		return e.Label.Value
	case KindCharacter:
		return e.Character.Value
	case KindColour:
		return e.Colour.Name
	default:
		return string(e.ID)
	}
}

// Validate checks that exactly the payload matching Kind is set and that the ID
// matches the payload's structural fields.
func (e Entry) Validate() error {
	set := 0
	for _, present := range []bool{
		e.Order != nil, e.Position != nil, e.Location != nil, e.Label != nil,
		e.Term != nil, e.Coordinate != nil, e.Colour != nil, e.Character != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: entry %s has %d payloads", ErrInvalidEntry, e.ID, set)
	}

	want, err := e.expectedID()
	if err != nil {
		return fmt.Errorf("entry %s: %w", e.ID, err)
	}
	if want != e.ID {
		return fmt.Errorf("%w: %s entry has id %s, want %s", ErrInvalidEntry, e.Kind, e.ID, want)
	}
	return nil
}

func (e Entry) expectedID() (identifier.ID, error) {
	var id identifier.ID
	switch e.Kind {
	case KindOrder:
		if e.Order == nil {
			return "", ErrInvalidEntry
		}
		if err := identifier.ValidateOrder(e.Order.Value); err != nil {
			return "", err
		}
		id = identifier.OrderID(e.Order.Value)
	case KindPosition:
		if e.Position == nil {
			return "", ErrInvalidEntry
		}
		if err := identifier.ValidateOrder(e.Position.Value); err != nil {
			return "", err
		}
		id = identifier.PositionID(e.Position.Value)
	case KindLocation:
		if e.Location == nil {
			return "", ErrInvalidEntry
		}
		loc, err := identifier.NewLoc(e.Location.Order, e.Location.Position)
		if err != nil {
			return "", err
		}
		id = identifier.LocationID(loc)
	case KindSystemName, KindCoherenceAttribute, KindTermDesignation, KindConnectiveDesignation:
		if e.Label == nil {
			return "", ErrInvalidEntry
		}
		ref, err := identifier.Parse(string(e.Label.Order))
		if err != nil {
			return "", err
		}
		if ref.Kind != identifier.KindOrder {
			return "", fmt.Errorf("%w: %s does not reference an order", ErrInvalidEntry, e.Kind)
		}
		id = labelID(e.Kind, ref.Order)
	case KindTerm, KindCoordinate, KindColour:
		anchor, err := e.locationAnchor()
		if err != nil {
			return "", err
		}
		switch e.Kind {
		case KindTerm:
			id = identifier.TermID(anchor)
		case KindCoordinate:
			id = identifier.CoordinateID(anchor)
		default:
			id = identifier.ColourID(anchor)
		}
	case KindCharacter:
		if e.Character == nil {
			return "", ErrInvalidEntry
		}
		if err := identifier.ValidateCharacter(string(e.Character.Language), e.Character.Value); err != nil {
			return "", err
		}
		id = identifier.CharacterID(string(e.Character.Language), e.Character.Value)
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidEntry, e.Kind)
	}
	return id, nil
}

func (e Entry) locationAnchor() (identifier.Loc, error) {
	if (e.Kind == KindTerm && e.Term == nil) ||
		(e.Kind == KindCoordinate && e.Coordinate == nil) ||
		(e.Kind == KindColour && e.Colour == nil) {
		return identifier.Loc{}, ErrInvalidEntry
	}
	ref, err := identifier.Parse(string(e.Anchor()))
	if err != nil {
		return identifier.Loc{}, err
	}
	if ref.Kind != identifier.KindLocation {
		return identifier.Loc{}, fmt.Errorf("%w: %s does not reference a location", ErrInvalidEntry, e.Kind)
	}
	return ref.Loc, nil
}

func labelID(kind Kind, n int) identifier.ID {
	switch kind {
	case KindSystemName:
		return identifier.SystemNameID(n)
	case KindCoherenceAttribute:
		return identifier.CoherenceAttributeID(n)
	case KindTermDesignation:
		return identifier.TermDesignationID(n)
	default:
		return identifier.ConnectiveDesignationID(n)
	}
}
