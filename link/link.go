// Package link defines the edges of a systematics graph.
//
// A Line joins two Coordinates and carries no tag. A Connective joins two Locations
// and may carry a tag referencing the Character that labels it. Links are
// undirected: endpoints are stored in canonical (order, position) order.
package link

import (
	"fmt"

	"github.com/c360studio/systematics/identifier"
)

// Kind is Line or Connective.
type Kind = identifier.Kind

// Link kinds.
const (
	KindLine       = identifier.KindLine
	KindConnective = identifier.KindConnective
)

// Link is an edge in the graph.
type Link struct {
	ID     identifier.ID `json:"id"`
	Kind   Kind          `json:"kind"`
	Base   identifier.ID `json:"base"`
	Target identifier.ID `json:"target"`
	Tag    identifier.ID `json:"tag,omitempty"`
}

// Line joins the Coordinates of a and b.
func Line(a, b identifier.Loc) Link {
	a, b = identifier.Canonical(a, b)
	return Link{
		ID:     identifier.LineID(a, b),
		Kind:   KindLine,
		Base:   identifier.CoordinateID(a),
		Target: identifier.CoordinateID(b),
	}
}

// Connective joins the Locations a and b, untagged.
func Connective(a, b identifier.Loc) Link {
	a, b = identifier.Canonical(a, b)
	return Link{
		ID:     identifier.ConnectiveID(a, b),
		Kind:   KindConnective,
		Base:   identifier.LocationID(a),
		Target: identifier.LocationID(b),
	}
}

// WithTag returns a copy of l tagged with the character identifier.
func (l Link) WithTag(character identifier.ID) Link {
	l.Tag = character
	return l
}

// Character returns the tag of a Connective. Lines never report a character.
func (l Link) Character() (identifier.ID, bool) {
	if l.Kind != KindConnective || l.Tag == "" {
		return "", false
	}
	return l.Tag, true
}

// Touches reports whether id is one of the link's endpoints.
func (l Link) Touches(id identifier.ID) bool {
	return l.Base == id || l.Target == id
}

// Other returns the endpoint opposite id.
func (l Link) Other(id identifier.ID) identifier.ID {
	if l.Base == id {
		return l.Target
	}
	return l.Base
}

// Endpoints decodes the link's identifier into its endpoint locations.
func (l Link) Endpoints() (identifier.Loc, identifier.Loc, error) {
	ref, err := identifier.Parse(string(l.ID))
	if err != nil {
		return identifier.Loc{}, identifier.Loc{}, err
	}
	return ref.Base, ref.Target, nil
}

// Order returns the order of the link's endpoints.
func (l Link) Order() (int, error) {
	base, _, err := l.Endpoints()
	if err != nil {
		return 0, err
	}
	return base.Order(), nil
}

// Validate checks that the identifier matches the kind and endpoints, and that
// Lines are untagged.
func (l Link) Validate() error {
	ref, err := identifier.Parse(string(l.ID))
	if err != nil {
		return fmt.Errorf("link %s: %w", l.ID, err)
	}
	if ref.Kind != l.Kind {
		return fmt.Errorf("%w: %s has kind %s", ErrInvalidLink, l.ID, l.Kind)
	}
	var want Link
	switch l.Kind {
	case KindLine:
		if l.Tag != "" {
			return fmt.Errorf("%w: line %s carries tag %s", ErrInvalidLink, l.ID, l.Tag)
		}
		want = Line(ref.Base, ref.Target)
	case KindConnective:
		want = Connective(ref.Base, ref.Target).WithTag(l.Tag)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidLink, l.Kind)
	}
	if want != l {
		return fmt.Errorf("%w: %s endpoints %s-%s do not match identifier", ErrInvalidLink, l.ID, l.Base, l.Target)
	}
	if ref.Base.Order() != ref.Target.Order() {
		return fmt.Errorf("%w: %s spans orders", ErrInvalidLink, l.ID)
	}
	return nil
}
