// Package identifier implements the identifier grammar shared by every entry and
// link in a systematics graph.
//
// Identifiers are derived from structural fields only, so they can be formatted
// without a graph and parsed back into the same fields:
//
//	order_3                      Order 3
//	position_1                   Position 1
//	loc_3_1                      Location (order 3, position 1)
//	term_3_1 / coord_3_1         Term / Coordinate anchored at loc_3_1
//	colour_3_1                   Colour anchored at loc_3_1
//	system_3 / coherence_3       SystemName / CoherenceAttribute of order 3
//	term_des_3 / conn_des_3      Term / Connective designation of order 3
//	char_canonical_will          Character (language canonical, value "will")
//	conn_loc_3_1_loc_3_2         Connective between loc_3_1 and loc_3_2
//	line_coord_3_1_coord_3_2     Line between coord_3_1 and coord_3_2
//
// Link identifiers always list their endpoints in canonical order, so an
// unordered pair has exactly one identifier.
package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxOrder is the highest supported system order.
const MaxOrder = 12

// ID is a structured identifier string.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// Kind names the entry or link kind an identifier refers to.
type Kind string

const (
	KindOrder                 Kind = "order"
	KindPosition              Kind = "position"
	KindLocation              Kind = "location"
	KindSystemName            Kind = "system_name"
	KindCoherenceAttribute    Kind = "coherence_attribute"
	KindTermDesignation       Kind = "term_designation"
	KindConnectiveDesignation Kind = "connective_designation"
	KindTerm                  Kind = "term"
	KindCoordinate            Kind = "coordinate"
	KindColour                Kind = "colour"
	KindCharacter             Kind = "character"
	KindConnective            Kind = "connective"
	KindLine                  Kind = "line"
)

// Identifier prefixes. Longer prefixes sharing a stem (term_des_, conn_des_) must be
// tested before the shorter ones.
const (
	prefixOrder                 = "order_"
	prefixPosition              = "position_"
	prefixLocation              = "loc_"
	prefixSystemName            = "system_"
	prefixCoherenceAttribute    = "coherence_"
	prefixTermDesignation       = "term_des_"
	prefixConnectiveDesignation = "conn_des_"
	prefixTerm                  = "term_"
	prefixCoordinate            = "coord_"
	prefixColour                = "colour_"
	prefixCharacter             = "char_"
	prefixConnective            = "conn_"
	prefixLine                  = "line_"
)

// Loc is a validated (order, position) pair. The zero value is not a valid
// location; obtain one through NewLoc or MustLoc.
type Loc struct {
	order    int
	position int
}

// NewLoc validates 1 <= order <= MaxOrder and 1 <= position <= order.
func NewLoc(order, position int) (Loc, error) {
	if err := validateOrder(order); err != nil {
		return Loc{}, err
	}
	if position < 1 || position > order {
		return Loc{}, fmt.Errorf("%w: position %d outside 1..%d", ErrInvalidStructure, position, order)
	}
	return Loc{order: order, position: position}, nil
}

// MustLoc is NewLoc for statically known pairs. It panics on invalid input.
func MustLoc(order, position int) Loc {
	loc, err := NewLoc(order, position)
	if err != nil {
		panic(err)
	}
	return loc
}

// Order returns the location's order.
func (l Loc) Order() int { return l.order }

// Position returns the location's position.
func (l Loc) Position() int { return l.position }

// IsZero reports whether l was never validated.
func (l Loc) IsZero() bool { return l.order == 0 }

// Less orders locations by (order, position).
func (l Loc) Less(other Loc) bool {
	if l.order != other.order {
		return l.order < other.order
	}
	return l.position < other.position
}

// ID returns the Location identifier, e.g. loc_3_1.
func (l Loc) ID() ID { return LocationID(l) }

func (l Loc) String() string { return string(l.ID()) }

// ValidateOrder reports whether order is within 1..MaxOrder.
func ValidateOrder(order int) error { return validateOrder(order) }

func validateOrder(order int) error {
	if order < 1 || order > MaxOrder {
		return fmt.Errorf("%w: order %d outside 1..%d", ErrInvalidStructure, order, MaxOrder)
	}
	return nil
}

// OrderID formats order_{n}.
func OrderID(order int) ID { return ID(prefixOrder + strconv.Itoa(order)) }

// PositionID formats position_{n}.
func PositionID(position int) ID { return ID(prefixPosition + strconv.Itoa(position)) }

// LocationID formats loc_{order}_{position}.
func LocationID(l Loc) ID { return ID(prefixLocation + pair(l)) }

// SystemNameID formats system_{n}.
func SystemNameID(order int) ID { return ID(prefixSystemName + strconv.Itoa(order)) }

// CoherenceAttributeID formats coherence_{n}.
func CoherenceAttributeID(order int) ID { return ID(prefixCoherenceAttribute + strconv.Itoa(order)) }

// TermDesignationID formats term_des_{n}.
func TermDesignationID(order int) ID { return ID(prefixTermDesignation + strconv.Itoa(order)) }

// ConnectiveDesignationID formats conn_des_{n}.
func ConnectiveDesignationID(order int) ID {
	return ID(prefixConnectiveDesignation + strconv.Itoa(order))
}

// TermID formats term_{order}_{position}.
func TermID(l Loc) ID { return ID(prefixTerm + pair(l)) }

// CoordinateID formats coord_{order}_{position}.
func CoordinateID(l Loc) ID { return ID(prefixCoordinate + pair(l)) }

// ColourID formats colour_{order}_{position}.
func ColourID(l Loc) ID { return ID(prefixColour + pair(l)) }

// CharacterID formats char_{language}_{value}. The value is slugged first, so
// "Higher Potential" becomes higher_potential.
func CharacterID(language, value string) ID {
	return ID(prefixCharacter + strings.ToLower(language) + "_" + Slug(value))
}

// ConnectiveID formats conn_loc_{o}_{p}_loc_{o}_{p} with endpoints in canonical order.
func ConnectiveID(a, b Loc) ID {
	a, b = Canonical(a, b)
	return ID(prefixConnective + string(LocationID(a)) + "_" + string(LocationID(b)))
}

// LineID formats line_coord_{o}_{p}_coord_{o}_{p} with endpoints in canonical order.
func LineID(a, b Loc) ID {
	a, b = Canonical(a, b)
	return ID(prefixLine + string(CoordinateID(a)) + "_" + string(CoordinateID(b)))
}

// Canonical returns the pair ordered by (order, position).
func Canonical(a, b Loc) (Loc, Loc) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// Slug lower-cases a value and replaces spaces with underscores.
func Slug(value string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), " ", "_")
}

func pair(l Loc) string {
	return strconv.Itoa(l.order) + "_" + strconv.Itoa(l.position)
}
