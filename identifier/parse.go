package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref is the decoded form of an identifier. Only the fields relevant to Kind are set:
//
//   - Order, SystemName, CoherenceAttribute, TermDesignation, ConnectiveDesignation: Order
//   - Position: Position
//   - Location, Term, Coordinate, Colour: Loc
//   - Character: Language, Value (the slug)
//   - Connective, Line: Base, Target
type Ref struct {
	Kind     Kind
	Order    int
	Position int
	Loc      Loc
	Language string
	Value    string
	Base     Loc
	Target   Loc
}

// ID re-formats the reference. Parse(s).ID() == s for every well-formed s.
func (r Ref) ID() ID {
	switch r.Kind {
	case KindOrder:
		return OrderID(r.Order)
	case KindPosition:
		return PositionID(r.Position)
	case KindLocation:
		return LocationID(r.Loc)
	case KindSystemName:
		return SystemNameID(r.Order)
	case KindCoherenceAttribute:
		return CoherenceAttributeID(r.Order)
	case KindTermDesignation:
		return TermDesignationID(r.Order)
	case KindConnectiveDesignation:
		return ConnectiveDesignationID(r.Order)
	case KindTerm:
		return TermID(r.Loc)
	case KindCoordinate:
		return CoordinateID(r.Loc)
	case KindColour:
		return ColourID(r.Loc)
	case KindCharacter:
		return ID(prefixCharacter + r.Language + "_" + r.Value)
	case KindConnective:
		return ConnectiveID(r.Base, r.Target)
	case KindLine:
		return LineID(r.Base, r.Target)
	default:
		panic(fmt.Sprintf("identifier: unknown kind %q", r.Kind))
	}
}

// Parse decodes an identifier string.
func Parse(s string) (Ref, error) {
	switch {
	case strings.HasPrefix(s, prefixOrder):
		n, err := parseOrder(s, prefixOrder)
		return Ref{Kind: KindOrder, Order: n}, err
	case strings.HasPrefix(s, prefixPosition):
		p, err := parseNumber(s, strings.TrimPrefix(s, prefixPosition))
		if err != nil {
			return Ref{}, err
		}
		if p < 1 || p > MaxOrder {
			return Ref{}, fmt.Errorf("%w: position %d outside 1..%d in %q", ErrInvalidStructure, p, MaxOrder, s)
		}
		return Ref{Kind: KindPosition, Position: p}, nil
	case strings.HasPrefix(s, prefixLocation):
		return parseAnchored(s, prefixLocation, KindLocation)
	case strings.HasPrefix(s, prefixSystemName):
		n, err := parseOrder(s, prefixSystemName)
		return Ref{Kind: KindSystemName, Order: n}, err
	case strings.HasPrefix(s, prefixCoherenceAttribute):
		n, err := parseOrder(s, prefixCoherenceAttribute)
		return Ref{Kind: KindCoherenceAttribute, Order: n}, err
	case strings.HasPrefix(s, prefixTermDesignation):
		n, err := parseOrder(s, prefixTermDesignation)
		return Ref{Kind: KindTermDesignation, Order: n}, err
	case strings.HasPrefix(s, prefixTerm):
		return parseAnchored(s, prefixTerm, KindTerm)
	case strings.HasPrefix(s, prefixCoordinate):
		return parseAnchored(s, prefixCoordinate, KindCoordinate)
	case strings.HasPrefix(s, prefixColour):
		return parseAnchored(s, prefixColour, KindColour)
	case strings.HasPrefix(s, prefixCharacter):
		return parseCharacter(s)
	case strings.HasPrefix(s, prefixConnectiveDesignation):
		n, err := parseOrder(s, prefixConnectiveDesignation)
		return Ref{Kind: KindConnectiveDesignation, Order: n}, err
	case strings.HasPrefix(s, prefixConnective):
		return parseLink(s, prefixConnective+prefixLocation, prefixLocation, KindConnective)
	case strings.HasPrefix(s, prefixLine):
		return parseLink(s, prefixLine+prefixCoordinate, prefixCoordinate, KindLine)
	default:
		return Ref{}, fmt.Errorf("%w: unknown prefix in %q", ErrMalformedIdentifier, s)
	}
}

// MustParse is Parse for identifiers known to be valid. It panics on error.
func MustParse(s string) Ref {
	ref, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ref
}

func parseOrder(s, prefix string) (int, error) {
	n, err := parseNumber(s, strings.TrimPrefix(s, prefix))
	if err != nil {
		return 0, err
	}
	if err := validateOrder(n); err != nil {
		return 0, fmt.Errorf("%w in %q", err, s)
	}
	return n, nil
}

func parseAnchored(s, prefix string, kind Kind) (Ref, error) {
	loc, err := parsePair(s, strings.TrimPrefix(s, prefix))
	if err != nil {
		return Ref{}, err
	}
	return Ref{Kind: kind, Loc: loc}, nil
}

// parsePair decodes "{order}_{position}".
func parsePair(s, body string) (Loc, error) {
	orderText, positionText, ok := strings.Cut(body, "_")
	if !ok {
		return Loc{}, fmt.Errorf("%w: expected {order}_{position} in %q", ErrMalformedIdentifier, s)
	}
	order, err := parseNumber(s, orderText)
	if err != nil {
		return Loc{}, err
	}
	position, err := parseNumber(s, positionText)
	if err != nil {
		return Loc{}, err
	}
	loc, err := NewLoc(order, position)
	if err != nil {
		return Loc{}, fmt.Errorf("%w in %q", err, s)
	}
	return loc, nil
}

// parseLink decodes "{head}{o}_{p}_{sep}{o}_{p}" where head already contains the
// first endpoint's prefix.
func parseLink(s, head, sep string, kind Kind) (Ref, error) {
	if !strings.HasPrefix(s, head) {
		return Ref{}, fmt.Errorf("%w: expected %s prefix in %q", ErrMalformedIdentifier, head, s)
	}
	body := strings.TrimPrefix(s, head)
	baseText, targetText, ok := strings.Cut(body, "_"+sep)
	if !ok {
		return Ref{}, fmt.Errorf("%w: missing second endpoint in %q", ErrMalformedIdentifier, s)
	}
	base, err := parsePair(s, baseText)
	if err != nil {
		return Ref{}, err
	}
	target, err := parsePair(s, targetText)
	if err != nil {
		return Ref{}, err
	}
	if base == target {
		return Ref{}, fmt.Errorf("%w: self-loop in %q", ErrInvalidStructure, s)
	}
	if target.Less(base) {
		return Ref{}, fmt.Errorf("%w: endpoints not in canonical order in %q", ErrInvalidStructure, s)
	}
	return Ref{Kind: kind, Base: base, Target: target}, nil
}

// parseCharacter decodes "char_{language}_{slug}". The language is the first segment;
// the slug may itself contain underscores.
func parseCharacter(s string) (Ref, error) {
	body := strings.TrimPrefix(s, prefixCharacter)
	language, value, ok := strings.Cut(body, "_")
	if !ok || language == "" || value == "" {
		return Ref{}, fmt.Errorf("%w: expected char_{language}_{value} in %q", ErrMalformedIdentifier, s)
	}
	for _, r := range language {
		if r < 'a' || r > 'z' {
			return Ref{}, fmt.Errorf("%w: bad language %q in %q", ErrMalformedIdentifier, language, s)
		}
	}
	for _, r := range value {
		if !isSlugRune(r) {
			return Ref{}, fmt.Errorf("%w: bad character slug %q in %q", ErrMalformedIdentifier, value, s)
		}
	}
	return Ref{Kind: KindCharacter, Language: language, Value: value}, nil
}

// ValidateCharacter reports whether (language, value) produces a parseable Character
// identifier once the value is slugged.
func ValidateCharacter(language, value string) error {
	_, err := parseCharacter(string(CharacterID(language, value)))
	return err
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

// parseNumber accepts only canonical decimal text: no sign, no leading zero.
func parseNumber(s, text string) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: missing number in %q", ErrMalformedIdentifier, s)
	}
	if len(text) > 1 && text[0] == '0' {
		return 0, fmt.Errorf("%w: leading zero in %q", ErrMalformedIdentifier, s)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: non-numeric field %q in %q", ErrMalformedIdentifier, text, s)
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedIdentifier, err)
	}
	return n, nil
}
