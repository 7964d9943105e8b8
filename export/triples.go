package export

import (
	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
	"github.com/c360studio/systematics/vocabulary/systematics"
)

// Triple represents a semantic triple for export.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Ref is an object that names another entry or link. It serializes as an IRI
// rather than a literal.
type Ref identifier.ID

// Entity represents an exportable entry or link with its kind and triples.
type Entity struct {
	ID      string
	Kind    identifier.Kind
	Triples []Triple
}

// Entities converts every entry and link of g. Each link also adds a direct
// relation triple to the entity of its base endpoint.
func Entities(g *graph.Graph) []Entity {
	entries := g.Entries()
	links := g.Links()

	out := make([]Entity, 0, len(entries)+len(links))
	index := make(map[identifier.ID]int, len(entries))
	for _, e := range entries {
		index[e.ID] = len(out)
		out = append(out, EntryEntity(e))
	}
	for _, l := range links {
		if i, ok := index[l.Base]; ok {
			out[i].Triples = append(out[i].Triples, relation(l))
		}
		out = append(out, LinkEntity(l))
	}
	return out
}

// EntryEntity returns the triples describing e.
func EntryEntity(e entry.Entry) Entity {
	id := string(e.ID)
	t := func(predicate string, object any) Triple {
		return Triple{Subject: id, Predicate: predicate, Object: object}
	}

	triples := []Triple{t(systematics.EntryKind, string(e.Kind))}
	switch e.Kind {
	case entry.KindOrder:
		triples = append(triples, t(systematics.OrderValue, e.Order.Value))
	case entry.KindPosition:
		triples = append(triples, t(systematics.PositionValue, e.Position.Value))
	case entry.KindLocation:
		triples = append(triples,
			t(systematics.LocationOrder, Ref(e.Location.OrderID())),
			t(systematics.LocationPosition, Ref(e.Location.PositionID())))
	case entry.KindSystemName, entry.KindCoherenceAttribute, entry.KindTermDesignation, entry.KindConnectiveDesignation:
		triples = append(triples,
			t(systematics.LabelOrder, Ref(e.Label.Order)),
			t(systematics.LabelValue, e.Label.Value))
	case entry.KindTerm:
		triples = append(triples,
			t(systematics.TermLocation, Ref(e.Term.Location)),
			t(systematics.TermCharacter, Ref(e.Term.Character)))
	case entry.KindCoordinate:
		p := e.Coordinate.Point
		triples = append(triples,
			t(systematics.CoordinateLocation, Ref(e.Coordinate.Location)),
			t(systematics.CoordinateX, p.X),
			t(systematics.CoordinateY, p.Y),
			t(systematics.CoordinateZ, p.Z))
	case entry.KindColour:
		triples = append(triples,
			t(systematics.ColourLocation, Ref(e.Colour.Location)),
			t(systematics.ColourHex, e.Colour.Hex),
			t(systematics.ColourName, e.Colour.Name))
	case entry.KindCharacter:
		triples = append(triples,
			t(systematics.CharacterLanguage, string(e.Character.Language)),
			t(systematics.CharacterValue, e.Character.Value))
	}
	return Entity{ID: id, Kind: e.Kind, Triples: triples}
}

// LinkEntity returns the triples describing l.
func LinkEntity(l link.Link) Entity {
	id := string(l.ID)
	triples := []Triple{
		{Subject: id, Predicate: systematics.LinkKind, Object: string(l.Kind)},
		{Subject: id, Predicate: systematics.LinkBase, Object: Ref(l.Base)},
		{Subject: id, Predicate: systematics.LinkTarget, Object: Ref(l.Target)},
	}
	if tag, ok := l.Character(); ok {
		triples = append(triples, Triple{Subject: id, Predicate: systematics.LinkTag, Object: Ref(tag)})
	}
	return Entity{ID: id, Kind: l.Kind, Triples: triples}
}

func relation(l link.Link) Triple {
	predicate := systematics.LinkConnective
	if l.Kind == link.KindLine {
		predicate = systematics.LinkLine
	}
	return Triple{Subject: string(l.Base), Predicate: predicate, Object: Ref(l.Target)}
}
