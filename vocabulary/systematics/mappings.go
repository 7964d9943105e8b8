package systematics

import (
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"

	"github.com/c360studio/systematics/identifier"
)

// BFOClassMap maps entry kinds to BFO class IRIs.
// Use this for BFO profile RDF export.
var BFOClassMap = map[identifier.Kind]string{
	// Information entities → GenericallyDependentContinuant
	identifier.KindOrder:                 bfo.GenericallyDependentContinuant,
	identifier.KindPosition:              bfo.GenericallyDependentContinuant,
	identifier.KindLocation:              bfo.GenericallyDependentContinuant,
	identifier.KindSystemName:            bfo.GenericallyDependentContinuant,
	identifier.KindCoherenceAttribute:    bfo.GenericallyDependentContinuant,
	identifier.KindTermDesignation:       bfo.GenericallyDependentContinuant,
	identifier.KindConnectiveDesignation: bfo.GenericallyDependentContinuant,
	identifier.KindTerm:                  bfo.GenericallyDependentContinuant,
	identifier.KindCharacter:             bfo.GenericallyDependentContinuant,

	// Properties of a location → Quality
	identifier.KindCoordinate: bfo.Quality,
	identifier.KindColour:     bfo.Quality,
}

// CCOClassMap maps entry kinds to CCO class IRIs.
// Use this for CCO profile RDF export.
var CCOClassMap = map[identifier.Kind]string{
	identifier.KindOrder:                 cco.InformationContentEntity,
	identifier.KindPosition:              cco.InformationContentEntity,
	identifier.KindLocation:              cco.InformationContentEntity,
	identifier.KindSystemName:            cco.InformationContentEntity,
	identifier.KindCoherenceAttribute:    cco.InformationContentEntity,
	identifier.KindTermDesignation:       cco.InformationContentEntity,
	identifier.KindConnectiveDesignation: cco.InformationContentEntity,
	identifier.KindTerm:                  cco.InformationContentEntity,
	identifier.KindCharacter:             cco.InformationContentEntity,
}

// PROVClassMap maps entry kinds to PROV-O class IRIs. Every entry is a
// prov:Entity.
var PROVClassMap = map[identifier.Kind]string{
	identifier.KindOrder:                 vocabulary.ProvEntity,
	identifier.KindPosition:              vocabulary.ProvEntity,
	identifier.KindLocation:              vocabulary.ProvEntity,
	identifier.KindSystemName:            vocabulary.ProvEntity,
	identifier.KindCoherenceAttribute:    vocabulary.ProvEntity,
	identifier.KindTermDesignation:       vocabulary.ProvEntity,
	identifier.KindConnectiveDesignation: vocabulary.ProvEntity,
	identifier.KindTerm:                  vocabulary.ProvEntity,
	identifier.KindCoordinate:            vocabulary.ProvEntity,
	identifier.KindColour:                vocabulary.ProvEntity,
	identifier.KindCharacter:             vocabulary.ProvEntity,
}

// ClassMap maps entry and link kinds to systematics class IRIs.
var ClassMap = map[identifier.Kind]string{
	identifier.KindOrder:                 ClassOrder,
	identifier.KindPosition:              ClassPosition,
	identifier.KindLocation:              ClassLocation,
	identifier.KindSystemName:            ClassSystemName,
	identifier.KindCoherenceAttribute:    ClassCoherenceAttribute,
	identifier.KindTermDesignation:       ClassTermDesignation,
	identifier.KindConnectiveDesignation: ClassConnectiveDesignation,
	identifier.KindTerm:                  ClassTerm,
	identifier.KindCoordinate:            ClassCoordinate,
	identifier.KindColour:                ClassColour,
	identifier.KindCharacter:             ClassCharacter,
	identifier.KindLine:                  ClassLine,
	identifier.KindConnective:            ClassConnective,
}

// PredicateIRIMap maps internal predicates to standard IRIs.
// Use this for RDF export to translate dotted predicates to standard IRIs.
var PredicateIRIMap = map[string]string{
	// Containment
	LocationOrder: bfo.PartOf,

	// Labels and characters
	LabelOrder:     cco.IsAbout,
	LabelValue:     vocabulary.SkosPrefLabel,
	CharacterValue: vocabulary.SkosPrefLabel,
	ColourName:     vocabulary.SkosPrefLabel,

	// Connective tags are derived from their character
	LinkTag: vocabulary.ProvWasDerivedFrom,

	// Standard
	DCTitle:       vocabulary.DcTitle,
	SKOSPrefLabel: vocabulary.SkosPrefLabel,
}

// GetTypesForKind returns all type IRIs for an entry kind and profile.
// Profile determines which ontology types are included:
//   - "minimal": PROV-O + systematics types
//   - "bfo": BFO + PROV-O + systematics types
//   - "cco": CCO + BFO + PROV-O + systematics types
func GetTypesForKind(kind identifier.Kind, profile string) []string {
	types := make([]string, 0, 4)

	if class, ok := ClassMap[kind]; ok {
		types = append(types, class)
	}
	if provClass, ok := PROVClassMap[kind]; ok {
		types = append(types, provClass)
	}
	if profile == "bfo" || profile == "cco" {
		if bfoClass, ok := BFOClassMap[kind]; ok {
			types = append(types, bfoClass)
		}
	}
	if profile == "cco" {
		if ccoClass, ok := CCOClassMap[kind]; ok {
			types = append(types, ccoClass)
		}
	}
	return types
}

// GetPredicateIRI returns the standard IRI for a predicate, if mapped.
// Unmapped predicates fall back to the systematics namespace.
func GetPredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	return Namespace + predicate
}
