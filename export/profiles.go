package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"

	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/vocabulary/systematics"
)

// Profile determines which ontology type assertions are included in the export.
type Profile string

const (
	// ProfileMinimal includes systematics and PROV-O types.
	ProfileMinimal Profile = "minimal"

	// ProfileBFO includes BFO type assertions plus minimal profile.
	ProfileBFO Profile = "bfo"

	// ProfileCCO includes CCO type assertions plus BFO profile.
	ProfileCCO Profile = "cco"
)

// TypePredicate is the dotted predicate for rdf:type in published triples.
const TypePredicate = "rdf.syntax.type"

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// IncludeBFO indicates whether to include BFO type assertions.
	IncludeBFO bool

	// IncludeCCO indicates whether to include CCO type assertions.
	IncludeCCO bool

	// IncludePROV indicates whether to include PROV-O type assertions.
	IncludePROV bool

	// TranslatePredicates maps dotted predicates to standard IRIs where one
	// exists.
	TranslatePredicates bool
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileMinimal: {
		Name:                ProfileMinimal,
		Description:         "Systematics classes with PROV-O, Dublin Core and SKOS",
		IncludePROV:         true,
		TranslatePredicates: true,
	},
	ProfileBFO: {
		Name:                ProfileBFO,
		Description:         "BFO type assertions plus minimal profile",
		IncludeBFO:          true,
		IncludePROV:         true,
		TranslatePredicates: true,
	},
	ProfileCCO: {
		Name:                ProfileCCO,
		Description:         "Full CCO/BFO/PROV-O alignment",
		IncludeBFO:          true,
		IncludeCCO:          true,
		IncludePROV:         true,
		TranslatePredicates: true,
	},
}

// GetProfileConfig returns the configuration for a profile. Unknown profiles
// fall back to minimal.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileMinimal]
}

// ParseProfile resolves a profile name.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Profiles[p]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProfile, s)
	}
	return p, nil
}

// TypeAsserter generates type assertions for entries and links based on
// profile.
type TypeAsserter struct {
	profile ProfileConfig
}

// NewTypeAsserter creates a new type asserter for the given profile.
func NewTypeAsserter(profile Profile) *TypeAsserter {
	return &TypeAsserter{
		profile: GetProfileConfig(profile),
	}
}

// GetTypeIRIs returns all type IRIs for a kind based on the profile. The
// systematics class always comes first.
func (t *TypeAsserter) GetTypeIRIs(kind identifier.Kind) []string {
	types := make([]string, 0, 4)

	if class, ok := systematics.ClassMap[kind]; ok {
		types = append(types, class)
	}
	if t.profile.IncludePROV {
		if provClass, ok := systematics.PROVClassMap[kind]; ok {
			types = append(types, provClass)
		}
	}
	if t.profile.IncludeBFO {
		if bfoClass, ok := systematics.BFOClassMap[kind]; ok {
			types = append(types, bfoClass)
		}
	}
	if t.profile.IncludeCCO {
		if ccoClass, ok := systematics.CCOClassMap[kind]; ok {
			types = append(types, ccoClass)
		}
	}
	return types
}

// TypeTriples returns rdf:type triples for an entry or link identifier. The
// kind is read from the identifier itself; malformed identifiers get none.
func TypeTriples(id identifier.ID, profile Profile, source string) []message.Triple {
	kind, ok := InferKind(id)
	if !ok {
		return nil
	}
	typeIRIs := NewTypeAsserter(profile).GetTypeIRIs(kind)
	triples := make([]message.Triple, 0, len(typeIRIs))
	for _, typeIRI := range typeIRIs {
		triples = append(triples, message.Triple{
			Subject:    string(id),
			Predicate:  TypePredicate,
			Object:     typeIRI,
			Source:     source,
			Confidence: 1.0,
		})
	}
	return triples
}

// InferKind decodes the kind of an entry or link from its identifier.
func InferKind(id identifier.ID) (identifier.Kind, bool) {
	ref, err := identifier.Parse(string(id))
	if err != nil {
		return "", false
	}
	return ref.Kind, true
}

// TypeHierarchy represents the ontology type hierarchy for a kind.
type TypeHierarchy struct {
	Class     string
	PROVClass string
	BFOClass  string
	CCOClass  string
}

// GetTypeHierarchy returns the full type hierarchy for a kind.
func GetTypeHierarchy(kind identifier.Kind) TypeHierarchy {
	return TypeHierarchy{
		Class:     systematics.ClassMap[kind],
		PROVClass: systematics.PROVClassMap[kind],
		BFOClass:  systematics.BFOClassMap[kind],
		CCOClass:  systematics.CCOClassMap[kind],
	}
}

// ClassDescriptions provides human-readable descriptions for the external
// classes entries map to.
var ClassDescriptions = map[string]string{
	bfo.GenericallyDependentContinuant: "Information patterns that can be copied",
	bfo.Quality:                        "Measurable properties",
	cco.InformationContentEntity:       "Root class for information entities",
	vocabulary.ProvEntity:              "Thing with fixed aspects",
}
