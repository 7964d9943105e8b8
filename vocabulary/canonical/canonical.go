// Package canonical provides the standard registry and vocabularies of the twelve
// systems.
//
// Every call returns fresh values, so callers may extend them without affecting
// each other.
package canonical

import (
	"fmt"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/vocabulary"
)

var orders = []vocabulary.OrderInfo{
	{Order: 1, Name: "Monad", Coherence: "Universality", TermDesignation: "Totality", ConnectiveDesignation: "Unity"},
	{Order: 2, Name: "Dyad", Coherence: "Complementarity", TermDesignation: "Poles", ConnectiveDesignation: "Force"},
	{Order: 3, Name: "Triad", Coherence: "Dynamism", TermDesignation: "Impulses", ConnectiveDesignation: "Acts"},
	{Order: 4, Name: "Tetrad", Coherence: "Activity Field", TermDesignation: "Sources", ConnectiveDesignation: "Interplays"},
	{Order: 5, Name: "Pentad", Coherence: "Significance and Potential", TermDesignation: "Limits", ConnectiveDesignation: "Mutualities"},
	{Order: 6, Name: "Hexad", Coherence: "Coalescence", TermDesignation: "Laws", ConnectiveDesignation: "Steps"},
	{Order: 7, Name: "Heptad", Coherence: "Generation", TermDesignation: "States", ConnectiveDesignation: "Intervals"},
	{Order: 8, Name: "Octad", Coherence: "Self-Sufficiency", TermDesignation: "Elements", ConnectiveDesignation: "Components"},
	{Order: 9, Name: "Ennead", Coherence: "Transformation"},
	{Order: 10, Name: "Decad", Coherence: "Intrinsic Harmony"},
	{Order: 11, Name: "Undecad", Coherence: "Articulate Symmetry"},
	{Order: 12, Name: "Dodecad", Coherence: "Perfection"},
}

var palette = []vocabulary.PaletteColour{
	{Hex: "#FF0000", Name: "Red"},
	{Hex: "#0000FF", Name: "Blue"},
	{Hex: "#FFFF00", Name: "Yellow"},
	{Hex: "#099902", Name: "Green"},
	{Hex: "#9900FF", Name: "Purple"},
	{Hex: "#FFA500", Name: "Orange"},
	{Hex: "#00FFFF", Name: "Light Blue"},
	{Hex: "#8B4513", Name: "Brown"},
	{Hex: "#FF00FF", Name: "Magenta"},
	{Hex: "#FFFFFF", Name: "White"},
	{Hex: "#C0C0C0", Name: "Silver"},
	{Hex: "#FFD700", Name: "Gold"},
}

var terms = map[int][]string{
	1: {"Unity"},
	2: {"Essence", "Existence"},
	3: {"Will", "Function", "Being"},
	4: {"Ideal", "Ground", "Directive", "Instrumental"},
	5: {"Quintessence", "Source", "Higher Potential", "Lower Potential", "Purpose"},
	6: {"Priorities", "Criteria", "Values", "Resources", "Options", "Facts"},
	7: {"Insight", "Application", "Design", "Research", "Synthesis", "Delivery", "Value"},
	8: {
		"Inherent Values", "Critical Functions", "Organisational Modes", "Necessary Resourcing",
		"Intrinsic Nature", "Smallest Significant Holon", "Integrative Totality", "Supportive Platform",
	},
}

type connective struct {
	base, target int
	character    string
}

var connectives = map[int][]connective{
	3: {
		{1, 2, "Act1"},
		{2, 3, "Act2"},
		{3, 1, "Act3"},
	},
	4: {
		{1, 2, "Motivational Imperative"},
		{3, 4, "Demonstrable Activity"},
		{4, 1, "Effectual Compatibility"},
		{3, 1, "Receptive Regard"},
		{3, 2, "Material Mastery"},
		{4, 2, "Technical Power"},
	},
	5: {
		{3, 4, "Range of Potential"},
		{5, 2, "Range of Significance"},
		{1, 3, "Aspiration"},
		{1, 4, "Operation"},
		{3, 5, "Output"},
		{4, 2, "Input"},
		{1, 5, "Qualitative Match"},
		{1, 2, "Quantitative Match"},
		{4, 5, "Form"},
		{3, 2, "Function"},
	},
}

// placeholders names the unresearched connectives of orders 6-12.
var placeholders = map[int]string{
	6:  "Step",
	7:  "Interval",
	8:  "Component",
	9:  "Transmutation",
	10: "Progression",
	11: "Correlation",
	12: "Harmony",
}

// Registry returns the standard registry of orders 1-12 with the twelve-colour
// palette.
func Registry() *vocabulary.Registry {
	r, err := vocabulary.NewRegistry(orders, palette)
	if err != nil {
		panic(fmt.Sprintf("canonical: registry: %v", err))
	}
	return r
}

// Vocabulary returns the canonical vocabulary. Orders 1-8 have named terms,
// orders 9-12 numbered ones ("Term 1"...). Orders 3-5 have named connectives,
// orders 6-12 numbered placeholders ("Step 1 Needs Research"...) over position
// pairs taken in ascending order. The order 2 connective is unlabelled.
func Vocabulary() *vocabulary.Vocabulary {
	v, err := vocabulary.New(entry.Canonical)
	if err != nil {
		panic(err)
	}
	v.Description = "Canonical vocabulary of the twelve systems"

	for n := 1; n <= 12; n++ {
		values, ok := terms[n]
		if !ok {
			values = make([]string, n)
			for p := range values {
				values[p] = fmt.Sprintf("Term %d", p+1)
			}
		}
		must(v.SetTerms(n, values...))
	}

	for n, conns := range connectives {
		for _, c := range conns {
			must(v.SetConnective(n, c.base, c.target, c.character))
		}
	}

	for n, prefix := range placeholders {
		k := 1
		for p := 1; p <= n; p++ {
			for q := p + 1; q <= n; q++ {
				must(v.SetConnective(n, p, q, fmt.Sprintf("%s %d Needs Research", prefix, k)))
				k++
			}
		}
	}
	return v
}

// Energy returns the energy vocabulary of the triad.
func Energy() *vocabulary.Vocabulary {
	v, err := vocabulary.New(entry.Energy)
	if err != nil {
		panic(err)
	}
	v.Description = "Triad impulses as affirming, denying and reconciling energies"
	must(v.SetTerms(3, "Affirming", "Denying", "Reconciling"))
	return v
}

// Vocabularies returns every built-in vocabulary keyed by language.
func Vocabularies() map[entry.Language]*vocabulary.Vocabulary {
	return map[entry.Language]*vocabulary.Vocabulary{
		entry.Canonical: Vocabulary(),
		entry.Energy:    Energy(),
	}
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("canonical: %v", err))
	}
}
