package export_test

import (
	"strings"
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/systematics/builder"
	"github.com/c360studio/systematics/export"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/vocabulary/canonical"
	"github.com/c360studio/systematics/vocabulary/systematics"
)

func dyad(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.New(canonical.Registry(), canonical.Vocabulary()).BuildOrder(2)
	require.NoError(t, err)
	return g
}

func TestEntities(t *testing.T) {
	g := dyad(t)
	entities := export.Entities(g)

	stats := g.Stats()
	require.Len(t, entities, stats.Entries+stats.Links)

	byID := make(map[string]export.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}

	term := byID["term_2_1"]
	assert.Equal(t, identifier.KindTerm, term.Kind)
	assert.Contains(t, term.Triples, export.Triple{
		Subject:   "term_2_1",
		Predicate: systematics.TermCharacter,
		Object:    export.Ref("char_canonical_essence"),
	})

	coord := byID["coord_2_2"]
	assert.Contains(t, coord.Triples, export.Triple{Subject: "coord_2_2", Predicate: systematics.CoordinateX, Object: 1.0})

	// Each link adds a relation triple to its base endpoint.
	loc := byID["loc_2_1"]
	assert.Contains(t, loc.Triples, export.Triple{
		Subject:   "loc_2_1",
		Predicate: systematics.LinkConnective,
		Object:    export.Ref("loc_2_2"),
	})
	assert.Contains(t, byID["coord_2_1"].Triples, export.Triple{
		Subject:   "coord_2_1",
		Predicate: systematics.LinkLine,
		Object:    export.Ref("coord_2_2"),
	})

	conn := byID["conn_loc_2_1_loc_2_2"]
	assert.Equal(t, identifier.KindConnective, conn.Kind)
	assert.Len(t, conn.Triples, 3, "the dyad connective is untagged")
}

func TestGraph_Turtle(t *testing.T) {
	out, err := export.Graph(dyad(t), export.FormatTurtle, export.ProfileMinimal)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "@prefix bfo: "), "prefixes are sorted")
	assert.Contains(t, out, "<"+systematics.EntityIRI("term_2_1")+">\n")
	assert.Contains(t, out, "a <"+systematics.ClassTerm+"> ;")
	assert.Contains(t, out, `"Essence"`)
	assert.Contains(t, out, `"2"^^xsd:integer`)
	assert.Contains(t, out, `"-1.0"^^xsd:decimal`)
	assert.Contains(t, out, "<"+systematics.EntityIRI("loc_2_1")+">")
}

func TestGraph_NTriples(t *testing.T) {
	g := dyad(t)
	out, err := export.Graph(g, export.FormatNTriples, export.ProfileMinimal)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "<"), "line %q", line)
		assert.True(t, strings.HasSuffix(line, " ."), "line %q", line)
	}

	// Class plus prov:Entity for each entry, the class alone for each link.
	stats := g.Stats()
	typeLines := 0
	for _, line := range lines {
		if strings.Contains(line, "22-rdf-syntax-ns#type") {
			typeLines++
		}
	}
	assert.Equal(t, 2*stats.Entries+stats.Links, typeLines)
}

func TestGraph_JSONLD(t *testing.T) {
	out, err := export.Graph(dyad(t), export.FormatJSONLD, export.ProfileCCO)
	require.NoError(t, err)

	doc, err := export.ParseJSONLD([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, systematics.Namespace, doc.Context["systematics"])

	var found bool
	for _, node := range doc.Graph {
		if node.ID != systematics.EntityIRI("char_canonical_essence") {
			continue
		}
		found = true
		assert.Contains(t, node.Type, systematics.ClassCharacter)
		assert.Len(t, node.Type, 4)
	}
	assert.True(t, found)
}

func TestExport_Profiles(t *testing.T) {
	g := dyad(t)
	tests := []struct {
		profile  export.Profile
		contains string
		absent   string
	}{
		{export.ProfileMinimal, vocabulary.ProvEntity, bfo.GenericallyDependentContinuant},
		{export.ProfileBFO, bfo.GenericallyDependentContinuant, cco.InformationContentEntity},
		{export.ProfileCCO, cco.InformationContentEntity, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			out, err := export.Graph(g, export.FormatNTriples, tt.profile)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
			if tt.absent != "" {
				assert.NotContains(t, out, tt.absent)
			}
		})
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	exporter := export.NewRDFExporter(export.ProfileMinimal)
	_, err := exporter.Export("rdfxml")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]export.Format{
		"turtle":   export.FormatTurtle,
		"ttl":      export.FormatTurtle,
		".nt":      export.FormatNTriples,
		"JSONLD":   export.FormatJSONLD,
		"ntriples": export.FormatNTriples,
	}
	for in, want := range tests {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := export.ParseFormat("xml")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}
