package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/systematics/builder"
	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/vocabulary/canonical"
)

func triad(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.New(canonical.Registry(), canonical.Vocabulary()).BuildOrder(3)
	require.NoError(t, err)
	return g
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"simple", `kind == "term"`, false},
		{"compound", `order == 3 && position > 1`, false},
		{"empty", ``, true},
		{"not boolean", `order + 1`, true},
		{"unknown field", `flavour == "sweet"`, true},
		{"syntax", `kind ==`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestFilter_Entries(t *testing.T) {
	g := triad(t)

	tests := []struct {
		name       string
		expression string
		wantIDs    []identifier.ID
	}{
		{
			name:       "terms by character",
			expression: `kind == "term" && character startsWith "W"`,
			wantIDs:    []identifier.ID{"term_3_1"},
		},
		{
			name:       "coordinates on the right",
			expression: `kind == "coordinate" && x > 0.5`,
			wantIDs:    []identifier.ID{"coord_3_1"},
		},
		{
			name:       "colour by name",
			expression: `kind == "colour" && colour == "Blue"`,
			wantIDs:    []identifier.ID{"colour_3_2"},
		},
		{
			name:       "locations at position 2",
			expression: `kind == "location" && position == 2`,
			wantIDs:    []identifier.ID{"loc_3_2"},
		},
		{
			name:       "labels",
			expression: `kind == "system_name" && value == "Triad"`,
			wantIDs:    []identifier.ID{"system_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Entries(g)
			require.NoError(t, err)

			ids := make([]identifier.ID, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_Links(t *testing.T) {
	g := triad(t)

	f, err := Compile(`kind == "connective" && tagged && (base_position == 1 || target_position == 1)`)
	require.NoError(t, err)

	got, err := f.Links(g)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, l := range got {
		assert.True(t, l.Touches(identifier.LocationID(identifier.MustLoc(3, 1))))
	}

	f, err = Compile(`tag == "Act2"`)
	require.NoError(t, err)
	got, err = f.Links(g)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, identifier.ConnectiveID(identifier.MustLoc(3, 2), identifier.MustLoc(3, 3)), got[0].ID)

	f, err = Compile(`kind == "line"`)
	require.NoError(t, err)
	got, err = f.Links(g)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestEntryEnv_Character(t *testing.T) {
	g := triad(t)
	e, ok := g.Entry(identifier.CharacterID("canonical", "Being"))
	require.True(t, ok)

	env := EntryEnv(g, e)
	assert.Equal(t, "character", env.Kind)
	assert.Equal(t, "Being", env.Character)
	assert.Equal(t, string(entry.Canonical), env.Language)
	assert.Zero(t, env.Order)
}
