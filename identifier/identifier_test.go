package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoc(t *testing.T) {
	tests := []struct {
		name     string
		order    int
		position int
		wantErr  bool
	}{
		{"monad", 1, 1, false},
		{"triad last", 3, 3, false},
		{"dodecad", 12, 12, false},
		{"order zero", 0, 1, true},
		{"order thirteen", 13, 1, true},
		{"position zero", 3, 0, true},
		{"position past order", 3, 4, true},
		{"negative", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewLoc(tt.order, tt.position)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStructure)
				assert.True(t, loc.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.order, loc.Order())
			assert.Equal(t, tt.position, loc.Position())
		})
	}
}

func TestMustLoc_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLoc(4, 5) })
}

func TestFormat(t *testing.T) {
	loc31 := MustLoc(3, 1)
	loc32 := MustLoc(3, 2)

	tests := []struct {
		got  ID
		want string
	}{
		{OrderID(3), "order_3"},
		{PositionID(1), "position_1"},
		{LocationID(loc31), "loc_3_1"},
		{TermID(loc31), "term_3_1"},
		{CoordinateID(loc31), "coord_3_1"},
		{ColourID(loc31), "colour_3_1"},
		{SystemNameID(3), "system_3"},
		{CoherenceAttributeID(3), "coherence_3"},
		{TermDesignationID(3), "term_des_3"},
		{ConnectiveDesignationID(3), "conn_des_3"},
		{CharacterID("canonical", "Will"), "char_canonical_will"},
		{CharacterID("canonical", "Higher Potential"), "char_canonical_higher_potential"},
		{ConnectiveID(loc31, loc32), "conn_loc_3_1_loc_3_2"},
		{LineID(loc31, loc32), "line_coord_3_1_coord_3_2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestLinkIDsAreCanonical(t *testing.T) {
	a := MustLoc(5, 4)
	b := MustLoc(5, 2)

	assert.Equal(t, ConnectiveID(a, b), ConnectiveID(b, a))
	assert.Equal(t, ID("conn_loc_5_2_loc_5_4"), ConnectiveID(a, b))
	assert.Equal(t, LineID(a, b), LineID(b, a))
	assert.Equal(t, ID("line_coord_5_2_coord_5_4"), LineID(a, b))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Ref
	}{
		{"order_12", Ref{Kind: KindOrder, Order: 12}},
		{"position_7", Ref{Kind: KindPosition, Position: 7}},
		{"loc_3_1", Ref{Kind: KindLocation, Loc: MustLoc(3, 1)}},
		{"term_3_2", Ref{Kind: KindTerm, Loc: MustLoc(3, 2)}},
		{"term_des_4", Ref{Kind: KindTermDesignation, Order: 4}},
		{"coord_10_10", Ref{Kind: KindCoordinate, Loc: MustLoc(10, 10)}},
		{"colour_2_1", Ref{Kind: KindColour, Loc: MustLoc(2, 1)}},
		{"system_1", Ref{Kind: KindSystemName, Order: 1}},
		{"coherence_5", Ref{Kind: KindCoherenceAttribute, Order: 5}},
		{"conn_des_8", Ref{Kind: KindConnectiveDesignation, Order: 8}},
		{"char_canonical_will", Ref{Kind: KindCharacter, Language: "canonical", Value: "will"}},
		{"char_canonical_step_1_needs_research", Ref{Kind: KindCharacter, Language: "canonical", Value: "step_1_needs_research"}},
		{"char_energy_self-sufficiency", Ref{Kind: KindCharacter, Language: "energy", Value: "self-sufficiency"}},
		{"conn_loc_3_1_loc_3_2", Ref{Kind: KindConnective, Base: MustLoc(3, 1), Target: MustLoc(3, 2)}},
		{"conn_loc_11_2_loc_11_10", Ref{Kind: KindConnective, Base: MustLoc(11, 2), Target: MustLoc(11, 10)}},
		{"line_coord_4_1_coord_4_3", Ref{Kind: KindLine, Base: MustLoc(4, 1), Target: MustLoc(4, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.ID().String())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"unknown_1",
		"ord_3",
		"order_",
		"order_x",
		"order_03",
		"order_+3",
		"order_-3",
		"loc_3",
		"loc_3_",
		"loc_3_1_2",
		"loc_a_1",
		"term_3_01",
		"char_canonical",
		"char_canonical_",
		"char__will",
		"char_Canonical_will",
		"char_canonical_Will",
		"char_canonical_higher potential",
		"conn_3_1_loc_3_2",
		"conn_loc_3_1",
		"conn_loc_3_1_coord_3_2",
		"line_loc_3_1_loc_3_2",
		"line_coord_3_1_coord_3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedIdentifier)
		})
	}
}

func TestParse_InvalidStructure(t *testing.T) {
	inputs := []string{
		"order_0",
		"order_13",
		"position_0",
		"position_13",
		"loc_13_1",
		"loc_3_4",
		"loc_3_0",
		"term_2_3",
		"coord_0_0",
		"system_13",
		"term_des_0",
		"conn_loc_3_1_loc_3_1",
		"conn_loc_3_2_loc_3_1",
		"conn_loc_3_1_loc_3_5",
		"line_coord_4_4_coord_4_1",
		"line_coord_2_1_coord_2_1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidStructure)
		})
	}
}

func TestRoundTrip_AllStructuralIdentifiers(t *testing.T) {
	seen := make(map[ID]bool)
	add := func(id ID) {
		t.Helper()
		require.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true

		ref, err := Parse(id.String())
		require.NoError(t, err, "parse %s", id)
		assert.Equal(t, id, ref.ID())
	}

	for n := 1; n <= MaxOrder; n++ {
		for _, id := range []ID{
			OrderID(n), PositionID(n), SystemNameID(n), CoherenceAttributeID(n),
			TermDesignationID(n), ConnectiveDesignationID(n),
		} {
			add(id)
		}
		for p := 1; p <= n; p++ {
			loc := MustLoc(n, p)
			add(LocationID(loc))
			add(TermID(loc))
			add(CoordinateID(loc))
			add(ColourID(loc))
			for q := p + 1; q <= n; q++ {
				other := MustLoc(n, q)
				add(ConnectiveID(loc, other))
				add(LineID(other, loc))
			}
		}
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "higher_potential", Slug("Higher Potential"))
	assert.Equal(t, "self-sufficiency", Slug("Self-Sufficiency"))
	assert.Equal(t, "will", Slug("  Will "))
}

func TestValidateCharacter(t *testing.T) {
	assert.NoError(t, ValidateCharacter("canonical", "Smallest Significant Holon"))
	assert.ErrorIs(t, ValidateCharacter("canonical", "Don't"), ErrMalformedIdentifier)
	assert.ErrorIs(t, ValidateCharacter("Canonical1", "Will"), ErrMalformedIdentifier)
}
