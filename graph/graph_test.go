package graph

import (
	"testing"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
	"github.com/c360studio/systematics/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triadDraft assembles order 3 with terms at positions 1 and 2 only and a tag on
// the (1,2) connective.
func triadDraft(t *testing.T) *Draft {
	t.Helper()
	d := NewDraft(entry.Canonical)
	add := func(e entry.Entry, err error) {
		t.Helper()
		require.NoError(t, err)
		require.NoError(t, d.AddEntry(e))
	}

	add(entry.NewOrder(3))
	add(entry.NewSystemName(3, "Triad"))
	add(entry.NewConnectiveDesignation(3, "Acts"))
	for p := 1; p <= 3; p++ {
		loc := identifier.MustLoc(3, p)
		add(entry.NewPosition(p))
		add(entry.NewLocation(loc), nil)
		add(entry.NewCoordinate(loc, entry.Point3D{X: float64(p)}), nil)
	}
	add(entry.NewColour(identifier.MustLoc(3, 1), "#FF0000", "Red"), nil)

	for p, value := range map[int]string{1: "Will", 2: "Function"} {
		c, err := entry.NewCharacter(entry.Canonical, value)
		require.NoError(t, err)
		require.NoError(t, d.AddEntry(c))
		add(entry.NewTerm(identifier.MustLoc(3, p), c.ID), nil)
	}
	act, err := entry.NewCharacter(entry.Canonical, "Act1")
	require.NoError(t, err)
	require.NoError(t, d.AddEntry(act))

	for p := 1; p <= 3; p++ {
		for q := p + 1; q <= 3; q++ {
			a, b := identifier.MustLoc(3, p), identifier.MustLoc(3, q)
			require.NoError(t, d.AddLink(link.Line(a, b)))
			conn := link.Connective(a, b)
			if p == 1 && q == 2 {
				conn = conn.WithTag(act.ID)
			}
			require.NoError(t, d.AddLink(conn))
		}
	}
	return d
}

func triad(t *testing.T) *Graph {
	t.Helper()
	g, err := triadDraft(t).Seal()
	require.NoError(t, err)
	return g
}

func TestDraft_Seal(t *testing.T) {
	d := triadDraft(t)

	g, err := d.Seal()
	require.NoError(t, err)
	require.NotNil(t, g)

	_, err = d.Seal()
	assert.ErrorIs(t, err, ErrSealed)

	order, err := entry.NewOrder(4)
	require.NoError(t, err)
	assert.ErrorIs(t, d.AddEntry(order), ErrSealed)
	assert.ErrorIs(t, d.AddLink(link.Line(identifier.MustLoc(3, 1), identifier.MustLoc(3, 2))), ErrSealed)
}

func TestDraft_RejectsDanglingEntries(t *testing.T) {
	d := NewDraft(entry.Canonical)
	loc := identifier.MustLoc(2, 1)

	err := d.AddEntry(entry.NewLocation(loc))
	assert.ErrorIs(t, err, storage.ErrDanglingReference)

	name, err := entry.NewSystemName(2, "Dyad")
	require.NoError(t, err)
	assert.ErrorIs(t, d.AddEntry(name), storage.ErrDanglingReference)

	assert.ErrorIs(t, d.AddEntry(entry.NewCoordinate(loc, entry.Point3D{})), storage.ErrDanglingReference)
	assert.ErrorIs(t, d.AddEntry(entry.NewTerm(loc, "char_canonical_essence")), storage.ErrDanglingReference)

	energy, err := entry.NewCharacter(entry.Energy, "Affirming")
	require.NoError(t, err)
	assert.ErrorIs(t, d.AddEntry(energy), entry.ErrInvalidEntry)
}

func TestDraft_SealRejectsIncompleteOrders(t *testing.T) {
	t.Run("missing location", func(t *testing.T) {
		d := NewDraft(entry.Canonical)
		order, _ := entry.NewOrder(2)
		pos, _ := entry.NewPosition(1)
		require.NoError(t, d.AddEntry(order))
		require.NoError(t, d.AddEntry(pos))
		loc := identifier.MustLoc(2, 1)
		require.NoError(t, d.AddEntry(entry.NewLocation(loc)))
		require.NoError(t, d.AddEntry(entry.NewCoordinate(loc, entry.Point3D{})))

		_, err := d.Seal()
		assert.ErrorIs(t, err, ErrIncomplete)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		d := NewDraft(entry.Canonical)
		order, _ := entry.NewOrder(1)
		pos, _ := entry.NewPosition(1)
		require.NoError(t, d.AddEntry(order))
		require.NoError(t, d.AddEntry(pos))
		require.NoError(t, d.AddEntry(entry.NewLocation(identifier.MustLoc(1, 1))))

		_, err := d.Seal()
		assert.ErrorIs(t, err, ErrIncomplete)
	})

	t.Run("empty draft seals", func(t *testing.T) {
		g, err := NewDraft(entry.Canonical).Seal()
		require.NoError(t, err)
		assert.Empty(t, g.Orders())
	})
}

func TestGraph_Terms(t *testing.T) {
	g := triad(t)

	term, ok := g.TermAtLocation("loc_3_1")
	require.True(t, ok)
	assert.Equal(t, identifier.ID("char_canonical_will"), term.Character)

	c, ok := g.TermCharacterAt("loc_3_2")
	require.True(t, ok)
	assert.Equal(t, "Function", c.Value)

	_, ok = g.TermAtLocation("loc_3_3")
	assert.False(t, ok)
	_, ok = g.TermCharacterAt("loc_3_3")
	assert.False(t, ok)
	_, ok = g.TermCharacterAt("loc_9_9")
	assert.False(t, ok)

	terms := g.Terms(3)
	require.Len(t, terms, 2)
	assert.Equal(t, identifier.ID("term_3_1"), terms[0].ID)
	assert.Equal(t, identifier.ID("term_3_2"), terms[1].ID)
}

func TestGraph_Connectives(t *testing.T) {
	g := triad(t)

	conns, err := g.ConnectivesForLocation("loc_3_2")
	require.NoError(t, err)
	require.Len(t, conns, 2)
	assert.Equal(t, identifier.ID("conn_loc_3_1_loc_3_2"), conns[0].ID)
	assert.Equal(t, identifier.ID("conn_loc_3_2_loc_3_3"), conns[1].ID)
	assert.Equal(t, identifier.ID("char_canonical_act1"), conns[0].Tag)
	assert.Empty(t, conns[1].Tag)

	byTerm, err := g.ConnectivesForTerm("term_3_2")
	require.NoError(t, err)
	assert.Equal(t, conns, byTerm)

	_, err = g.ConnectivesForTerm("term_3_3")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = g.ConnectivesForLocation("loc_4_1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = g.ConnectivesForLocation("loc_3_x")
	assert.ErrorIs(t, err, identifier.ErrMalformedIdentifier)

	filtered := g.Connectives(3, 2, 1)
	require.Len(t, filtered, 1)
	assert.Equal(t, identifier.ID("conn_loc_3_1_loc_3_2"), filtered[0].ID)
	assert.Len(t, g.Connectives(3, 0, 0), 3)
	assert.Len(t, g.Connectives(3, 3, 0), 2)
	assert.Empty(t, g.Connectives(4, 0, 0))
}

func TestGraph_Geometry(t *testing.T) {
	g := triad(t)

	coord, err := g.CoordinateAt("loc_3_3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, coord.Point.X)

	_, err = g.CoordinateAt("loc_5_1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, g.Lines(3), 3)
	assert.Len(t, g.LinesForCoordinate("coord_3_1"), 2)

	colour, ok := g.Colour("loc_3_1")
	require.True(t, ok)
	assert.Equal(t, "#FF0000", colour.Hex)
	_, ok = g.Colour("loc_3_2")
	assert.False(t, ok)
}

func TestGraph_OrderSummary(t *testing.T) {
	g := triad(t)

	s, err := g.OrderSummary(3)
	require.NoError(t, err)
	require.NotNil(t, s.Name)
	assert.Equal(t, "Triad", *s.Name)
	assert.Nil(t, s.Coherence)
	assert.Nil(t, s.TermDesignation)
	require.NotNil(t, s.ConnectiveDesignation)
	assert.Equal(t, "Acts", *s.ConnectiveDesignation)

	_, err = g.OrderSummary(4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGraph_Slice(t *testing.T) {
	g := triad(t)

	s, err := g.Slice("loc_3_1")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Location.Order)
	require.NotNil(t, s.Term)
	require.NotNil(t, s.Character)
	assert.Equal(t, "Will", s.Character.Value)
	require.NotNil(t, s.Colour)
	assert.Len(t, s.Connectives, 2)

	s, err = g.Slice("loc_3_3")
	require.NoError(t, err)
	assert.Nil(t, s.Term)
	assert.Nil(t, s.Colour)

	_, err = g.Slice("loc_2_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGraph_Enumeration(t *testing.T) {
	g := triad(t)

	assert.Equal(t, []int{3}, g.Orders())
	assert.True(t, g.HasOrder(3))
	assert.False(t, g.HasOrder(2))
	assert.Len(t, g.Locations(3), 3)
	assert.Len(t, g.LocationsForPosition(2), 1)
	assert.Empty(t, g.LocationsForPosition(4))
	assert.Len(t, g.Characters(entry.Canonical), 3)
	assert.Empty(t, g.Characters(entry.Energy))

	stats := g.Stats()
	assert.Equal(t, 1, stats.Orders)
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 3, stats.Connectives)
	assert.Equal(t, 1, stats.Tagged)
	assert.Equal(t, 3, stats.ByKind[entry.KindCoordinate])
	assert.Equal(t, len(g.IDs()), stats.Entries+stats.Links)
}

func TestRestore(t *testing.T) {
	g := triad(t)

	restored, err := Restore(g.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, g.IDs(), restored.IDs())
	assert.Equal(t, g.Stats(), restored.Stats())

	t.Run("tampered snapshot fails", func(t *testing.T) {
		snap := g.Snapshot()
		snap.Links = append(snap.Links, link.Connective(identifier.MustLoc(4, 1), identifier.MustLoc(4, 2)))
		_, err := Restore(snap)
		assert.ErrorIs(t, err, storage.ErrDanglingReference)
	})
}

func TestGraph_ReturnedEntriesDoNotMutate(t *testing.T) {
	g := triad(t)
	loc1 := identifier.LocationID(identifier.MustLoc(3, 1))

	e, ok := g.Entry("term_3_1")
	require.True(t, ok)
	e.Term.Character = "char_canonical_bogus"

	for _, e := range g.Snapshot().Entries {
		if e.Coordinate != nil {
			e.Coordinate.Location = "loc_9_9"
			e.Coordinate.Point.X = 99
		}
		if e.Character != nil {
			e.Character.Value = "Bogus"
		}
	}
	for _, e := range g.Locations(3) {
		e.Location.Position = 9
	}
	for _, e := range g.Terms(3) {
		e.Term.Location = "loc_9_9"
	}
	for _, e := range g.EntriesOfKind(entry.KindColour) {
		e.Colour.Name = "Bogus"
	}

	c, ok := g.TermCharacterAt(loc1)
	require.True(t, ok)
	assert.Equal(t, "Will", c.Value)

	coord, err := g.CoordinateAt(loc1)
	require.NoError(t, err)
	assert.Equal(t, loc1, coord.Location)
	assert.Equal(t, 1.0, coord.Point.X)

	locs := g.Locations(3)
	require.Len(t, locs, 3)
	assert.Equal(t, 1, locs[0].Location.Position)

	colour, ok := g.Colour(loc1)
	require.True(t, ok)
	assert.Equal(t, "Red", colour.Name)

	restored, err := Restore(g.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, g.Stats(), restored.Stats())
}
