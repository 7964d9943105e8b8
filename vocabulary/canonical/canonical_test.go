package canonical

import (
	"testing"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := Registry()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, r.Orders())

	triad, ok := r.Order(3)
	require.True(t, ok)
	assert.Equal(t, "Triad", triad.Name)
	assert.Equal(t, "Dynamism", triad.Coherence)
	assert.Equal(t, "Impulses", triad.TermDesignation)
	assert.Equal(t, "Acts", triad.ConnectiveDesignation)

	ennead, ok := r.Order(9)
	require.True(t, ok)
	assert.Empty(t, ennead.TermDesignation)
	assert.Empty(t, ennead.ConnectiveDesignation)

	n, ok := r.SystemByName("dodecad")
	require.True(t, ok)
	assert.Equal(t, 12, n)

	gold, ok := r.Colour(12)
	require.True(t, ok)
	assert.Equal(t, "#FFD700", gold.Hex)
	_, ok = r.Colour(13)
	assert.False(t, ok)
}

func TestVocabulary_Terms(t *testing.T) {
	v := Vocabulary()
	assert.Equal(t, entry.Canonical, v.Language)

	tests := []struct {
		order, position int
		want            string
	}{
		{1, 1, "Unity"},
		{3, 1, "Will"},
		{5, 3, "Higher Potential"},
		{8, 6, "Smallest Significant Holon"},
		{9, 1, "Term 1"},
		{12, 12, "Term 12"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := v.Term(identifier.MustLoc(tt.order, tt.position))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary_Connectives(t *testing.T) {
	v := Vocabulary()

	got, ok := v.Connective(identifier.MustLoc(3, 3), identifier.MustLoc(3, 1))
	require.True(t, ok)
	assert.Equal(t, "Act3", got)

	got, ok = v.Connective(identifier.MustLoc(4, 2), identifier.MustLoc(4, 4))
	require.True(t, ok)
	assert.Equal(t, "Technical Power", got)

	got, ok = v.Connective(identifier.MustLoc(6, 1), identifier.MustLoc(6, 2))
	require.True(t, ok)
	assert.Equal(t, "Step 1 Needs Research", got)

	got, ok = v.Connective(identifier.MustLoc(12, 11), identifier.MustLoc(12, 12))
	require.True(t, ok)
	assert.Equal(t, "Harmony 66 Needs Research", got)

	_, ok = v.Connective(identifier.MustLoc(2, 1), identifier.MustLoc(2, 2))
	assert.False(t, ok)

	for n := 3; n <= 12; n++ {
		assert.Equal(t, n*(n-1)/2, v.ConnectiveCount(n), "order %d", n)
	}
	assert.Zero(t, v.ConnectiveCount(1))
	assert.Zero(t, v.ConnectiveCount(2))
}

func TestEnergy(t *testing.T) {
	v := Energy()
	assert.Equal(t, entry.Energy, v.Language)

	got, ok := v.Term(identifier.MustLoc(3, 3))
	require.True(t, ok)
	assert.Equal(t, "Reconciling", got)

	_, ok = v.Term(identifier.MustLoc(4, 1))
	assert.False(t, ok)
}

func TestDiagram(t *testing.T) {
	for n := 1; n <= identifier.MaxOrder; n++ {
		require.Len(t, diagram[n], n, "order %d", n)
	}
	assert.Equal(t, entry.Point3D{X: 1, Y: 0}, Diagram(identifier.MustLoc(3, 3)))
}

func TestFreshValues(t *testing.T) {
	a := Vocabulary()
	require.NoError(t, a.SetTerms(9, "Changed"))

	got, ok := Vocabulary().Term(identifier.MustLoc(9, 1))
	require.True(t, ok)
	assert.Equal(t, "Term 1", got)
}
