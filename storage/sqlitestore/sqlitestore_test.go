package sqlitestore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/systematics/builder"
	"github.com/c360studio/systematics/vocabulary/canonical"
)

func TestWriteRead(t *testing.T) {
	ctx := context.Background()
	g, err := builder.New(canonical.Registry(), canonical.Vocabulary()).Build(ctx, 3, 4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.db")
	require.NoError(t, Write(ctx, path, g))

	snap, err := Read(ctx, path)
	require.NoError(t, err)
	if diff := cmp.Diff(g.Snapshot(), snap); diff != "" {
		t.Errorf("snapshot differs (-want +got):\n%s", diff)
	}

	restored, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, g.Stats(), restored.Stats())
}

func TestWrite_Tables(t *testing.T) {
	ctx := context.Background()
	g, err := builder.New(canonical.Registry(), canonical.Vocabulary()).BuildOrder(3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.db")
	require.NoError(t, Write(ctx, path, g))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var entries, links, tagged int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&entries))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&links))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM links WHERE tag IS NOT NULL`).Scan(&tagged))

	stats := g.Stats()
	assert.Equal(t, stats.Entries, entries)
	assert.Equal(t, stats.Links, links)
	assert.Equal(t, 3, tagged)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM entries WHERE id = 'term_3_1'`).Scan(&value))
	assert.Equal(t, "term_3_1", value)

	var orderless int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM entries WHERE order_value IS NULL`).Scan(&orderless))
	assert.Equal(t, 3+6, orderless, "positions and characters belong to no order")
}

func TestWrite_Replaces(t *testing.T) {
	ctx := context.Background()
	b := builder.New(canonical.Registry(), canonical.Vocabulary())
	path := filepath.Join(t.TempDir(), "graph.db")

	big, err := b.BuildOrder(5)
	require.NoError(t, err)
	require.NoError(t, Write(ctx, path, big))

	small, err := b.BuildOrder(1)
	require.NoError(t, err)
	require.NoError(t, Write(ctx, path, small))

	snap, err := Read(ctx, path)
	require.NoError(t, err)
	assert.Len(t, snap.Entries, small.Stats().Entries)
	assert.Empty(t, snap.Links)
}

func TestRead_NoGraph(t *testing.T) {
	_, err := Read(context.Background(), filepath.Join(t.TempDir(), "empty.db"))
	assert.ErrorIs(t, err, ErrNoGraph)
}
