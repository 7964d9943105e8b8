package kvstore

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/systematics/builder"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/vocabulary/canonical"
)

func TestSnapshotID(t *testing.T) {
	t.Run("NewSnapshotID generates valid ID", func(t *testing.T) {
		id := NewSnapshotID()
		parsed, err := ParseSnapshotID(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
		assert.NotEqual(t, id, NewSnapshotID())
	})

	t.Run("ParseSnapshotID normalizes", func(t *testing.T) {
		id, err := ParseSnapshotID(" 6BA7B810-9DAD-11D1-80B4-00C04FD430C8 ")
		require.NoError(t, err)
		assert.Equal(t, SnapshotID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), id)
	})

	t.Run("ParseSnapshotID rejects invalid format", func(t *testing.T) {
		for _, input := range []string{"", "invalid", "order_3"} {
			_, err := ParseSnapshotID(input)
			assert.ErrorIs(t, err, ErrInvalidSnapshotID, input)
		}
	})
}

func TestRecordRestores(t *testing.T) {
	g, err := builder.New(canonical.Registry(), canonical.Vocabulary()).BuildOrder(4)
	require.NoError(t, err)

	data, err := json.Marshal(record{Info: Info{ID: NewSnapshotID()}, Snapshot: g.Snapshot()})
	require.NoError(t, err)

	var rec record
	require.NoError(t, json.Unmarshal(data, &rec))

	restored, err := graph.Restore(rec.Snapshot)
	require.NoError(t, err)
	if diff := cmp.Diff(g.Snapshot(), restored.Snapshot()); diff != "" {
		t.Errorf("restored graph differs (-want +got):\n%s", diff)
	}
}
