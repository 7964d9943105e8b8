// Package kvstore persists graph snapshots in a NATS JetStream KV bucket.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
)

// BucketSnapshots is the default bucket name.
const BucketSnapshots = "SYSTEMATICS_SNAPSHOTS"

// SnapshotID identifies a stored snapshot.
type SnapshotID string

// NewSnapshotID generates a new unique snapshot ID.
func NewSnapshotID() SnapshotID {
	return SnapshotID(uuid.New().String())
}

// ParseSnapshotID validates s.
func ParseSnapshotID(s string) (SnapshotID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSnapshotID, s)
	}
	return SnapshotID(u.String()), nil
}

// Info describes a stored snapshot without its contents.
type Info struct {
	ID        SnapshotID     `json:"id"`
	Language  entry.Language `json:"language"`
	Orders    []int          `json:"orders"`
	Entries   int            `json:"entries"`
	Links     int            `json:"links"`
	CreatedAt time.Time      `json:"created_at"`
}

// record is the stored value.
type record struct {
	Info
	Snapshot graph.Snapshot `json:"snapshot"`
}

// Store provides snapshot storage operations backed by NATS KV.
type Store struct {
	bucket jetstream.KeyValue
	now    func() time.Time
}

// Option configures a Store.
type Option func(*options)

type options struct {
	bucket  string
	history uint8
}

// WithBucket overrides BucketSnapshots.
func WithBucket(name string) Option {
	return func(o *options) { o.bucket = name }
}

// WithHistory sets how many revisions per key the bucket keeps.
func WithHistory(n uint8) Option {
	return func(o *options) { o.history = n }
}

// NewStore creates a Store with the given JetStream context, creating the bucket
// if it doesn't exist.
func NewStore(ctx context.Context, js jetstream.JetStream, opts ...Option) (*Store, error) {
	o := options{bucket: BucketSnapshots, history: 1}
	for _, opt := range opts {
		opt(&o)
	}

	bucket, err := getOrCreateBucket(ctx, js, o.bucket, o.history)
	if err != nil {
		return nil, fmt.Errorf("create snapshots bucket: %w", err)
	}
	return &Store{bucket: bucket, now: time.Now}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string, history uint8) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("Systematics %s storage", strings.ToLower(name)),
		History:     history,
	})
}

// Save stores a snapshot of g and returns its ID.
func (s *Store) Save(ctx context.Context, g *graph.Graph) (SnapshotID, error) {
	stats := g.Stats()
	rec := record{
		Info: Info{
			ID:        NewSnapshotID(),
			Language:  g.Language(),
			Orders:    g.Orders(),
			Entries:   stats.Entries,
			Links:     stats.Links,
			CreatedAt: s.now().UTC(),
		},
		Snapshot: g.Snapshot(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := s.bucket.Create(ctx, string(rec.ID), data); err != nil {
		return "", fmt.Errorf("store snapshot: %w", err)
	}
	return rec.ID, nil
}

// Load retrieves the snapshot stored under id.
func (s *Store) Load(ctx context.Context, id SnapshotID) (graph.Snapshot, error) {
	rec, err := s.get(ctx, id)
	if err != nil {
		return graph.Snapshot{}, err
	}
	return rec.Snapshot, nil
}

// Restore loads the snapshot stored under id and seals it into a graph. The
// snapshot passes through the same checks as a fresh build.
func (s *Store) Restore(ctx context.Context, id SnapshotID) (*graph.Graph, error) {
	snap, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := graph.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %s: %w", id, err)
	}
	return g, nil
}

// Stat returns the description of the snapshot stored under id.
func (s *Store) Stat(ctx context.Context, id SnapshotID) (Info, error) {
	rec, err := s.get(ctx, id)
	if err != nil {
		return Info{}, err
	}
	return rec.Info, nil
}

// List returns every stored snapshot, oldest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	keys, err := s.bucket.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list snapshot keys: %w", err)
	}

	infos := make([]Info, 0, len(keys))
	for _, key := range keys {
		rec, err := s.get(ctx, SnapshotID(key))
		if err != nil {
			continue // Skip entries that fail to load
		}
		infos = append(infos, rec.Info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.Before(infos[j].CreatedAt)
		}
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}

// Delete removes the snapshot stored under id.
func (s *Store) Delete(ctx context.Context, id SnapshotID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.bucket.Delete(ctx, string(id)); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, id SnapshotID) (record, error) {
	kv, err := s.bucket.Get(ctx, string(id))
	if err != nil {
		if isNotFound(err) {
			return record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return record{}, fmt.Errorf("get snapshot: %w", err)
	}

	var rec record
	if err := json.Unmarshal(kv.Value(), &rec); err != nil {
		return record{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return rec, nil
}

// isNotFound checks if an error indicates a key was not found or deleted.
func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted)
}
