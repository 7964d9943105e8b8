// Package sqlitestore writes sealed graphs to SQLite files.
//
// A file holds one graph in three tables: meta (language), entries and links.
// Rows keep insertion order so Read can replay them through graph.Restore.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
)

// ErrNoGraph is returned when a file holds no graph.
var ErrNoGraph = errors.New("no graph in file")

const schema = `
DROP TABLE IF EXISTS meta;
DROP TABLE IF EXISTS entries;
DROP TABLE IF EXISTS links;

CREATE TABLE meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE entries (
	seq INTEGER PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	kind TEXT NOT NULL,
	order_value INTEGER,
	value TEXT NOT NULL DEFAULT '',
	payload TEXT NOT NULL
);
CREATE INDEX idx_entries_kind ON entries(kind);
CREATE INDEX idx_entries_order ON entries(order_value);

CREATE TABLE links (
	seq INTEGER PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	kind TEXT NOT NULL,
	base TEXT NOT NULL REFERENCES entries(id),
	target TEXT NOT NULL REFERENCES entries(id),
	tag TEXT
);
CREATE INDEX idx_links_base ON links(base);
CREATE INDEX idx_links_target ON links(target);
`

// Write stores g at path, replacing any graph already there.
func Write(ctx context.Context, path string, g *graph.Graph) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('language', ?)`, string(g.Language())); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	if err = writeEntries(ctx, tx, g.Entries()); err != nil {
		return err
	}
	if err = writeLinks(ctx, tx, g.Links()); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func writeEntries(ctx context.Context, tx *sql.Tx, entries []entry.Entry) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (seq, id, kind, order_value, value, payload) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entries: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal entry %s: %w", e.ID, err)
		}
		var order sql.NullInt64
		if n, ok := e.OrderOf(); ok {
			order = sql.NullInt64{Int64: int64(n), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, i, string(e.ID), string(e.Kind), order, e.Value(), string(payload)); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.ID, err)
		}
	}
	return nil
}

func writeLinks(ctx context.Context, tx *sql.Tx, links []link.Link) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO links (seq, id, kind, base, target, tag) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare links: %w", err)
	}
	defer stmt.Close()

	for i, l := range links {
		var tag sql.NullString
		if c, ok := l.Character(); ok {
			tag = sql.NullString{String: string(c), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, i, string(l.ID), string(l.Kind), string(l.Base), string(l.Target), tag); err != nil {
			return fmt.Errorf("insert link %s: %w", l.ID, err)
		}
	}
	return nil
}

// Read loads the snapshot stored at path.
func Read(ctx context.Context, path string) (graph.Snapshot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return graph.Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	var snap graph.Snapshot
	var language string
	err = db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'language'`).Scan(&language)
	if err != nil {
		// A fresh or foreign file has no meta table.
		return graph.Snapshot{}, fmt.Errorf("%w: %s: %v", ErrNoGraph, path, err)
	}
	snap.Language = entry.Language(language)

	if snap.Entries, err = readEntries(ctx, db); err != nil {
		return graph.Snapshot{}, err
	}
	if snap.Links, err = readLinks(ctx, db); err != nil {
		return graph.Snapshot{}, err
	}
	return snap, nil
}

func readEntries(ctx context.Context, db *sql.DB) ([]entry.Entry, error) {
	rows, err := db.QueryContext(ctx, `SELECT payload FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		var e entry.Entry
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, fmt.Errorf("unmarshal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func readLinks(ctx context.Context, db *sql.DB) ([]link.Link, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, kind, base, target, tag FROM links ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []link.Link
	for rows.Next() {
		var (
			l                      link.Link
			id, kind, base, target string
			tag                    sql.NullString
		)
		if err := rows.Scan(&id, &kind, &base, &target, &tag); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.ID = identifier.ID(id)
		l.Kind = link.Kind(kind)
		l.Base = identifier.ID(base)
		l.Target = identifier.ID(target)
		if tag.Valid {
			l.Tag = identifier.ID(tag.String)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// Load reads the graph stored at path and seals it.
func Load(ctx context.Context, path string) (*graph.Graph, error) {
	snap, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return graph.Restore(snap)
}
