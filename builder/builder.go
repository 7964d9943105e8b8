// Package builder assembles sealed systematics graphs from a registry and a
// vocabulary.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
	"github.com/c360studio/systematics/link"
	"github.com/c360studio/systematics/storage"
	"github.com/c360studio/systematics/vocabulary"
)

// Recorder receives build outcomes. metrics.Collector implements it.
type Recorder interface {
	BuildCompleted(language entry.Language, orders int, stats graph.Stats, elapsed time.Duration)
	BuildFailed(language entry.Language)
}

// Builder builds graphs. It holds no mutable state, so one Builder may serve
// concurrent builds.
type Builder struct {
	registry *vocabulary.Registry
	vocab    *vocabulary.Vocabulary
	layout   Layout
	recorder Recorder
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics records every build with r.
func WithMetrics(r Recorder) Option {
	return func(b *Builder) {
		b.recorder = r
	}
}

// WithLayout replaces the Regular layout.
func WithLayout(l Layout) Option {
	return func(b *Builder) {
		if l != nil {
			b.layout = l
		}
	}
}

// New creates a Builder. A nil vocabulary builds structure-only graphs in the
// canonical language: no terms and untagged connectives.
func New(registry *vocabulary.Registry, vocab *vocabulary.Vocabulary, opts ...Option) *Builder {
	b := &Builder{
		registry: registry,
		vocab:    vocab,
		layout:   Regular,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Language returns the language of the graphs this builder produces.
func (b *Builder) Language() entry.Language { return b.vocab.LanguageOrDefault() }

// BuildOrder builds the complete system of order n as its own graph.
func (b *Builder) BuildOrder(n int) (*graph.Graph, error) {
	return b.Build(context.Background(), n)
}

// Build builds the given orders into one graph, sharing positions and
// characters between them. With no orders it builds every registry order.
func (b *Builder) Build(ctx context.Context, orders ...int) (*graph.Graph, error) {
	orders, err := b.resolveOrders(orders)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := b.build(ctx, orders)
	if err != nil {
		if b.recorder != nil {
			b.recorder.BuildFailed(b.Language())
		}
		return nil, err
	}

	elapsed := time.Since(start)
	stats := g.Stats()
	if b.recorder != nil {
		b.recorder.BuildCompleted(g.Language(), len(orders), stats, elapsed)
	}
	b.logger.Debug("Built graph",
		"language", g.Language(),
		"orders", orders,
		"entries", stats.Entries,
		"links", stats.Links,
		"duration", elapsed)
	return g, nil
}

// BuildEach builds one graph per order, each on its own goroutine. The first
// failure cancels the remaining builds.
func (b *Builder) BuildEach(ctx context.Context, orders ...int) (map[int]*graph.Graph, error) {
	orders, err := b.resolveOrders(orders)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make(map[int]*graph.Graph, len(orders))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, n := range orders {
		eg.Go(func() error {
			g, err := b.Build(egCtx, n)
			if err != nil {
				return err
			}
			mu.Lock()
			out[n] = g
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveOrders checks every requested order against the registry and returns
// them sorted without duplicates.
func (b *Builder) resolveOrders(orders []int) ([]int, error) {
	if len(orders) == 0 {
		return b.registry.Orders(), nil
	}
	seen := make(map[int]bool, len(orders))
	out := make([]int, 0, len(orders))
	for _, n := range orders {
		if err := identifier.ValidateOrder(n); err != nil {
			return nil, err
		}
		if _, ok := b.registry.Order(n); !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, n)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out, nil
}

func (b *Builder) build(ctx context.Context, orders []int) (*graph.Graph, error) {
	d := graph.NewDraft(b.Language())
	for _, n := range orders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.buildOrder(d, n); err != nil {
			return nil, fmt.Errorf("build order %d: %w", n, err)
		}
	}
	return d.Seal()
}

// buildOrder adds the complete system of order n to d.
func (b *Builder) buildOrder(d *graph.Draft, n int) error {
	row, ok := b.registry.Order(n)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, n)
	}

	order, err := entry.NewOrder(n)
	if err != nil {
		return err
	}
	if err := d.AddEntry(order); err != nil {
		return err
	}
	if err := b.addLabels(d, row); err != nil {
		return err
	}

	locs := make([]identifier.Loc, 0, n)
	for p := 1; p <= n; p++ {
		loc, err := identifier.NewLoc(n, p)
		if err != nil {
			return err
		}
		locs = append(locs, loc)
		if err := b.addLocation(d, loc); err != nil {
			return err
		}
	}

	for i, a := range locs {
		for _, c := range locs[i+1:] {
			if err := d.AddLink(link.Line(a, c)); err != nil {
				return err
			}
			conn := link.Connective(a, c)
			if value, ok := b.vocab.Connective(a, c); ok {
				id, err := b.ensureCharacter(d, value)
				if err != nil {
					return err
				}
				conn = conn.WithTag(id)
			}
			if err := d.AddLink(conn); err != nil {
				return err
			}
		}
	}
	return nil
}

// addLabels adds the order-level entries the registry row defines. Empty
// designations are skipped.
func (b *Builder) addLabels(d *graph.Draft, row vocabulary.OrderInfo) error {
	labels := []struct {
		value  string
		create func(int, string) (entry.Entry, error)
	}{
		{row.Name, entry.NewSystemName},
		{row.Coherence, entry.NewCoherenceAttribute},
		{row.TermDesignation, entry.NewTermDesignation},
		{row.ConnectiveDesignation, entry.NewConnectiveDesignation},
	}
	for _, l := range labels {
		if l.value == "" {
			continue
		}
		e, err := l.create(row.Order, l.value)
		if err != nil {
			return err
		}
		if err := d.AddEntry(e); err != nil {
			return err
		}
	}
	return nil
}

// addLocation adds the location at loc with its position (when new),
// coordinate, colour and term.
func (b *Builder) addLocation(d *graph.Draft, loc identifier.Loc) error {
	if !d.Has(identifier.PositionID(loc.Position())) {
		pos, err := entry.NewPosition(loc.Position())
		if err != nil {
			return err
		}
		if err := d.AddEntry(pos); err != nil {
			return err
		}
	}
	if err := d.AddEntry(entry.NewLocation(loc)); err != nil {
		return err
	}
	if err := d.AddEntry(entry.NewCoordinate(loc, b.layout.Point(loc))); err != nil {
		return err
	}
	if c, ok := b.registry.Colour(loc.Position()); ok {
		if err := d.AddEntry(entry.NewColour(loc, c.Hex, c.Name)); err != nil {
			return err
		}
	}
	if value, ok := b.vocab.Term(loc); ok {
		id, err := b.ensureCharacter(d, value)
		if err != nil {
			return err
		}
		if err := d.AddEntry(entry.NewTerm(loc, id)); err != nil {
			return err
		}
	}
	return nil
}

// ensureCharacter adds the character for value on first reference and returns
// its identifier. A different value that slugs to the same identifier is
// rejected rather than sharing the earlier character.
func (b *Builder) ensureCharacter(d *graph.Draft, value string) (identifier.ID, error) {
	c, err := entry.NewCharacter(d.Language(), value)
	if err != nil {
		return "", err
	}
	if prev, ok := d.Entry(c.ID); ok {
		if prev.Kind != entry.KindCharacter || prev.Character.Value != value {
			return "", fmt.Errorf("character %q collides with %q as %s: %w",
				value, prev.Value(), c.ID, storage.ErrDuplicate)
		}
		return c.ID, nil
	}
	if err := d.AddEntry(c); err != nil {
		return "", err
	}
	return c.ID, nil
}
