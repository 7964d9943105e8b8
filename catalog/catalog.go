// Package catalog serves one sealed graph per language. Graphs are built on
// first request and replaced wholesale when the vocabulary files change.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/systematics/builder"
	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/metrics"
	"github.com/c360studio/systematics/vocabulary"
	"github.com/c360studio/systematics/vocabulary/canonical"
)

const defaultDebounce = 500 * time.Millisecond

// Catalog maps languages to sealed graphs. Readers never lock the catalog
// itself: each reload publishes a new generation through an atomic pointer.
type Catalog struct {
	registry *vocabulary.Registry
	dir      string
	orders   []int
	debounce time.Duration
	metrics  *metrics.Collector
	layout   builder.Layout
	logger   *slog.Logger

	current atomic.Pointer[generation]
}

// generation is one immutable set of vocabularies with lazily built graphs.
type generation struct {
	id     string
	vocabs map[entry.Language]*vocabulary.Vocabulary
	graphs map[entry.Language]*lazyGraph
}

type lazyGraph struct {
	mu sync.Mutex
	g  *graph.Graph
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithVocabularyDir loads vocabulary files below dir on top of the built-in
// vocabularies. A file for a built-in language replaces it.
func WithVocabularyDir(dir string) Option {
	return func(c *Catalog) { c.dir = dir }
}

// WithOrders limits the graphs to the given orders. The default is every
// registry order.
func WithOrders(orders ...int) Option {
	return func(c *Catalog) { c.orders = orders }
}

// WithDebounce sets how long Watch collects file changes before reloading.
func WithDebounce(d time.Duration) Option {
	return func(c *Catalog) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithMetrics records builds and reloads on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Catalog) { c.metrics = m }
}

// WithLayout places coordinates with l instead of builder.Regular.
func WithLayout(l builder.Layout) Option {
	return func(c *Catalog) { c.layout = l }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a catalog over registry and loads its vocabularies. A nil
// registry selects the canonical one.
func New(registry *vocabulary.Registry, opts ...Option) (*Catalog, error) {
	if registry == nil {
		registry = canonical.Registry()
	}
	c := &Catalog{
		registry: registry,
		debounce: defaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	gen, err := c.load()
	if err != nil {
		return nil, err
	}
	c.current.Store(gen)
	return c, nil
}

// Get returns the graph for language, building it on first use.
func (c *Catalog) Get(ctx context.Context, language entry.Language) (*graph.Graph, error) {
	gen := c.current.Load()
	lg, ok := gen.graphs[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoVocabulary, language)
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()
	if lg.g != nil {
		return lg.g, nil
	}

	g, err := c.builder(gen.vocabs[language]).Build(ctx, c.orders...)
	if err != nil {
		return nil, fmt.Errorf("build %s graph: %w", language, err)
	}
	lg.g = g
	c.logger.Info("Graph built",
		"language", language,
		"generation", gen.id,
		"orders", len(g.Orders()))
	return g, nil
}

// Languages returns the languages with a vocabulary, sorted.
func (c *Catalog) Languages() []entry.Language {
	gen := c.current.Load()
	out := make([]entry.Language, 0, len(gen.vocabs))
	for lang := range gen.vocabs {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Vocabulary returns the vocabulary loaded for language.
func (c *Catalog) Vocabulary(language entry.Language) (*vocabulary.Vocabulary, bool) {
	v, ok := c.current.Load().vocabs[language]
	return v, ok
}

// Generation identifies the vocabulary set currently served. It changes on
// every successful reload.
func (c *Catalog) Generation() string {
	return c.current.Load().id
}

// Reload reads the vocabularies again and swaps in a new generation. Graphs
// are rebuilt lazily. On error the current generation stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gen, err := c.load()
	if c.metrics != nil {
		c.metrics.CatalogReloaded(err)
	}
	if err != nil {
		c.logger.Warn("Catalog reload failed, keeping current vocabularies",
			"generation", c.Generation(),
			"error", err)
		return err
	}
	prev := c.current.Swap(gen)
	c.logger.Info("Catalog reloaded",
		"previous", prev.id,
		"generation", gen.id,
		"languages", len(gen.vocabs))
	return nil
}

func (c *Catalog) load() (*generation, error) {
	vocabs := canonical.Vocabularies()
	if c.dir != "" {
		loaded, err := vocabulary.LoadDir(c.dir)
		if err != nil {
			return nil, fmt.Errorf("load vocabularies: %w", err)
		}
		for lang, v := range loaded {
			vocabs[lang] = v
		}
	}

	gen := &generation{
		id:     uuid.New().String(),
		vocabs: vocabs,
		graphs: make(map[entry.Language]*lazyGraph, len(vocabs)),
	}
	for lang := range vocabs {
		gen.graphs[lang] = &lazyGraph{}
	}
	return gen, nil
}

func (c *Catalog) builder(v *vocabulary.Vocabulary) *builder.Builder {
	opts := []builder.Option{builder.WithLogger(c.logger)}
	if c.metrics != nil {
		opts = append(opts, builder.WithMetrics(c.metrics))
	}
	if c.layout != nil {
		opts = append(opts, builder.WithLayout(c.layout))
	}
	return builder.New(c.registry, v, opts...)
}
