package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/c360studio/systematics/builder"
	"github.com/c360studio/systematics/catalog"
	"github.com/c360studio/systematics/config"
	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/metrics"
	"github.com/c360studio/systematics/vocabulary"
	"github.com/c360studio/systematics/vocabulary/canonical"
)

// app holds what every command shares: resolved config, logger and the
// vocabulary catalog.
type app struct {
	flags struct {
		configPath string
		logLevel   string
		language   string
		vocabDir   string
		registry   string
		layout     string
	}

	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Collector

	registry *vocabulary.Registry
	catalog  *catalog.Catalog
}

// loadConfig resolves the layered config and applies flag overrides.
func (a *app) loadConfig(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.configPath != "" {
		cfg, err = config.LoadFromFile(a.flags.configPath)
	} else {
		cfg, err = config.NewLoader(a.logger).Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg.Merge(&config.Config{
		Build: config.BuildConfig{
			Language: a.flags.language,
			Layout:   a.flags.layout,
		},
		Vocabulary: config.VocabularyConfig{
			Dir:      a.flags.vocabDir,
			Registry: a.flags.registry,
		},
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.metrics = metrics.NewCollector()
	return nil
}

func (a *app) layout() builder.Layout {
	if a.cfg.Build.Layout == config.LayoutDiagram {
		return builder.LayoutFunc(canonical.Diagram)
	}
	return builder.Regular
}

func (a *app) language() entry.Language {
	// Validate has already accepted it.
	l, _ := entry.ParseLanguage(a.cfg.Build.Language)
	return l
}

// openCatalog loads the registry and vocabularies once per command.
func (a *app) openCatalog() (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	registry := canonical.Registry()
	if path := a.cfg.Vocabulary.Registry; path != "" {
		r, err := vocabulary.LoadRegistryFile(path)
		if err != nil {
			return nil, err
		}
		registry = r
	}

	c, err := catalog.New(registry,
		catalog.WithVocabularyDir(a.cfg.Vocabulary.Dir),
		catalog.WithOrders(a.cfg.Build.Orders...),
		catalog.WithDebounce(a.cfg.Vocabulary.Debounce),
		catalog.WithLayout(a.layout()),
		catalog.WithMetrics(a.metrics),
		catalog.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	a.registry = registry
	a.catalog = c
	return c, nil
}

// graph builds the graph of the selected language. Explicit orders bypass the
// catalog's cached graph.
func (a *app) graph(ctx context.Context, orders []int) (*graph.Graph, error) {
	c, err := a.openCatalog()
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return c.Get(ctx, a.language())
	}

	v, ok := c.Vocabulary(a.language())
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNoVocabulary, a.language())
	}
	b := builder.New(a.registry, v,
		builder.WithLayout(a.layout()),
		builder.WithMetrics(a.metrics),
		builder.WithLogger(a.logger))
	return b.Build(ctx, orders...)
}

// parseInts converts positional arguments to integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", arg)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseOrders converts order arguments to integers. An argument may also name
// a system in the registry ("triad", "Dodecad").
func (a *app) parseOrders(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if _, err := a.openCatalog(); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(args))
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			out = append(out, n)
			continue
		}
		n, ok := a.registry.SystemByName(arg)
		if !ok {
			return nil, fmt.Errorf("not an order number or system name: %q", arg)
		}
		out = append(out, n)
	}
	return out, nil
}

// connectToNATS creates a client and waits for the connection.
func (a *app) connectToNATS(ctx context.Context) (*natsclient.Client, error) {
	url := a.cfg.NATS.URL
	a.logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(5),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	connCtx, cancel := context.WithTimeout(ctx, a.cfg.NATS.Timeout)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	a.logger.Info("Connected to NATS", "url", url)
	return client, nil
}

// ensureStream creates the ingest stream unless it already exists.
func (a *app) ensureStream(ctx context.Context, js jetstream.JetStream) error {
	if _, err := js.Stream(ctx, a.cfg.NATS.Stream); err == nil {
		return nil
	}
	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     a.cfg.NATS.Stream,
		Subjects: []string{a.cfg.NATS.Subject},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", a.cfg.NATS.Stream, err)
	}
	a.logger.Debug("Created stream", "stream", a.cfg.NATS.Stream, "subject", a.cfg.NATS.Subject)
	return nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	// Check for common connection errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

Set SYSTEMATICS_NATS_URL or NATS_URL to point to your NATS server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
