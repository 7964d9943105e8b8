// Package metrics exposes build, catalog and publish counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/graph"
)

const namespace = "systematics"

// Collector records systematics metrics on its own registry. It satisfies
// builder.Recorder.
type Collector struct {
	registry *prometheus.Registry

	builds        *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	entries       *prometheus.GaugeVec
	links         *prometheus.GaugeVec
	reloads       *prometheus.CounterVec
	published     *prometheus.CounterVec
}

// NewCollector creates a Collector with a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Graph builds by language and result.",
		}, []string{"language", "result"}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of successful graph builds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"language"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_entries",
			Help:      "Entries in the most recently built graph.",
		}, []string{"language"}),
		links: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_links",
			Help:      "Links in the most recently built graph.",
		}, []string{"language"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reloads by result.",
		}, []string{"result"}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "published_messages_total",
			Help:      "Entity messages published for graph ingestion.",
		}, []string{"language"}),
	}
	c.registry.MustRegister(c.builds, c.buildDuration, c.entries, c.links, c.reloads, c.published)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// BuildCompleted records a successful build.
func (c *Collector) BuildCompleted(language entry.Language, _ int, stats graph.Stats, elapsed time.Duration) {
	lang := string(language)
	c.builds.WithLabelValues(lang, "success").Inc()
	c.buildDuration.WithLabelValues(lang).Observe(elapsed.Seconds())
	c.entries.WithLabelValues(lang).Set(float64(stats.Entries))
	c.links.WithLabelValues(lang).Set(float64(stats.Links))
}

// BuildFailed records a failed build.
func (c *Collector) BuildFailed(language entry.Language) {
	c.builds.WithLabelValues(string(language), "failure").Inc()
}

// CatalogReloaded records a catalog reload.
func (c *Collector) CatalogReloaded(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.reloads.WithLabelValues(result).Inc()
}

// Published records n messages published for language.
func (c *Collector) Published(language entry.Language, n int) {
	c.published.WithLabelValues(string(language)).Add(float64(n))
}
