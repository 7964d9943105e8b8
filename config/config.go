// Package config provides configuration loading and management for systematics.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/export"
	"github.com/c360studio/systematics/identifier"
)

// Layout names accepted by BuildConfig.Layout.
const (
	LayoutRegular = "regular"
	LayoutDiagram = "diagram"
)

// Config represents the complete systematics configuration
type Config struct {
	Build      BuildConfig      `yaml:"build"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Export     ExportConfig     `yaml:"export"`
	NATS       NATSConfig       `yaml:"nats"`
	Storage    StorageConfig    `yaml:"storage"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// BuildConfig configures graph construction
type BuildConfig struct {
	// Language is the vocabulary used when a command names none
	Language string `yaml:"language"`
	// Orders limits builds to these orders (empty = all registry orders)
	Orders []int `yaml:"orders,omitempty"`
	// Layout places coordinates: "regular" or "diagram"
	Layout string `yaml:"layout"`
}

// VocabularyConfig configures where vocabularies come from
type VocabularyConfig struct {
	// Dir holds extra vocabulary YAML files, watched for changes
	Dir string `yaml:"dir"`
	// Registry is a registry YAML file (empty = the standard twelve systems)
	Registry string `yaml:"registry"`
	// Debounce delays reloads after file changes
	Debounce time.Duration `yaml:"debounce"`
}

// ExportConfig sets RDF export defaults
type ExportConfig struct {
	Format  string `yaml:"format"`
	Profile string `yaml:"profile"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Stream is the JetStream stream capturing Subject
	Stream string `yaml:"stream"`
	// Subject receives published entities
	Subject string `yaml:"subject"`
	// Bucket is the KV bucket for snapshots
	Bucket string `yaml:"bucket"`
	// Timeout bounds connection setup
	Timeout time.Duration `yaml:"timeout"`
}

// StorageConfig configures file storage
type StorageConfig struct {
	// SQLitePath is the default SQLite file for snapshot export
	SQLitePath string `yaml:"sqlite_path"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address of the metrics endpoint (empty = disabled)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Language: string(entry.Canonical),
			Layout:   LayoutRegular,
		},
		Vocabulary: VocabularyConfig{
			Debounce: 500 * time.Millisecond,
		},
		Export: ExportConfig{
			Format:  string(export.FormatTurtle),
			Profile: string(export.ProfileMinimal),
		},
		NATS: NATSConfig{
			URL:     "nats://localhost:4222",
			Stream:  "GRAPH",
			Subject: "graph.ingest.entity",
			Bucket:  "SYSTEMATICS_SNAPSHOTS",
			Timeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			SQLitePath: "systematics.db",
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := entry.ParseLanguage(c.Build.Language); err != nil {
		return fmt.Errorf("build.language: %w", err)
	}
	for _, n := range c.Build.Orders {
		if err := identifier.ValidateOrder(n); err != nil {
			return fmt.Errorf("build.orders: %w", err)
		}
	}
	if c.Build.Layout != LayoutRegular && c.Build.Layout != LayoutDiagram {
		return fmt.Errorf("build.layout must be %q or %q", LayoutRegular, LayoutDiagram)
	}
	if c.Vocabulary.Debounce < 0 {
		return fmt.Errorf("vocabulary.debounce must not be negative")
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if _, err := export.ParseProfile(c.Export.Profile); err != nil {
		return fmt.Errorf("export.profile: %w", err)
	}
	if c.NATS.Stream == "" {
		return fmt.Errorf("nats.stream is required")
	}
	if c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required")
	}
	if c.NATS.Bucket == "" {
		return fmt.Errorf("nats.bucket is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Build
	if other.Build.Language != "" {
		c.Build.Language = other.Build.Language
	}
	if len(other.Build.Orders) > 0 {
		c.Build.Orders = other.Build.Orders
	}
	if other.Build.Layout != "" {
		c.Build.Layout = other.Build.Layout
	}

	// Vocabulary
	if other.Vocabulary.Dir != "" {
		c.Vocabulary.Dir = other.Vocabulary.Dir
	}
	if other.Vocabulary.Registry != "" {
		c.Vocabulary.Registry = other.Vocabulary.Registry
	}
	if other.Vocabulary.Debounce != 0 {
		c.Vocabulary.Debounce = other.Vocabulary.Debounce
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Profile != "" {
		c.Export.Profile = other.Export.Profile
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Stream != "" {
		c.NATS.Stream = other.NATS.Stream
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.NATS.Bucket != "" {
		c.NATS.Bucket = other.NATS.Bucket
	}
	if other.NATS.Timeout != 0 {
		c.NATS.Timeout = other.NATS.Timeout
	}

	// Storage
	if other.Storage.SQLitePath != "" {
		c.Storage.SQLitePath = other.Storage.SQLitePath
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
