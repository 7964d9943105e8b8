// Package main provides the systematics binary entry point.
// It builds the twelve systems as graphs and serves them to files, NATS and
// Prometheus.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "systematics"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "The twelve systems as complete graphs",
		Long: `Systematics models the twelve systems, Monad to Dodecad, as complete graphs
of terms and connectives in one of several vocabularies.

It provides:
- Graph construction per order and language
- Queries, slices and summaries over built graphs
- RDF export with BFO/CCO/PROV-O alignment
- Publishing to the knowledge graph over NATS
- Snapshots in NATS KV or SQLite files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(a.flags.logLevel)
			slog.SetDefault(a.logger)
			return a.loadConfig(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.flags.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&a.flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVarP(&a.flags.language, "language", "l", "", "Vocabulary language (canonical, energy, values, society)")
	flags.StringVar(&a.flags.vocabDir, "vocab-dir", "", "Directory of vocabulary YAML files")
	flags.StringVar(&a.flags.registry, "registry", "", "Registry YAML file")
	flags.StringVar(&a.flags.layout, "layout", "", "Coordinate layout (regular, diagram)")

	cmd.AddCommand(
		buildCmd(a),
		summaryCmd(a),
		connectivesCmd(a),
		sliceCmd(a),
		queryCmd(a),
		exportCmd(a),
		publishCmd(a),
		snapshotCmd(a),
		watchCmd(a),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
