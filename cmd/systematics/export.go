package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/systematics/export"
	"github.com/c360studio/systematics/publish"
	"github.com/c360studio/systematics/storage/kvstore"
	"github.com/c360studio/systematics/storage/sqlitestore"
)

func exportCmd(a *app) *cobra.Command {
	var (
		format  string
		profile string
		out     string
		orders  []int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a graph as RDF (turtle, ntriples, jsonld)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Export.Format
				// An output file extension picks the format when none is given.
				if out != "" && !cmd.Flags().Changed("format") {
					if ext := filepath.Ext(out); ext != "" {
						format = ext
					}
				}
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if profile == "" {
				profile = a.cfg.Export.Profile
			}
			p, err := export.ParseProfile(profile)
			if err != nil {
				return err
			}

			g, err := a.graph(cmd.Context(), orders)
			if err != nil {
				return err
			}
			rdf, err := export.Graph(g, f, p)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), rdf)
				return err
			}
			if err := os.WriteFile(out, []byte(rdf), 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("Exported graph", "path", out, "format", f, "profile", p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Ontology profile (minimal, bfo, cco)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().IntSliceVar(&orders, "orders", nil, "Build only these orders")
	return cmd
}

func publishCmd(a *app) *cobra.Command {
	var (
		profile string
		orders  []int
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a graph to the knowledge graph ingestion stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if profile == "" {
				profile = a.cfg.Export.Profile
			}
			p, err := export.ParseProfile(profile)
			if err != nil {
				return err
			}

			g, err := a.graph(ctx, orders)
			if err != nil {
				return err
			}

			client, err := a.connectToNATS(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			js, err := client.JetStream()
			if err != nil {
				return fmt.Errorf("get JetStream context: %w", err)
			}
			if err := a.ensureStream(ctx, js); err != nil {
				return err
			}

			n, err := publish.New(client,
				publish.WithSubject(a.cfg.NATS.Subject),
				publish.WithProfile(p),
				publish.WithMetrics(a.metrics),
				publish.WithLogger(a.logger),
			).Publish(ctx, g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d entities to %s\n", n, a.cfg.NATS.Subject)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Ontology profile for type triples (minimal, bfo, cco)")
	cmd.Flags().IntSliceVar(&orders, "orders", nil, "Build only these orders")
	return cmd
}

func snapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and load graph snapshots in NATS KV or SQLite files",
	}
	cmd.AddCommand(snapshotSaveCmd(a), snapshotLoadCmd(a), snapshotListCmd(a))
	return cmd
}

func snapshotSaveCmd(a *app) *cobra.Command {
	var (
		file   string
		orders []int
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a snapshot of a graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := a.graph(ctx, orders)
			if err != nil {
				return err
			}

			if file != "" {
				if err := sqlitestore.Write(ctx, file, g); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", file)
				return nil
			}

			store, closeFn, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			id, err := store.Save(ctx, g)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Write to this SQLite file instead of NATS KV")
	cmd.Flags().IntSliceVar(&orders, "orders", nil, "Build only these orders")
	return cmd
}

func snapshotLoadCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load [snapshot-id]",
		Short: "Load a snapshot, verify it and print its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if file != "" {
				g, err := sqlitestore.Load(ctx, file)
				if err != nil {
					return err
				}
				return writeJSON(out, g.Stats())
			}
			if len(args) == 0 {
				return fmt.Errorf("a snapshot ID or --file is required")
			}
			id, err := kvstore.ParseSnapshotID(args[0])
			if err != nil {
				return err
			}

			store, closeFn, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			g, err := store.Restore(ctx, id)
			if err != nil {
				return err
			}
			return writeJSON(out, g.Stats())
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Read from this SQLite file instead of NATS KV")
	return cmd
}

func snapshotListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots stored in NATS KV",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			infos, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			t := newTable("ID", "LANGUAGE", "ORDERS", "ENTRIES", "LINKS", "CREATED")
			for _, info := range infos {
				orders := make([]string, len(info.Orders))
				for i, n := range info.Orders {
					orders[i] = fmt.Sprint(n)
				}
				t.add(string(info.ID), string(info.Language), strings.Join(orders, ","),
					fmt.Sprint(info.Entries), fmt.Sprint(info.Links), info.CreatedAt.Format(time.RFC3339))
			}
			t.render(cmd.OutOrStdout())
			return nil
		},
	}
}

// openSnapshots connects to NATS and opens the snapshot bucket.
func (a *app) openSnapshots(cmd *cobra.Command) (*kvstore.Store, func(), error) {
	ctx := cmd.Context()
	client, err := a.connectToNATS(ctx)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Close(ctx) }

	js, err := client.JetStream()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("get JetStream context: %w", err)
	}
	store, err := kvstore.NewStore(ctx, js, kvstore.WithBucket(a.cfg.NATS.Bucket))
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}
