package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func watchCmd(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild graphs when vocabulary files change, serving Prometheus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Vocabulary.Dir == "" {
				return fmt.Errorf("watch needs a vocabulary directory (--vocab-dir or vocabulary.dir)")
			}
			if metricsAddr == "" {
				metricsAddr = a.cfg.Metrics.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := a.openCatalog()
			if err != nil {
				return err
			}
			// Warm the selected language so the first scrape has build metrics.
			if _, err := c.Get(ctx, a.language()); err != nil {
				a.logger.Warn("Initial build failed", "language", a.language(), "error", err)
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return c.Watch(ctx)
			})

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", a.metrics.Handler())
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           mux,
					ReadHeaderTimeout: 5 * time.Second,
				}
				g.Go(func() error {
					a.logger.Info("Serving metrics", "addr", metricsAddr)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("metrics server: %w", err)
					}
					return nil
				})
				g.Go(func() error {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					return srv.Shutdown(shutdownCtx)
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s (generation %s)\n", a.cfg.Vocabulary.Dir, c.Generation())
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}
