package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/srgjo27/venue_booking/internal/adapter/handler"
	"github.com/srgjo27/venue_booking/internal/worker"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("migrate") {
				cfg.MigrateOnStart = migrateUp
			}
			log := newLogger(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if cfg.Sports.SyncOnStart {
				a.syncSports(ctx)
			}

			if cfg.Audit.Interval > 0 {
				audit := worker.NewAuditWorker(a.bookings, a.metrics, cfg.Audit.Interval, log)
				go audit.Run(ctx)
			}

			h := handler.NewHandler(a.venues, a.slots, a.bookings, a.sports, cfg.Retry.Strategy(), a.metrics, log)

			server := &http.Server{
				Addr:         cfg.HTTP.Addr,
				Handler:      handler.NewRouter(cfg.HTTP.GinMode, h, a.metrics, log),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
				IdleTimeout:  cfg.HTTP.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("server starting", slog.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}

			log.Info("server exited")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "run database migrations on startup")
	return cmd
}
