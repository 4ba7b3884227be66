package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/srgjo27/venue_booking/internal/platform/config"
	"github.com/srgjo27/venue_booking/internal/platform/logger"
)

type rootOptions struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "venuebook",
		Short:         "Venue slot booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment")

	serve := newServeCmd(opts)
	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newSyncSportsCmd(opts))

	// Running the bare binary starts the server.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func (o *rootOptions) load() (config.App, error) {
	return config.Load(o.envFile)
}

func newLogger(cfg config.App) *slog.Logger {
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}
