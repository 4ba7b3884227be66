package main

import (
	"github.com/spf13/cobra"

	"github.com/srgjo27/venue_booking/internal/platform/database"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			db, err := database.NewPostgresDB(cmd.Context(), cfg.Postgres.Database(), log)
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				if err := database.MigrateDown(cmd.Context(), db); err != nil {
					return err
				}
				log.Info("rolled back one migration")
				return nil
			}

			if err := database.MigrateUp(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")
	return cmd
}
