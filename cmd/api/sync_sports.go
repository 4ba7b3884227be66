package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncSportsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-sports",
		Short: "Import the external sport catalog once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Sports.FeedURL == "" {
				return errors.New("SPORTS_FEED_URL is not set")
			}
			log := newLogger(cfg)

			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.sports.ImportSports(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d sports\n", n)
			return nil
		},
	}
}
