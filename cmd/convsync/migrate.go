// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/pukapp/convsync/internal/store"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			db, err := store.NewStorage(cmd.Context(), cfg.Storage, opts.log)
			if err != nil {
				opts.log.Err(err).Msg("migration failed")
				return err
			}
			defer db.Close()

			opts.log.Info().Str("driver", cfg.Storage.DB.Driver).Msg("database is up to date")
			return nil
		},
	}
}
