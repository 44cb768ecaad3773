// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pukapp/convsync/internal/client"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the sync daemon and the control API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				opts.log.Err(err).Msg("error getting configs")
				return err
			}
			opts.log.Debug().Any("config", cfg).Msg("received configs")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := client.NewApp(ctx, cfg, buildInfo(), opts.log)
			if err != nil {
				opts.log.Err(err).Msg("init app error")
				return err
			}

			if err = app.Run(ctx); err != nil {
				opts.log.Err(err).Msg("app run error")
				return err
			}
			return nil
		},
	}
}
