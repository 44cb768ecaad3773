// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/models"
)

// rootOptions holds state shared by every subcommand.
type rootOptions struct {
	flags *config.Flags
	log   *logger.Logger
}

// loadConfig merges flags with the environment, the config file and defaults,
// and applies the configured log level.
func (o *rootOptions) loadConfig() (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(o.flags.Config())
	if err != nil {
		return nil, err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{log: logger.NewLogger("convsync")}

	cmd := &cobra.Command{
		Use:   "convsync",
		Short: "Conversation synchronization daemon",
		Long: `convsync keeps a local store of conversations in sync with a remote
messaging service and exposes a control API for local edits.`,
		SilenceUsage: true,
	}

	opts.flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newTokenCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// buildInfo reports "dev" for binaries built without version linker flags.
func buildInfo() models.AppBuildInfo {
	version := buildVersion
	if version == "" {
		version = "dev"
	}
	return models.NewAppBuildInfo(version, buildDate, buildCommit)
}
