// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pukapp/convsync/internal/utils"
)

var errNoHashKey = errors.New("hash key is not configured")

const defaultTokenTTL = 24 * time.Hour

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the control API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.App.HashKey == "" {
				return errNoHashKey
			}
			if subject == "" {
				subject = cfg.App.SelfUserID
			}

			token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, subject, ttl, cfg.App.HashKey)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (defaults to the self user id)")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "Token lifetime")

	return cmd
}
