// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
)

// NewStorage opens the database configured in cfg.DB and applies pending
// schema migrations.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storage...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
