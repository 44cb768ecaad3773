// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pukapp/convsync/models"
)

// FindUser returns [ErrNotFound] when the user was never linked.
func (t *tx) FindUser(ctx context.Context, remoteID string) (models.User, error) {
	query, args, err := buildSelectUserQuery(t.builder, remoteID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user   models.User
		status string
	)
	err = t.QueryRowContext(ctx, query, args...).
		Scan(&user.RemoteID, &user.Name, &user.Handle, &status, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*tx.FindUser").Str("user_id", remoteID).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.ConnectionStatus = models.ConnectionStatus(status)

	return user, nil
}

// UpsertUser inserts user or replaces the stored attributes.
func (t *tx) UpsertUser(ctx context.Context, user models.User) error {
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = time.Now()
	}

	query, args, err := buildUpsertUserQuery(t.builder, []any{
		user.RemoteID,
		user.Name,
		user.Handle,
		string(user.ConnectionStatus),
		user.UpdatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := t.ExecContext(ctx, query, args...); err != nil {
		t.logger.Err(err).Str("func", "*tx.UpsertUser").Str("user_id", user.RemoteID).Msg("failed to upsert user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
