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

func (t *tx) MarkEventApplied(ctx context.Context, key string, eventType models.EventType) (bool, error) {
	query, args, err := buildMarkEventAppliedQuery(t.builder, key, string(eventType), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := t.ExecContext(ctx, query, args...)
	if err != nil {
		t.logger.Err(err).Str("func", "*tx.MarkEventApplied").Str("event_key", key).Msg("failed to record applied event")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}

func (t *tx) GetCursor(ctx context.Context, name string) (*string, error) {
	query, args, err := buildSelectCursorQuery(t.builder, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = t.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*tx.GetCursor").Str("cursor", name).Msg("failed to read cursor")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return &value, nil
}

func (t *tx) SetCursor(ctx context.Context, name string, cursor *string) error {
	var (
		query string
		args  []any
		err   error
	)
	if cursor == nil {
		query, args, err = buildDeleteCursorQuery(t.builder, name)
	} else {
		query, args, err = buildUpsertCursorQuery(t.builder, name, *cursor, time.Now().UTC())
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := t.ExecContext(ctx, query, args...); err != nil {
		t.logger.Err(err).Str("func", "*tx.SetCursor").Str("cursor", name).Msg("failed to store cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
