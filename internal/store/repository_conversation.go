// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pukapp/convsync/models"
)

func (t *tx) FindConversationByRemoteID(ctx context.Context, remoteID string) (models.Conversation, error) {
	return t.findConversation(ctx, "remote_id", remoteID)
}

func (t *tx) FindConversationByLocalID(ctx context.Context, localID string) (models.Conversation, error) {
	return t.findConversation(ctx, "local_id", localID)
}

func (t *tx) FindConversationByPairKey(ctx context.Context, pairKey string) (models.Conversation, error) {
	return t.findConversation(ctx, "pair_key", pairKey)
}

func (t *tx) findConversation(ctx context.Context, column, value string) (models.Conversation, error) {
	if value == "" {
		return models.Conversation{}, ErrNotFound
	}

	query, args, err := buildSelectConversationQuery(t.builder, sq.Eq{column: value})
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conv, err := scanConversation(t.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrNotFound
	}
	if err != nil {
		t.logger.Err(err).
			Str("func", "*tx.findConversation").
			Str(column, value).
			Msg("failed to scan conversation row")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	convs := []models.Conversation{conv}
	if err := t.loadParticipants(ctx, convs); err != nil {
		return models.Conversation{}, err
	}

	return convs[0], nil
}

func (t *tx) ListDirtyConversations(ctx context.Context) ([]models.Conversation, error) {
	query, args, err := buildSelectDirtyConversationsQuery(t.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return t.queryConversations(ctx, query, args)
}

func (t *tx) ListConversations(ctx context.Context, limit int, afterLocalID string) ([]models.Conversation, error) {
	query, args, err := buildListConversationsQuery(t.builder, limit, afterLocalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return t.queryConversations(ctx, query, args)
}

func (t *tx) queryConversations(ctx context.Context, query string, args []any) ([]models.Conversation, error) {
	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		t.logger.Err(err).Str("func", "*tx.queryConversations").Msg("failed to query conversations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var convs []models.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			rows.Close()
			t.logger.Err(err).Str("func", "*tx.queryConversations").Msg("failed to scan conversation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		convs = append(convs, conv)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	// participants are read on the same connection, so the cursor must be closed first
	rows.Close()

	if err := t.loadParticipants(ctx, convs); err != nil {
		return nil, err
	}
	return convs, nil
}

func (t *tx) loadParticipants(ctx context.Context, convs []models.Conversation) error {
	if len(convs) == 0 {
		return nil
	}

	index := make(map[string]int, len(convs))
	ids := make([]string, 0, len(convs))
	for i := range convs {
		index[convs[i].LocalID] = i
		ids = append(ids, convs[i].LocalID)
	}

	query, args, err := buildSelectParticipantsQuery(t.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		t.logger.Err(err).Str("func", "*tx.loadParticipants").Msg("failed to query participants")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			convID   string
			position int
			p        models.Participant
		)
		if err := rows.Scan(&convID, &p.UserID, &position, &p.Active, &p.ChangedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[convID]; ok {
			convs[i].Participants = append(convs[i].Participants, p)
		}
	}

	return rows.Err()
}

func (t *tx) UpsertConversation(ctx context.Context, conv *models.Conversation) error {
	now := time.Now().UTC()
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = now
	}
	conv.UpdatedAt = now

	values, err := conversationValues(conv)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertConversationQuery(t.builder, values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := t.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrConversationExists, err)
		}
		t.logger.Err(err).
			Str("func", "*tx.UpsertConversation").
			Str("conversation_id", conv.LocalID).
			Msg("failed to upsert conversation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return t.replaceParticipants(ctx, conv)
}

func (t *tx) replaceParticipants(ctx context.Context, conv *models.Conversation) error {
	query, args, err := buildDeleteParticipantsQuery(t.builder, conv.LocalID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := t.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(conv.Participants) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(conv.Participants))
	for i, p := range conv.Participants {
		rows = append(rows, []any{conv.LocalID, p.UserID, i, p.Active, p.ChangedAt.UTC()})
	}

	query, args, err = buildInsertParticipantsQuery(t.builder, rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := t.ExecContext(ctx, query, args...); err != nil {
		t.logger.Err(err).
			Str("func", "*tx.replaceParticipants").
			Str("conversation_id", conv.LocalID).
			Msg("failed to insert participants")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(row rowScanner) (models.Conversation, error) {
	var (
		c             models.Conversation
		remoteID      sql.NullString
		pairKey       sql.NullString
		convType      string
		dirty         int64
		pendingAdd    string
		pendingRemove string
	)

	err := row.Scan(
		&c.LocalID,
		&remoteID,
		&convType,
		&c.Name,
		&c.Creator,
		&c.OtherUserID,
		&pairKey,
		&c.LastModified,
		&c.NameModified,
		&c.ArchivedModified,
		&c.Archived,
		&c.Left,
		&dirty,
		&pendingAdd,
		&pendingRemove,
		&c.NeedsRefetch,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return models.Conversation{}, err
	}

	if remoteID.Valid && remoteID.String != "" {
		id := remoteID.String
		c.RemoteID = &id
	}
	c.PairKey = pairKey.String
	c.Type = models.ConversationType(convType)
	c.Dirty = models.DirtyFields(dirty)

	if err := json.Unmarshal([]byte(pendingAdd), &c.PendingAdd); err != nil {
		return models.Conversation{}, fmt.Errorf("pending_add: %w", err)
	}
	if err := json.Unmarshal([]byte(pendingRemove), &c.PendingRemove); err != nil {
		return models.Conversation{}, fmt.Errorf("pending_remove: %w", err)
	}

	return c, nil
}

func conversationValues(c *models.Conversation) ([]any, error) {
	pendingAdd, err := marshalIDs(c.PendingAdd)
	if err != nil {
		return nil, err
	}
	pendingRemove, err := marshalIDs(c.PendingRemove)
	if err != nil {
		return nil, err
	}

	return []any{
		c.LocalID,
		nullString(c.RemoteIDString()),
		string(c.Type),
		c.Name,
		c.Creator,
		c.OtherUserID,
		nullString(c.PairKey),
		c.LastModified.UTC(),
		c.NameModified.UTC(),
		c.ArchivedModified.UTC(),
		c.Archived,
		c.Left,
		int64(c.Dirty),
		pendingAdd,
		pendingRemove,
		c.NeedsRefetch,
		c.CreatedAt.UTC(),
		c.UpdatedAt.UTC(),
	}, nil
}

func marshalIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("marshal ids: %w", err)
	}
	return string(b), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
