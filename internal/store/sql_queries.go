// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	tableConversations = "conversations"
	tableParticipants  = "conversation_participants"
	tableUsers         = "users"
	tableAppliedEvents = "applied_events"
	tableSyncCursors   = "sync_cursors"
)

var conversationColumns = []string{
	"local_id",
	"remote_id",
	"type",
	"name",
	"creator",
	"other_user_id",
	"pair_key",
	"last_modified",
	"name_modified",
	"archived_modified",
	"archived",
	"has_left",
	"dirty",
	"pending_add",
	"pending_remove",
	"needs_refetch",
	"created_at",
	"updated_at",
}

var participantColumns = []string{"conversation_id", "user_id", "position", "active", "changed_at"}

var userColumns = []string{"remote_id", "name", "handle", "connection_status", "updated_at"}

// upsertSuffix builds "ON CONFLICT (key) DO UPDATE SET c = excluded.c, ..."
// for every column except key and the immutable ones.
func upsertSuffix(key string, columns []string, immutable ...string) string {
	skip := map[string]bool{key: true}
	for _, c := range immutable {
		skip[c] = true
	}

	set := make([]string, 0, len(columns))
	for _, c := range columns {
		if skip[c] {
			continue
		}
		set = append(set, c+" = excluded."+c)
	}
	return "ON CONFLICT (" + key + ") DO UPDATE SET " + strings.Join(set, ", ")
}

func buildSelectConversationQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(conversationColumns...).
		From(tableConversations).
		Where(where).
		ToSql()
}

func buildSelectDirtyConversationsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(conversationColumns...).
		From(tableConversations).
		Where(sq.NotEq{"dirty": 0}).
		OrderBy("created_at", "local_id").
		ToSql()
}

func buildListConversationsQuery(b sq.StatementBuilderType, limit int, afterLocalID string) (string, []any, error) {
	q := b.Select(conversationColumns...).
		From(tableConversations).
		OrderBy("local_id")
	if afterLocalID != "" {
		q = q.Where(sq.Gt{"local_id": afterLocalID})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildUpsertConversationQuery(b sq.StatementBuilderType, values []any) (string, []any, error) {
	return b.Insert(tableConversations).
		Columns(conversationColumns...).
		Values(values...).
		Suffix(upsertSuffix("local_id", conversationColumns, "created_at")).
		ToSql()
}

func buildSelectParticipantsQuery(b sq.StatementBuilderType, conversationIDs []string) (string, []any, error) {
	return b.Select(participantColumns...).
		From(tableParticipants).
		Where(sq.Eq{"conversation_id": conversationIDs}).
		OrderBy("conversation_id", "position").
		ToSql()
}

func buildDeleteParticipantsQuery(b sq.StatementBuilderType, conversationID string) (string, []any, error) {
	return b.Delete(tableParticipants).
		Where(sq.Eq{"conversation_id": conversationID}).
		ToSql()
}

func buildInsertParticipantsQuery(b sq.StatementBuilderType, rows [][]any) (string, []any, error) {
	q := b.Insert(tableParticipants).Columns(participantColumns...)
	for _, r := range rows {
		q = q.Values(r...)
	}
	return q.ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, remoteID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"remote_id": remoteID}).
		ToSql()
}

func buildUpsertUserQuery(b sq.StatementBuilderType, values []any) (string, []any, error) {
	return b.Insert(tableUsers).
		Columns(userColumns...).
		Values(values...).
		Suffix(upsertSuffix("remote_id", userColumns)).
		ToSql()
}

func buildMarkEventAppliedQuery(b sq.StatementBuilderType, key, eventType string, at any) (string, []any, error) {
	return b.Insert(tableAppliedEvents).
		Columns("event_key", "event_type", "applied_at").
		Values(key, eventType, at).
		Suffix("ON CONFLICT (event_key) DO NOTHING").
		ToSql()
}

func buildSelectCursorQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("value").
		From(tableSyncCursors).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertCursorQuery(b sq.StatementBuilderType, name, value string, at any) (string, []any, error) {
	return b.Insert(tableSyncCursors).
		Columns("name", "value", "updated_at").
		Values(name, value, at).
		Suffix(upsertSuffix("name", []string{"name", "value", "updated_at"})).
		ToSql()
}

func buildDeleteCursorQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Delete(tableSyncCursors).
		Where(sq.Eq{"name": name}).
		ToSql()
}
