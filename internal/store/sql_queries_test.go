// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_upsertSuffix(t *testing.T) {
	got := upsertSuffix("id", []string{"id", "a", "b", "created"}, "created")
	assert.Equal(t, "ON CONFLICT (id) DO UPDATE SET a = excluded.a, b = excluded.b", got)
}

func Test_buildSelectConversationQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "sqlite", builder: questionBuilder, placeholder: "remote_id = ?"},
		{name: "postgres", builder: dollarBuilder, placeholder: "remote_id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectConversationQuery(tt.builder, sq.Eq{"remote_id": "r1"})
			require.NoError(t, err)

			assert.Contains(t, query, tt.placeholder)
			assert.Contains(t, strings.ToLower(query), "from conversations")
			assert.Equal(t, []any{"r1"}, args)
			for _, c := range conversationColumns {
				assert.Contains(t, query, c)
			}
		})
	}
}

func Test_buildListConversationsQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		after     string
		wantArgs  []any
		wantParts []string
		noParts   []string
	}{
		{
			name:      "first page",
			limit:     10,
			wantParts: []string{"ORDER BY local_id", "LIMIT 10"},
			noParts:   []string{"WHERE"},
		},
		{
			name:      "after cursor",
			limit:     5,
			after:     "l-9",
			wantArgs:  []any{"l-9"},
			wantParts: []string{"WHERE local_id > $1", "LIMIT 5"},
		},
		{
			name:    "unbounded",
			noParts: []string{"LIMIT", "WHERE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListConversationsQuery(dollarBuilder, tt.limit, tt.after)
			require.NoError(t, err)

			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
			for _, p := range tt.wantParts {
				assert.Contains(t, query, p)
			}
			for _, p := range tt.noParts {
				assert.NotContains(t, query, p)
			}
		})
	}
}

func Test_buildUpsertConversationQuery_KeepsCreatedAt(t *testing.T) {
	values := make([]any, len(conversationColumns))
	query, args, err := buildUpsertConversationQuery(dollarBuilder, values)
	require.NoError(t, err)

	assert.Len(t, args, len(conversationColumns))
	assert.Contains(t, query, "ON CONFLICT (local_id) DO UPDATE SET")
	assert.Contains(t, query, "updated_at = excluded.updated_at")
	assert.NotContains(t, query, "created_at = excluded.created_at")
	assert.NotContains(t, query, "local_id = excluded.local_id")
}

func Test_buildInsertParticipantsQuery_MultiRow(t *testing.T) {
	at := time.Unix(1, 0).UTC()
	rows := [][]any{
		{"c1", "alice", 0, true, at},
		{"c1", "bob", 1, false, at},
	}

	query, args, err := buildInsertParticipantsQuery(questionBuilder, rows)
	require.NoError(t, err)

	assert.Len(t, args, 10)
	assert.Equal(t, 2, strings.Count(query, "(?,?,?,?,?)"))
}

func Test_buildSelectParticipantsQuery_In(t *testing.T) {
	query, args, err := buildSelectParticipantsQuery(dollarBuilder, []string{"a", "b"})
	require.NoError(t, err)

	assert.Contains(t, query, "conversation_id IN ($1,$2)")
	assert.Equal(t, []any{"a", "b"}, args)
}

func Test_buildMarkEventAppliedQuery(t *testing.T) {
	at := time.Unix(5, 0).UTC()
	query, args, err := buildMarkEventAppliedQuery(questionBuilder, "k", "user.connection", at)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO applied_events")
	assert.Contains(t, query, "ON CONFLICT (event_key) DO NOTHING")
	assert.Equal(t, []any{"k", "user.connection", at}, args)
}

func Test_buildCursorQueries(t *testing.T) {
	query, args, err := buildUpsertCursorQuery(dollarBuilder, "conversations", "abc", time.Time{})
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")
	assert.Len(t, args, 3)

	query, args, err = buildDeleteCursorQuery(dollarBuilder, "conversations")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sync_cursors WHERE name = $1", query)
	assert.Equal(t, []any{"conversations"}, args)
}
