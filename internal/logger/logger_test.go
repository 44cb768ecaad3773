// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := NewLogger("convsync")
	out := l.Output(&buf)

	// Act
	out.Info().Str("conversation_id", "local-1").Msg("slow sync completed")

	// Assert
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "convsync", entry["role"])
	assert.Equal(t, "local-1", entry["conversation_id"])
	assert.Equal(t, "slow sync completed", entry["message"])
	assert.NotEmpty(t, entry["time"])
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop(t *testing.T) {
	l := Nop()

	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "sync").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("child")

	assert.NotSame(t, parent, child)
	assert.Equal(t, "sync", decodeEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("scoped")

	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest("GET", "/api/sync/status", nil)
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("request")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.WithFields("conversation_id", "c-1", "phase", "slow_sync", "dangling").Info().Msg("fields")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "c-1", entry["conversation_id"])
	assert.Equal(t, "slow_sync", entry["phase"])
	_, hasDangling := entry["dangling"]
	assert.False(t, hasDangling)
}

func TestForContext(t *testing.T) {
	var own, attached bytes.Buffer
	l := &Logger{zerolog.New(&own)}

	l.ForContext(context.Background()).Info().Msg("own")
	assert.NotEmpty(t, own.String())

	zl := zerolog.New(&attached)
	ctx := zl.WithContext(context.Background())
	l.ForContext(ctx).Info().Msg("attached")
	assert.Contains(t, attached.String(), "attached")
}
