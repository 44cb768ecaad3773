// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	p := writeTempConfig(t, "config.json", `{
		"app": {"self_user_id": "self", "hash_key": "hash"},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://localhost/db"}},
		"adapter": {"http_address": "https://remote", "request_timeout": "30s"},
		"sync": {"conversation_page_size": 2},
		"workers": {"sync_interval": 1000000000},
		"server": {"http_address": "localhost:8081"}
	}`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "self", cfg.App.SelfUserID)
	assert.Equal(t, "hash", cfg.App.HashKey)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://remote", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Sync.ConversationPageSize)
	assert.Equal(t, time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeTempConfig(t, "config.yaml", `
app:
  self_client_id: device
adapter:
  events_address: wss://remote/await
  request_timeout: 2s
workers:
  sync_interval: 1m
`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "device", cfg.App.SelfClientID)
	assert.Equal(t, "wss://remote/await", cfg.Adapter.EventsAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		body  string
		isErr error
	}{
		{"malformed json", "bad.json", "{not valid json", nil},
		{"malformed yaml", "bad.yaml", "app: [", nil},
		{"bad duration", "bad.json", `{"workers":{"sync_interval":"soon"}}`, nil},
		{"unsupported extension", "config.toml", "a = 1", ErrUnsupportedConfigFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeTempConfig(t, tt.file, tt.body))
			require.Error(t, err)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
