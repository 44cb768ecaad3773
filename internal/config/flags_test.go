// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{"valid localhost", "localhost:8080", false, NetAddress{Host: "localhost", Port: 8080}},
		{"valid IPv4", "127.0.0.1:9090", false, NetAddress{Host: "127.0.0.1", Port: 9090}},
		{"all interfaces", ":8081", false, NetAddress{Port: 8081}},
		{"missing colon", "localhost8080", true, NetAddress{}},
		{"non-numeric port", "localhost:http", true, NetAddress{}},
		{"zero port", "localhost:0", true, NetAddress{}},
		{"port out of range", "localhost:70000", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestRegisterFlags_Parse(t *testing.T) {
	// Arrange
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)

	// Act
	err := fs.Parse([]string{
		"-a", "127.0.0.1:9000",
		"-c", "cfg.yaml",
		"-d", "file.db",
		"--driver", "sqlite3",
		"-r", "https://remote",
		"--events", "wss://remote/await",
		"--request-timeout", "3s",
		"--self-user", "self",
		"--self-client", "device",
		"--page-size", "10",
		"--sync-interval", "2s",
	})

	// Assert
	require.NoError(t, err)
	cfg := flags.Config()
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "cfg.yaml", cfg.FilePath)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "https://remote", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://remote/await", cfg.Adapter.EventsAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "self", cfg.App.SelfUserID)
	assert.Equal(t, "device", cfg.App.SelfClientID)
	assert.Equal(t, 10, cfg.Sync.ConversationPageSize)
	assert.Equal(t, 2*time.Second, cfg.Workers.SyncInterval)
}

func TestRegisterFlags_UnsetFlagsStayZero(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)

	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, flags.Config())
}

func TestRegisterFlags_BadAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"-a", "nowhere"}))
}
