// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for convsync.
// It is populated by merging values from environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and key material of the running client.
	App App `envPrefix:"APP_"`

	// Storage holds the local entity store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for talking to the remote service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds tunables of the transcoder.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the control API listener settings.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a .json, .yaml or .yml file merged
	// on top of environment variables and flags.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// App holds identity and key material.
type App struct {
	// SelfUserID is the remote id of the user this client acts for.
	// Falls back to the "sub" claim of AccessToken.
	// Env: APP_SELF_USER_ID
	SelfUserID string `env:"SELF_USER_ID"`

	// SelfClientID is the device id of this client. Live events sent by
	// this device are skipped.
	// Env: APP_SELF_CLIENT_ID
	SelfClientID string `env:"SELF_CLIENT_ID"`

	// AccessToken is the bearer token presented to the remote service.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// HashKey signs control API tokens and request bodies.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenIssuer is the "iss" claim of control API tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// LogLevel is the minimum zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the local store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local database.
type DB struct {
	// Driver is either "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver specific data source name.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the remote service.
type Adapter struct {
	// HTTPAddress is the base URL of the REST API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// EventsAddress is the websocket URL of the notification stream.
	// Env: ADAPTER_EVENTS_ADDRESS
	EventsAddress string `env:"EVENTS_ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds transcoder tunables.
type Sync struct {
	// ConversationPageSize is the number of summaries requested per page
	// during slow sync.
	// Env: SYNC_CONVERSATION_PAGE_SIZE
	ConversationPageSize int `env:"CONVERSATION_PAGE_SIZE"`

	// PendingEventsPerConversation caps buffered events per unknown conversation.
	// Env: SYNC_PENDING_EVENTS_PER_CONVERSATION
	PendingEventsPerConversation int `env:"PENDING_EVENTS_PER_CONVERSATION"`

	// PendingConversations caps the number of unknown conversations with
	// buffered events.
	// Env: SYNC_PENDING_CONVERSATIONS
	PendingConversations int `env:"PENDING_CONVERSATIONS"`

	// IngressBufferSize caps live events held back until slow sync is done.
	// Env: SYNC_INGRESS_BUFFER_SIZE
	IngressBufferSize int `env:"INGRESS_BUFFER_SIZE"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SyncInterval is the period of the sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Server holds the control API settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags (flagCfg, may be nil)
//  3. Config file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still zero afterwards.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withFile().
		withDefaults().
		build()
}
