// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "convsync",
			LogLevel:    "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "convsync.db",
			},
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Sync: Sync{
			ConversationPageSize:         100,
			PendingEventsPerConversation: 64,
			PendingConversations:         1024,
			IngressBufferSize:            4096,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8081",
			RequestTimeout: 15 * time.Second,
		},
	}
}
