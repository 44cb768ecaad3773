// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/pukapp/convsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store runs units of work against the local entity store.
//
// InTx serializes all callers: only one unit of work runs at a time, and
// its effects are committed atomically when fn returns nil and rolled back
// otherwise. fn must not call InTx again and must not wait on the network.
type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the view of the store inside a unit of work.
type Tx interface {
	// FindConversationByRemoteID returns [ErrNotFound] when no conversation
	// carries remoteID.
	FindConversationByRemoteID(ctx context.Context, remoteID string) (models.Conversation, error)
	FindConversationByLocalID(ctx context.Context, localID string) (models.Conversation, error)
	FindConversationByPairKey(ctx context.Context, pairKey string) (models.Conversation, error)

	// UpsertConversation inserts or replaces the conversation identified by
	// LocalID together with its participants. It returns
	// [ErrConversationExists] when another conversation already holds the
	// same RemoteID or PairKey.
	UpsertConversation(ctx context.Context, conv *models.Conversation) error

	// ListDirtyConversations returns conversations with unacknowledged
	// local changes, oldest first.
	ListDirtyConversations(ctx context.Context) ([]models.Conversation, error)

	// ListConversations returns up to limit conversations ordered by
	// LocalID, starting after afterLocalID.
	ListConversations(ctx context.Context, limit int, afterLocalID string) ([]models.Conversation, error)

	FindUser(ctx context.Context, remoteID string) (models.User, error)
	UpsertUser(ctx context.Context, user models.User) error

	// MarkEventApplied records key in the applied-event ledger. It reports
	// false when the key was already recorded.
	MarkEventApplied(ctx context.Context, key string, eventType models.EventType) (bool, error)

	// GetCursor returns the stored cursor or nil.
	GetCursor(ctx context.Context, name string) (*string, error)
	// SetCursor stores cursor under name; nil clears it.
	SetCursor(ctx context.Context, name string, cursor *string) error
}
