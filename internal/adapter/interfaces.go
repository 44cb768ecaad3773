// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the remote
// conversation service.
//
// [ServerAdapter] covers the conversations REST resource rooted at
// [ConversationsPath]; [EventStream] delivers live notifications over a
// websocket. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/pukapp/convsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the conversations resource.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// ListConversations fetches up to size conversation summaries starting
	// at cursor; a nil cursor starts from the beginning.
	ListConversations(ctx context.Context, size int, cursor *string) (models.ConversationPage, error)

	// GetConversation fetches a single conversation summary.
	GetConversation(ctx context.Context, remoteID string) (models.ConversationSummary, error)

	// CreateConversation creates a conversation and returns it as stored
	// remotely, including the assigned id.
	CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.ConversationSummary, error)

	UpdateConversationName(ctx context.Context, remoteID, name string) (models.RequestResult, error)
	AddParticipants(ctx context.Context, remoteID string, userIDs []string) (models.RequestResult, error)
	RemoveParticipant(ctx context.Context, remoteID, userID string) (models.RequestResult, error)
	SetArchived(ctx context.Context, remoteID string, archived bool) (models.RequestResult, error)

	// Do sends a prepared outgoing request. For creates the result carries
	// the assigned remote id.
	Do(ctx context.Context, req models.OutgoingRequest) (models.RequestResult, error)
}

// EventStream delivers live notifications.
type EventStream interface {
	// Run connects and passes every decoded notification to handle until
	// ctx is cancelled or the connection drops. A handle error stops Run.
	Run(ctx context.Context, handle func(ctx context.Context, events []models.SyncEvent) error) error
}
