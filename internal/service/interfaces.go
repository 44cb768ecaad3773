// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the conversation synchronization core.
//
// The [Transcoder] turns remote payloads into local conversation mutations
// and local mutations into outgoing requests. It owns no goroutine and no
// timer: every entry point is one bounded unit of work against the store,
// and the [SyncJob] drives it from the outside. [PhaseMachine] tracks the
// synchronization phase that gates what the transcoder accepts.
package service

import (
	"context"
	"time"

	"github.com/pukapp/convsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncStatus reports the current synchronization phase.
type SyncStatus interface {
	CurrentPhase() models.Phase
}

// PhaseController is the status component as driven by the sync job.
type PhaseController interface {
	SyncStatus
	BeginSlowSync() error
	CompleteSlowSync() error
	MarkSynced() error
	MarkPending() error
	Fail(err error)
}

// NotificationRelay receives every applied change.
// Notify must not block.
type NotificationRelay interface {
	Notify(change models.AppliedChange)
}

// DiffStrategy decides which remote operations a dirty conversation needs,
// in the order they must be sent.
type DiffStrategy interface {
	Operations(conv models.Conversation) []models.Operation
}

// IDGenerator produces local identifiers.
type IDGenerator interface {
	Generate() string
}

// Syncer is the contract of the transcoder the sync job drives.
type Syncer interface {
	// SlowSync fetches and applies the next page of the remote listing.
	SlowSync(ctx context.Context) (done bool, err error)

	// GoLive runs transition, then applies the live events held back during
	// slow sync before any newer live event.
	GoLive(ctx context.Context, transition func() error) (int, error)

	PendingRequests(ctx context.Context) ([]models.OutgoingRequest, error)
	RequestSucceeded(ctx context.Context, req models.OutgoingRequest, result models.RequestResult) error
	RequestFailed(ctx context.Context, req models.OutgoingRequest, reqErr error) error

	// RefetchTargets returns remote ids of conversations whose last
	// request was rejected as stale.
	RefetchTargets(ctx context.Context) ([]string, error)
	ApplyRefetched(ctx context.Context, summary models.ConversationSummary) error

	Stats(ctx context.Context) (models.SyncStatusResponse, error)
}

// EventProcessor accepts live events.
type EventProcessor interface {
	ProcessEvents(ctx context.Context, events []models.SyncEvent, ignoreBuffer bool) ([]models.AppliedChange, error)
}

// ConversationEditor applies local user edits. Every edit only marks the
// conversation dirty; the remote side learns about it through
// [Syncer.PendingRequests].
type ConversationEditor interface {
	CreateGroup(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error)
	Rename(ctx context.Context, localID, name string) (models.Conversation, error)
	AddMembers(ctx context.Context, localID string, userIDs []string) (models.Conversation, error)
	RemoveMembers(ctx context.Context, localID string, userIDs []string) (models.Conversation, error)
	SetArchived(ctx context.Context, localID string, archived bool) (models.Conversation, error)

	Get(ctx context.Context, localID string) (models.Conversation, error)
	List(ctx context.Context, limit int, afterLocalID string) ([]models.Conversation, error)
}

// SyncJob runs the transcoder periodically.
type SyncJob interface {
	// Start launches the background loop. Any running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit.
	Stop()

	// Trigger asks the loop for an immediate run. It never blocks.
	Trigger()

	// RunOnce performs a single synchronization pass.
	RunOnce(ctx context.Context) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
