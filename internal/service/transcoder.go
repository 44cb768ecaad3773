// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/internal/utils"
	"github.com/pukapp/convsync/models"
)

// conversationsCursor is the name of the persisted slow sync cursor.
const conversationsCursor = "conversations"

// Transcoder converts between remote payloads and local conversation state.
type Transcoder struct {
	store   store.Store
	adapter adapter.ServerAdapter
	status  SyncStatus
	relay   NotificationRelay
	diff    DiffStrategy
	ids     IDGenerator

	selfUserID   string
	selfClientID string
	pageSize     int

	pending  *pendingEvents
	ingress  *ingressQueue
	inflight *inflightTable

	// eventMu orders live event processing against ingress flushing.
	eventMu sync.Mutex

	now    func() time.Time
	logger *logger.Logger
}

// TranscoderOption customises a [Transcoder].
type TranscoderOption func(*Transcoder)

// WithDiffStrategy replaces [MinimalDiff].
func WithDiffStrategy(d DiffStrategy) TranscoderOption {
	return func(t *Transcoder) { t.diff = d }
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(g IDGenerator) TranscoderOption {
	return func(t *Transcoder) { t.ids = g }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TranscoderOption {
	return func(t *Transcoder) { t.now = now }
}

// NewTranscoder wires a transcoder. relay may be nil.
func NewTranscoder(
	st store.Store,
	serverAdapter adapter.ServerAdapter,
	status SyncStatus,
	relay NotificationRelay,
	appCfg config.App,
	syncCfg config.Sync,
	logger *logger.Logger,
	opts ...TranscoderOption,
) *Transcoder {
	t := &Transcoder{
		store:        st,
		adapter:      serverAdapter,
		status:       status,
		relay:        relay,
		diff:         MinimalDiff{},
		ids:          utils.NewUUIDGenerator(),
		selfUserID:   appCfg.SelfUserID,
		selfClientID: appCfg.SelfClientID,
		pageSize:     syncCfg.ConversationPageSize,
		pending:      newPendingEvents(syncCfg.PendingEventsPerConversation, syncCfg.PendingConversations),
		ingress:      newIngressQueue(syncCfg.IngressBufferSize),
		inflight:     newInflightTable(),
		now:          time.Now,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Stats implements [Syncer].
func (t *Transcoder) Stats(ctx context.Context) (models.SyncStatusResponse, error) {
	var dirty int
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		convs, err := tx.ListDirtyConversations(ctx)
		dirty = len(convs)
		return err
	})
	if err != nil {
		return models.SyncStatusResponse{}, err
	}

	return models.SyncStatusResponse{
		Phase:              t.status.CurrentPhase(),
		DirtyConversations: dirty,
		InFlight:           t.inflight.len(),
		BufferedEvents:     t.pending.len(),
		QueuedEvents:       t.ingress.len(),
	}, nil
}

func (t *Transcoder) notify(change models.AppliedChange) {
	if t.relay != nil && change.Applied() {
		t.relay.Notify(change)
	}
}

// replay applies the events parked for remoteID, oldest first. It must run
// after the unit of work that created the conversation has committed.
func (t *Transcoder) replay(ctx context.Context, remoteID string) {
	if remoteID == "" {
		return
	}
	events := t.pending.take(remoteID)
	if len(events) == 0 {
		return
	}

	log := t.logger.ForContext(ctx)
	log.Debug().
		Str("conversation_id", remoteID).
		Int("events", len(events)).
		Msg("replaying buffered events")

	for _, ev := range events {
		if _, err := t.Apply(ctx, ev); err != nil {
			log.Err(err).
				Str("func", "*Transcoder.replay").
				Str("conversation_id", remoteID).
				Str("event_type", string(ev.Type)).
				Msg("failed to replay buffered event")
		}
	}
}

// ensureUser links userID to a local user record, creating it when absent.
// name and status overwrite stored values when not empty.
func (t *Transcoder) ensureUser(ctx context.Context, tx store.Tx, userID, name string, status models.ConnectionStatus) error {
	if userID == "" {
		return nil
	}

	u, err := tx.FindUser(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		u = models.User{RemoteID: userID}
	case err != nil:
		return err
	default:
		if (name == "" || name == u.Name) && (status == "" || status == u.ConnectionStatus) {
			return nil
		}
	}

	if name != "" {
		u.Name = name
	}
	if status != "" {
		u.ConnectionStatus = status
	}
	u.UpdatedAt = t.now().UTC()

	if err := tx.UpsertUser(ctx, u); err != nil {
		return fmt.Errorf("link user %s: %w", userID, err)
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

var (
	_ Syncer          = (*Transcoder)(nil)
	_ EventProcessor  = (*Transcoder)(nil)
	_ PhaseController = (*PhaseMachine)(nil)
)
