// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/mock"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/models"
)

const (
	selfUser   = "self"
	selfClient = "client-self"
)

// seqIDs hands out local-1, local-2, ...
type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("local-%d", g.n.Add(1))
}

// recordingRelay collects every notified change.
type recordingRelay struct {
	mu      sync.Mutex
	changes []models.AppliedChange
}

func (r *recordingRelay) Notify(change models.AppliedChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
}

func (r *recordingRelay) all() []models.AppliedChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AppliedChange(nil), r.changes...)
}

type testEnv struct {
	tr      *Transcoder
	db      *store.DB
	adapter *mock.MockServerAdapter
	phases  *PhaseMachine
	relay   *recordingRelay
	clock   time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, err := store.NewConnect(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	env := &testEnv{
		db:      db,
		adapter: mock.NewMockServerAdapter(ctrl),
		phases:  NewPhaseMachine(logger.Nop()),
		relay:   &recordingRelay{},
		clock:   ts(1_000),
	}
	env.tr = NewTranscoder(
		db,
		env.adapter,
		env.phases,
		env.relay,
		config.App{SelfUserID: selfUser, SelfClientID: selfClient},
		config.Sync{
			ConversationPageSize:         2,
			PendingEventsPerConversation: 4,
			PendingConversations:         8,
			IngressBufferSize:            16,
		},
		logger.Nop(),
		WithIDGenerator(&seqIDs{}),
		WithClock(func() time.Time { return env.clock }),
	)
	return env
}

// live moves the phase machine to quick_sync.
func (e *testEnv) live(t *testing.T) {
	t.Helper()
	require.NoError(t, e.phases.BeginSlowSync())
	require.NoError(t, e.phases.CompleteSlowSync())
}

func (e *testEnv) insert(t *testing.T, conv models.Conversation) {
	t.Helper()
	err := e.db.InTx(context.Background(), func(ctx context.Context, tx store.Tx) error {
		return tx.UpsertConversation(ctx, &conv)
	})
	require.NoError(t, err)
}

func (e *testEnv) byRemote(t *testing.T, remoteID string) models.Conversation {
	t.Helper()
	var conv models.Conversation
	err := e.db.InTx(context.Background(), func(ctx context.Context, tx store.Tx) error {
		var err error
		conv, err = tx.FindConversationByRemoteID(ctx, remoteID)
		return err
	})
	require.NoError(t, err)
	return conv
}

func (e *testEnv) byLocal(t *testing.T, localID string) models.Conversation {
	t.Helper()
	var conv models.Conversation
	err := e.db.InTx(context.Background(), func(ctx context.Context, tx store.Tx) error {
		var err error
		conv, err = tx.FindConversationByLocalID(ctx, localID)
		return err
	})
	require.NoError(t, err)
	return conv
}

func (e *testEnv) all(t *testing.T) []models.Conversation {
	t.Helper()
	var convs []models.Conversation
	err := e.db.InTx(context.Background(), func(ctx context.Context, tx store.Tx) error {
		var err error
		convs, err = tx.ListConversations(ctx, 1000, "")
		return err
	})
	require.NoError(t, err)
	return convs
}

func ts(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

func group(localID, remoteID string, sec int64, members ...string) models.Conversation {
	conv := models.Conversation{
		LocalID:          localID,
		Type:             models.ConversationGroup,
		Name:             "group " + localID,
		LastModified:     ts(sec),
		NameModified:     ts(sec),
		ArchivedModified: ts(sec),
	}
	if remoteID != "" {
		conv.RemoteID = strPtr(remoteID)
	}
	for _, m := range members {
		conv.SetParticipant(m, true, ts(sec))
	}
	return conv
}

func serviceEvent(id, remoteID string, sec int64, body string) models.SyncEvent {
	return models.SyncEvent{
		ID:             id,
		Type:           models.EventServiceMessageAdd,
		ConversationID: remoteID,
		Time:           ts(sec),
		Data:           []byte(body),
		Raw:            []byte(body),
	}
}

func otrEvent(id, remoteID string, sec int64) models.SyncEvent {
	body := `{"sender":"client-other","recipient":"client-self"}`
	return models.SyncEvent{
		ID:             id,
		Type:           models.EventOTRMessageAdd,
		ConversationID: remoteID,
		SenderClientID: "client-other",
		Time:           ts(sec),
		Data:           []byte(body),
		Raw:            []byte(body),
	}
}

func connectionEvent(id, other, remoteID, status string, sec int64) models.SyncEvent {
	body := fmt.Sprintf(
		`{"connection":{"from":%q,"to":%q,"conversation":%q,"status":%q,"last_update":%q},"user":{"name":"Other"}}`,
		selfUser, other, remoteID, status, ts(sec).Format(time.RFC3339),
	)
	return models.SyncEvent{
		ID:   id,
		Type: models.EventUserConnection,
		Time: ts(sec),
		Data: []byte(body),
		Raw:  []byte(body),
	}
}

func TestNewTranscoder_Defaults(t *testing.T) {
	tr := NewTranscoder(nil, nil, NewPhaseMachine(logger.Nop()), nil, config.App{SelfUserID: selfUser}, config.Sync{ConversationPageSize: 10}, logger.Nop())

	assert.IsType(t, MinimalDiff{}, tr.diff)
	assert.NotNil(t, tr.ids)
	assert.Equal(t, 10, tr.pageSize)
	assert.Equal(t, selfUser, tr.selfUserID)
}

func TestTranscoder_Stats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dirty := group("l1", "r1", 10, selfUser)
	dirty.MarkDirty(models.DirtyName)
	env.insert(t, dirty)
	env.insert(t, group("l2", "r2", 10, selfUser))
	env.tr.ingress.push(otrEvent("e1", "r1", 11))
	env.tr.pending.add("r9", otrEvent("e2", "r9", 11))

	stats, err := env.tr.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.PhaseUnsynchronized, stats.Phase)
	assert.Equal(t, 1, stats.DirtyConversations)
	assert.Equal(t, 1, stats.QueuedEvents)
	assert.Equal(t, 1, stats.BufferedEvents)
	assert.Equal(t, 0, stats.InFlight)
}

func TestTranscoder_EnsureUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.db.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		require.NoError(t, env.tr.ensureUser(ctx, tx, "bob", "", ""))
		require.NoError(t, env.tr.ensureUser(ctx, tx, "bob", "Bob", models.ConnectionAccepted))
		// empty values never clear what is stored
		require.NoError(t, env.tr.ensureUser(ctx, tx, "bob", "", ""))
		require.NoError(t, env.tr.ensureUser(ctx, tx, "", "ignored", ""))

		u, err := tx.FindUser(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, "Bob", u.Name)
		assert.Equal(t, models.ConnectionAccepted, u.ConnectionStatus)
		return nil
	})
	require.NoError(t, err)
}
