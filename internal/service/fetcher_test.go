// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/models"
)

func summary(id string, sec int64, members ...string) models.ConversationSummary {
	return models.ConversationSummary{
		ID:           id,
		Type:         0,
		Name:         "conv " + id,
		Creator:      members[0],
		Members:      members,
		LastModified: ts(sec),
	}
}

func (e *testEnv) cursor(t *testing.T) *string {
	t.Helper()
	var c *string
	err := e.db.InTx(context.Background(), func(ctx context.Context, tx store.Tx) error {
		var err error
		c, err = tx.GetCursor(ctx, conversationsCursor)
		return err
	})
	require.NoError(t, err)
	return c
}

func TestSlowSync_TwoPages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.phases.BeginSlowSync())

	gomock.InOrder(
		env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Nil()).Return(models.ConversationPage{
			Conversations: []models.ConversationSummary{summary("A", 10, selfUser), summary("B", 11, selfUser, "bob")},
			NextCursor:    strPtr("page-2"),
		}, nil),
		env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Eq(strPtr("page-2"))).Return(models.ConversationPage{
			Conversations: []models.ConversationSummary{summary("C", 12, "carol", selfUser)},
		}, nil),
	)

	done, err := env.tr.SlowSync(ctx)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, strPtr("page-2"), env.cursor(t))

	done, err = env.tr.SlowSync(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	for _, id := range []string{"A", "B", "C"} {
		conv := env.byRemote(t, id)
		assert.Equal(t, "conv "+id, conv.Name)
		assert.False(t, conv.IsDirty())
	}
	c := env.byRemote(t, "C")
	assert.ElementsMatch(t, []string{"carol", selfUser}, c.ActiveParticipants())
	assert.Nil(t, env.cursor(t))
	// page applications are not live changes
	assert.Empty(t, env.relay.all())
}

func TestSlowSync_ResumesFromCommittedCursor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.phases.BeginSlowSync())

	gomock.InOrder(
		env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Nil()).Return(models.ConversationPage{
			Conversations: []models.ConversationSummary{summary("A", 10, selfUser), summary("B", 11, selfUser)},
			NextCursor:    strPtr("page-2"),
		}, nil),
		env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Eq(strPtr("page-2"))).
			Return(models.ConversationPage{}, adapter.ErrServiceUnavailable),
		env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Eq(strPtr("page-2"))).Return(models.ConversationPage{
			Conversations: []models.ConversationSummary{summary("C", 12, selfUser)},
		}, nil),
	)

	_, err := env.tr.SlowSync(ctx)
	require.NoError(t, err)

	_, err = env.tr.SlowSync(ctx)
	require.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, strPtr("page-2"), env.cursor(t))
	assert.Len(t, env.all(t), 2)

	done, err := env.tr.SlowSync(ctx)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Len(t, env.all(t), 3)
}

func TestNextPage_WrongPhase(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tr.NextPage(context.Background(), 2, nil)

	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestNextPage_ReportsCreatedAndUpdated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.phases.BeginSlowSync())
	env.insert(t, group("known", "A", 5, selfUser, "bob"))

	env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Nil()).Return(models.ConversationPage{
		Conversations: []models.ConversationSummary{summary("A", 10, selfUser, "carol"), summary("B", 11, selfUser)},
	}, nil)

	res, err := env.tr.NextPage(ctx, 2, nil)

	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, []string{"known"}, res.Updated)
	assert.Equal(t, []string{"local-1"}, res.Created)

	a := env.byRemote(t, "A")
	assert.Equal(t, "conv A", a.Name)
	assert.ElementsMatch(t, []string{selfUser, "carol"}, a.ActiveParticipants())
	assert.Equal(t, ts(10), a.LastModified)
}

func TestNextPage_OlderSummaryDoesNotRegress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.phases.BeginSlowSync())
	env.insert(t, group("known", "A", 50, selfUser, "bob"))

	env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Nil()).Return(models.ConversationPage{
		Conversations: []models.ConversationSummary{summary("A", 10, selfUser)},
	}, nil)

	res, err := env.tr.NextPage(ctx, 2, nil)

	require.NoError(t, err)
	assert.Empty(t, res.Updated)
	a := env.byRemote(t, "A")
	assert.Equal(t, "group known", a.Name)
	assert.ElementsMatch(t, []string{selfUser, "bob"}, a.ActiveParticipants())
	assert.Equal(t, ts(50), a.LastModified)
}

func TestNextPage_LinksPairwiseByUserPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// connection seen before the listing, without a conversation id
	body := `{"connection":{"from":"self","to":"bob","status":"accepted","last_update":"1970-01-01T00:00:05Z"}}`
	_, err := env.tr.Apply(ctx, models.SyncEvent{ID: "c1", Type: models.EventUserConnection, Data: []byte(body), Raw: []byte(body)})
	require.NoError(t, err)

	require.NoError(t, env.phases.BeginSlowSync())
	pairwise := summary("r-bob", 10, selfUser, "bob")
	pairwise.Type = 2
	env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Nil()).Return(models.ConversationPage{
		Conversations: []models.ConversationSummary{pairwise},
	}, nil)

	res, err := env.tr.NextPage(ctx, 2, nil)

	require.NoError(t, err)
	assert.Empty(t, res.Created)
	require.Len(t, env.all(t), 1)
	conv := env.byRemote(t, "r-bob")
	assert.Equal(t, models.PairKey(selfUser, "bob"), conv.PairKey)
	assert.Equal(t, models.ConversationOneOnOne, conv.Type)
}

func TestNextPage_AdapterErrorsAreClassified(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "transport", err: adapter.ErrBadGateway, want: ErrTransport},
		{name: "decoding", err: adapter.ErrDecodingResponse, want: ErrDecoding},
		{name: "cancelled", err: context.Canceled, want: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			require.NoError(t, env.phases.BeginSlowSync())
			env.adapter.EXPECT().ListConversations(gomock.Any(), 2, gomock.Nil()).Return(models.ConversationPage{}, tt.err)

			_, err := env.tr.NextPage(context.Background(), 2, nil)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, env.cursor(t))
		})
	}
}

func TestRefetch_TargetsAndApply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stale := group("l1", "r1", 10, selfUser)
	stale.Name = "local"
	stale.MarkDirty(models.DirtyName)
	stale.NeedsRefetch = true
	env.insert(t, stale)

	noRemote := group("l2", "", 10, selfUser)
	noRemote.MarkDirty(models.DirtyCreate)
	noRemote.NeedsRefetch = true
	env.insert(t, noRemote)

	targets, err := env.tr.RefetchTargets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, targets)

	fresh := summary("r1", 5, selfUser, "bob")
	fresh.Archived = true
	require.NoError(t, env.tr.ApplyRefetched(ctx, fresh))

	conv := env.byRemote(t, "r1")
	assert.False(t, conv.NeedsRefetch)
	assert.Equal(t, "local", conv.Name)
	assert.True(t, conv.Dirty.Has(models.DirtyName))
	assert.True(t, conv.Archived)
	assert.ElementsMatch(t, []string{selfUser, "bob"}, conv.ActiveParticipants())

	targets, err = env.tr.RefetchTargets(ctx)
	require.NoError(t, err)
	assert.Empty(t, targets)
}
