// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/models"
)

// ResolveOneOnOne finds or creates the pairwise conversation described by a
// connection payload. Repeated and concurrent calls for the same user pair
// resolve to the same conversation. The type and timestamp are applied only
// when ts is newer than what is stored.
func (t *Transcoder) ResolveOneOnOne(ctx context.Context, payload models.ConnectionPayload, convType models.ConversationType, ts time.Time) (models.Conversation, error) {
	var (
		conv    models.Conversation
		created bool
	)
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		conv, created, err = t.resolveOneOnOne(ctx, tx, payload, convType, ts)
		return err
	})
	if err != nil {
		return models.Conversation{}, err
	}

	if created {
		t.notify(models.AppliedChange{
			Kind:                 models.ChangeCreated,
			EventType:            models.EventUserConnection,
			ConversationLocalID:  conv.LocalID,
			ConversationRemoteID: conv.RemoteIDString(),
			Time:                 ts,
		})
	}
	t.replay(ctx, conv.RemoteIDString())

	return conv, nil
}

// resolveOneOnOne runs inside a unit of work. It reports whether the
// conversation was created.
func (t *Transcoder) resolveOneOnOne(ctx context.Context, tx store.Tx, payload models.ConnectionPayload, convType models.ConversationType, ts time.Time) (models.Conversation, bool, error) {
	other := payload.OtherUserID(t.selfUserID)
	if other == "" {
		return models.Conversation{}, false, fmt.Errorf("%w: connection %s -> %s does not involve self user", ErrDecoding, payload.From, payload.To)
	}
	pairKey := models.PairKey(t.selfUserID, other)

	if err := t.ensureUser(ctx, tx, other, payload.UserName, payload.Status); err != nil {
		return models.Conversation{}, false, err
	}

	conv, err := tx.FindConversationByPairKey(ctx, pairKey)
	if errors.Is(err, store.ErrNotFound) && payload.ConversationID != "" {
		conv, err = tx.FindConversationByRemoteID(ctx, payload.ConversationID)
		if err == nil {
			conv.PairKey = pairKey
			conv.OtherUserID = other
		}
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		conv = models.Conversation{
			LocalID:          t.ids.Generate(),
			Type:             convType,
			Creator:          payload.From,
			OtherUserID:      other,
			PairKey:          pairKey,
			LastModified:     ts,
			NameModified:     ts,
			ArchivedModified: ts,
		}
		if payload.ConversationID != "" {
			conv.RemoteID = strPtr(payload.ConversationID)
		}
		conv.SetParticipant(t.selfUserID, true, ts)
		conv.SetParticipant(other, true, ts)

		if err := tx.UpsertConversation(ctx, &conv); err != nil {
			return models.Conversation{}, false, err
		}
		t.logger.ForContext(ctx).Debug().
			Str("conversation_id", conv.LocalID).
			Str("pair_key", pairKey).
			Msg("created pairwise conversation")
		return conv, true, nil

	case err != nil:
		return models.Conversation{}, false, err
	}

	if ts.After(conv.LastModified) {
		conv.Type = convType
		conv.LastModified = ts
	}
	if !conv.HasRemoteID() && payload.ConversationID != "" {
		conv.RemoteID = strPtr(payload.ConversationID)
	}

	if err := tx.UpsertConversation(ctx, &conv); err != nil {
		return models.Conversation{}, false, err
	}
	return conv, false, nil
}
