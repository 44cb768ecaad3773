// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/models"
)

// PendingRequests returns at most one request per dirty conversation that
// has none in flight. Each returned request holds the in-flight slot of its
// conversation until RequestSucceeded or RequestFailed is called for it.
func (t *Transcoder) PendingRequests(ctx context.Context) ([]models.OutgoingRequest, error) {
	if !t.status.CurrentPhase().RequestReady() {
		return nil, nil
	}

	var dirty []models.Conversation
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		dirty, err = tx.ListDirtyConversations(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log := t.logger.ForContext(ctx)

	var requests []models.OutgoingRequest
	for _, conv := range dirty {
		if conv.NeedsRefetch || conv.Left || t.inflight.has(conv.LocalID) {
			continue
		}

		ops := t.diff.Operations(conv)
		if len(ops) == 0 {
			continue
		}

		req, ok, err := t.buildRequest(conv, ops[0])
		if err != nil {
			log.Err(err).
				Str("func", "*Transcoder.PendingRequests").
				Str("conversation_id", conv.LocalID).
				Msg("failed to build request")
			continue
		}
		if !ok || !t.inflight.tryAcquire(conv.LocalID, req.ID) {
			continue
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// buildRequest reports false when op can not be sent in the current state.
func (t *Transcoder) buildRequest(conv models.Conversation, op models.Operation) (models.OutgoingRequest, bool, error) {
	req := models.OutgoingRequest{
		ID:       t.ids.Generate(),
		LocalID:  conv.LocalID,
		RemoteID: conv.RemoteIDString(),
		Op:       op,
		Covers:   op.Covers(),
	}

	if op != models.OperationCreate && !conv.HasRemoteID() {
		return req, false, nil
	}

	var body any
	switch op {
	case models.OperationCreate:
		users := slices.DeleteFunc(conv.ActiveParticipants(), func(id string) bool { return id == t.selfUserID })
		for _, id := range conv.PendingAdd {
			if !slices.Contains(users, id) {
				users = append(users, id)
			}
		}
		req.Method = http.MethodPost
		req.Path = adapter.ConversationsPath
		req.Snapshot = models.RequestSnapshot{Name: conv.Name, Users: users}
		body = models.CreateConversationRequest{Name: conv.Name, Users: users}

	case models.OperationRename:
		req.Method = http.MethodPut
		req.Path = adapter.ConversationPath(req.RemoteID)
		req.Snapshot = models.RequestSnapshot{Name: conv.Name}
		body = models.RenameConversationRequest{Name: conv.Name}

	case models.OperationAddParticipants:
		if len(conv.PendingAdd) == 0 {
			return req, false, nil
		}
		users := slices.Clone(conv.PendingAdd)
		req.Method = http.MethodPost
		req.Path = adapter.MembersPath(req.RemoteID)
		req.Snapshot = models.RequestSnapshot{Users: users}
		body = models.MembersRequest{Users: users}

	case models.OperationRemoveParticipants:
		if len(conv.PendingRemove) == 0 {
			return req, false, nil
		}
		// the remote side removes one member per call
		user := conv.PendingRemove[0]
		req.Method = http.MethodDelete
		req.Path = adapter.MemberPath(req.RemoteID, user)
		req.Snapshot = models.RequestSnapshot{Users: []string{user}}

	case models.OperationArchive:
		req.Method = http.MethodPut
		req.Path = adapter.SelfPath(req.RemoteID)
		req.Snapshot = models.RequestSnapshot{Archived: conv.Archived}
		body = models.ArchiveRequest{Archived: conv.Archived}

	default:
		return req, false, fmt.Errorf("unknown operation %q", op)
	}

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return req, false, err
		}
		req.Body = raw
	}
	return req, true, nil
}

// RequestSucceeded acknowledges req. Dirty bits are cleared only where the
// current value still equals what was sent, so an edit made while the
// request was in flight stays dirty.
func (t *Transcoder) RequestSucceeded(ctx context.Context, req models.OutgoingRequest, result models.RequestResult) error {
	defer t.inflight.release(req.LocalID, req.ID)

	log := t.logger.ForContext(ctx).WithFields("conversation_id", req.LocalID, "operation", string(req.Op))

	ts := result.Time
	if ts.IsZero() {
		ts = t.now().UTC()
	}

	var replayID string
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		conv, err := tx.FindConversationByLocalID(ctx, req.LocalID)
		if err != nil {
			return err
		}

		switch req.Op {
		case models.OperationCreate:
			conv.ClearDirty(models.DirtyCreate)
			if result.RemoteID != "" && !conv.HasRemoteID() {
				if _, err := tx.FindConversationByRemoteID(ctx, result.RemoteID); err == nil {
					// a page or event already brought the conversation in
					log.Warn().Str("remote_id", result.RemoteID).Msg("created conversation already known, retiring local copy")
					conv.Left = true
					conv.Dirty = models.DirtyNone
					conv.PendingAdd, conv.PendingRemove = nil, nil
					return tx.UpsertConversation(ctx, &conv)
				} else if !errors.Is(err, store.ErrNotFound) {
					return err
				}
				conv.RemoteID = strPtr(result.RemoteID)
				replayID = result.RemoteID
			}
			if conv.Name == req.Snapshot.Name {
				conv.ClearDirty(models.DirtyName)
				conv.NameModified = maxTime(conv.NameModified, ts)
			}
			for _, uid := range req.Snapshot.Users {
				conv.SetParticipant(uid, true, ts)
			}
			conv.AckPendingAdd(req.Snapshot.Users...)

		case models.OperationRename:
			if conv.Name == req.Snapshot.Name {
				conv.ClearDirty(models.DirtyName)
				conv.NameModified = maxTime(conv.NameModified, ts)
			}

		case models.OperationAddParticipants:
			for _, uid := range req.Snapshot.Users {
				conv.SetParticipant(uid, true, ts)
			}
			conv.AckPendingAdd(req.Snapshot.Users...)

		case models.OperationRemoveParticipants:
			for _, uid := range req.Snapshot.Users {
				conv.SetParticipant(uid, false, ts)
				if uid == t.selfUserID {
					conv.Left = true
				}
			}
			conv.AckPendingRemove(req.Snapshot.Users...)

		case models.OperationArchive:
			if conv.Archived == req.Snapshot.Archived {
				conv.ClearDirty(models.DirtyArchived)
				conv.ArchivedModified = maxTime(conv.ArchivedModified, ts)
			}
		}

		conv.Touch(ts)
		return tx.UpsertConversation(ctx, &conv)
	})
	if err != nil {
		log.Err(err).Str("func", "*Transcoder.RequestSucceeded").Msg("failed to acknowledge request")
		return err
	}

	log.Debug().Msg("request acknowledged")
	t.replay(ctx, replayID)
	return nil
}

// RequestFailed releases the in-flight slot of req. The conversation stays
// dirty; a conflict additionally marks it for re-fetch.
func (t *Transcoder) RequestFailed(ctx context.Context, req models.OutgoingRequest, reqErr error) error {
	defer t.inflight.release(req.LocalID, req.ID)

	t.logger.ForContext(ctx).Warn().
		Err(reqErr).
		Str("conversation_id", req.LocalID).
		Str("operation", string(req.Op)).
		Msg("request failed")

	if !errors.Is(reqErr, ErrConflict) {
		return nil
	}

	return t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		conv, err := tx.FindConversationByLocalID(ctx, req.LocalID)
		if err != nil {
			return err
		}
		if !conv.HasRemoteID() {
			return nil
		}
		conv.NeedsRefetch = true
		return tx.UpsertConversation(ctx, &conv)
	})
}
