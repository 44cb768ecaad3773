// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/internal/wire"
	"github.com/pukapp/convsync/models"
)

// errBuffered aborts the unit of work of an event that has to wait for its
// conversation, so the applied-event ledger does not record it. The event is
// parked before the unit of work ends: a concurrent creation of the
// conversation commits after it and its replay finds the event.
var errBuffered = errors.New("event buffered")

// Apply applies a single live event in one unit of work. Unrecognised event
// types are ignored. A repeated event yields [models.ChangeDuplicate] and
// changes nothing.
func (t *Transcoder) Apply(ctx context.Context, event models.SyncEvent) (models.AppliedChange, error) {
	log := t.logger.ForContext(ctx)

	change := models.AppliedChange{
		Kind:                 models.ChangeNone,
		EventID:              event.ID,
		EventType:            event.Type,
		ConversationRemoteID: event.ConversationID,
		Time:                 event.Time,
	}

	if !event.Type.Recognized() {
		log.Debug().Str("event_type", string(event.Type)).Msg("ignoring unrecognised event")
		return change, nil
	}

	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		fresh, err := tx.MarkEventApplied(ctx, event.IdempotencyKey(), event.Type)
		if err != nil {
			return err
		}
		if !fresh {
			change.Kind = models.ChangeDuplicate
			return nil
		}

		switch event.Type {
		case models.EventServiceMessageAdd:
			return t.applyServiceMessage(ctx, tx, event, &change)
		case models.EventOTRMessageAdd:
			return t.applyOTRMessage(ctx, tx, event, &change)
		case models.EventUserConnection:
			return t.applyConnection(ctx, tx, event, &change)
		}
		return nil
	})

	if errors.Is(err, errBuffered) {
		change.Kind = models.ChangeBuffered
		return change, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*Transcoder.Apply").
			Str("event_type", string(event.Type)).
			Str("conversation_id", event.ConversationID).
			Msg("failed to apply event")
		return models.AppliedChange{Kind: models.ChangeNone, EventID: event.ID, EventType: event.Type}, err
	}

	t.notify(change)
	if change.Kind == models.ChangeCreated || change.Kind == models.ChangeConnection {
		t.replay(ctx, change.ConversationRemoteID)
	}

	return change, nil
}

func (t *Transcoder) applyServiceMessage(ctx context.Context, tx store.Tx, event models.SyncEvent, change *models.AppliedChange) error {
	payload, err := wire.DecodeServiceMessage(event.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	if event.ConversationID == "" || event.Time.IsZero() {
		return fmt.Errorf("%w: service message without conversation or time", ErrDecoding)
	}

	conv, err := tx.FindConversationByRemoteID(ctx, event.ConversationID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, event.ConversationID)
	}
	if err != nil {
		return err
	}

	ts := event.Time
	changed := false

	switch payload.Action {
	case models.ActionMemberJoin, models.ActionMemberLeave:
		active := payload.Action == models.ActionMemberJoin
		for _, uid := range payload.UserIDs {
			if !conv.SetParticipant(uid, active, ts) {
				continue
			}
			changed = true
			if active {
				conv.AckPendingAdd(uid)
				if err := t.ensureUser(ctx, tx, uid, "", ""); err != nil {
					return err
				}
			} else {
				conv.AckPendingRemove(uid)
			}
			if uid == t.selfUserID {
				conv.Left = !active
			}
		}
		change.Kind = models.ChangeMembership

	case models.ActionRename:
		// a pending local rename wins until it has been pushed
		if !conv.Dirty.Has(models.DirtyName) && ts.After(conv.NameModified) {
			conv.Name = payload.Name
			conv.NameModified = ts
			changed = true
		}
		change.Kind = models.ChangeRenamed

	case models.ActionArchive:
		if !conv.Dirty.Has(models.DirtyArchived) && ts.After(conv.ArchivedModified) {
			conv.Archived = payload.Archived
			conv.ArchivedModified = ts
			changed = true
		}
		change.Kind = models.ChangeArchived
	}

	touched := conv.Touch(ts)
	if !changed {
		change.Kind = models.ChangeNone
	}
	change.ConversationLocalID = conv.LocalID
	if !changed && !touched {
		return nil
	}

	return tx.UpsertConversation(ctx, &conv)
}

func (t *Transcoder) applyOTRMessage(ctx context.Context, tx store.Tx, event models.SyncEvent, change *models.AppliedChange) error {
	if _, err := wire.DecodeOTRMessage(event.Data); err != nil {
		return fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	if event.ConversationID == "" {
		return fmt.Errorf("%w: message without conversation", ErrDecoding)
	}

	conv, err := tx.FindConversationByRemoteID(ctx, event.ConversationID)
	if errors.Is(err, store.ErrNotFound) {
		dropped := t.pending.add(event.ConversationID, event)
		t.logger.ForContext(ctx).Debug().
			Str("conversation_id", event.ConversationID).
			Str("event_type", string(event.Type)).
			Int("dropped", dropped).
			Msg("buffered event for unknown conversation")
		return errBuffered
	}
	if err != nil {
		return err
	}

	change.Kind = models.ChangeMessage
	change.ConversationLocalID = conv.LocalID
	if !conv.Touch(event.Time) {
		return nil
	}
	return tx.UpsertConversation(ctx, &conv)
}

func (t *Transcoder) applyConnection(ctx context.Context, tx store.Tx, event models.SyncEvent, change *models.AppliedChange) error {
	payload, err := wire.DecodeConnection(event.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	ts := payload.LastUpdate
	if ts.IsZero() {
		ts = event.Time
	}

	conv, created, err := t.resolveOneOnOne(ctx, tx, payload, payload.Status.ConversationType(), ts)
	if err != nil {
		return err
	}

	change.Kind = models.ChangeConnection
	if created {
		change.Kind = models.ChangeCreated
	}
	change.ConversationLocalID = conv.LocalID
	change.ConversationRemoteID = conv.RemoteIDString()
	change.Time = ts

	return nil
}

// ProcessEvents applies live events in order. Events sent by this client
// are skipped. Until the phase allows live events, and unless ignoreBuffer
// is set, events are queued for [Transcoder.FlushIngress]. Decoding and
// not-found errors are logged and skipped; any other error stops the batch.
func (t *Transcoder) ProcessEvents(ctx context.Context, events []models.SyncEvent, ignoreBuffer bool) ([]models.AppliedChange, error) {
	t.eventMu.Lock()
	defer t.eventMu.Unlock()

	changes, _, err := t.processEvents(ctx, events, ignoreBuffer)
	return changes, err
}

// processEvents returns the index of the event that failed, or len(events).
func (t *Transcoder) processEvents(ctx context.Context, events []models.SyncEvent, ignoreBuffer bool) ([]models.AppliedChange, int, error) {
	log := t.logger.ForContext(ctx)
	ready := t.status.CurrentPhase().EventReady()

	changes := make([]models.AppliedChange, 0, len(events))
	for i, ev := range events {
		if t.selfClientID != "" && ev.SenderClientID == t.selfClientID {
			continue
		}

		if !ready && !ignoreBuffer {
			if t.ingress.push(ev) {
				log.Warn().Str("event_type", string(ev.Type)).Msg("ingress buffer full, dropped oldest event")
			}
			continue
		}

		change, err := t.Apply(ctx, ev)
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDecoding) {
				continue
			}
			return changes, i, err
		}
		changes = append(changes, change)
	}

	return changes, len(events), nil
}

// FlushIngress applies the events queued while the phase did not allow live
// events, in arrival order, and returns how many were applied or skipped.
// On failure the unprocessed rest is queued again.
func (t *Transcoder) FlushIngress(ctx context.Context) (int, error) {
	t.eventMu.Lock()
	defer t.eventMu.Unlock()

	return t.flushIngress(ctx)
}

// GoLive implements [Syncer]. transition and the flush of queued events run
// as one step: no live event is applied between them. Nothing is flushed
// when transition fails.
func (t *Transcoder) GoLive(ctx context.Context, transition func() error) (int, error) {
	t.eventMu.Lock()
	defer t.eventMu.Unlock()

	if err := transition(); err != nil {
		return 0, err
	}
	return t.flushIngress(ctx)
}

func (t *Transcoder) flushIngress(ctx context.Context) (int, error) {
	events := t.ingress.drain()
	if len(events) == 0 {
		return 0, nil
	}

	t.logger.ForContext(ctx).Info().Int("events", len(events)).Msg("flushing queued live events")

	_, done, err := t.processEvents(ctx, events, true)
	if err != nil {
		for _, ev := range events[done:] {
			t.ingress.push(ev)
		}
	}
	return done, err
}
