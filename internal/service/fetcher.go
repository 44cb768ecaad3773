// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/models"
)

// PageResult is the outcome of one applied page of the remote listing.
type PageResult struct {
	// Created and Updated hold local ids.
	Created []string
	Updated []string

	// NextCursor is nil after the last page.
	NextCursor *string
	Done       bool
}

// SlowSync fetches and applies the page following the persisted cursor.
// It reports done after the last page has been applied.
func (t *Transcoder) SlowSync(ctx context.Context) (bool, error) {
	var cursor *string
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		cursor, err = tx.GetCursor(ctx, conversationsCursor)
		return err
	})
	if err != nil {
		return false, err
	}

	res, err := t.NextPage(ctx, t.pageSize, cursor)
	if err != nil {
		return false, err
	}
	return res.Done, nil
}

// NextPage requests pageSize summaries starting at cursor and applies them
// together with the advanced cursor in one unit of work. A failure leaves
// the previously committed cursor in place.
func (t *Transcoder) NextPage(ctx context.Context, pageSize int, cursor *string) (PageResult, error) {
	if phase := t.status.CurrentPhase(); phase != models.PhaseSlowSync {
		return PageResult{}, fmt.Errorf("%w: page fetch in phase %s", ErrWrongPhase, phase)
	}

	log := t.logger.ForContext(ctx).WithFields("cursor", derefOr(cursor, ""))

	page, err := t.adapter.ListConversations(ctx, pageSize, cursor)
	if err != nil {
		log.Err(err).Str("func", "*Transcoder.NextPage").Msg("failed to fetch conversations page")
		return PageResult{}, classifyAdapterError(err)
	}

	var (
		res        PageResult
		newRemotes []string
	)
	err = t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		res = PageResult{}
		newRemotes = newRemotes[:0]

		for _, summary := range page.Conversations {
			conv, kind, err := t.applySummary(ctx, tx, summary, false)
			if err != nil {
				return fmt.Errorf("apply summary %s: %w", summary.ID, err)
			}
			switch kind {
			case models.ChangeCreated:
				res.Created = append(res.Created, conv.LocalID)
				newRemotes = append(newRemotes, summary.ID)
			case models.ChangeUpdated:
				res.Updated = append(res.Updated, conv.LocalID)
			}
		}

		return tx.SetCursor(ctx, conversationsCursor, page.NextCursor)
	})
	if err != nil {
		log.Err(err).Str("func", "*Transcoder.NextPage").Msg("failed to apply conversations page")
		return PageResult{}, err
	}

	res.NextCursor = page.NextCursor
	res.Done = page.NextCursor == nil

	log.Info().
		Int("received", len(page.Conversations)).
		Int("created", len(res.Created)).
		Int("updated", len(res.Updated)).
		Bool("done", res.Done).
		Msg("applied conversations page")

	for _, remoteID := range newRemotes {
		t.replay(ctx, remoteID)
	}

	return res, nil
}

// RefetchTargets returns the remote ids of conversations whose last request
// was rejected as stale.
func (t *Transcoder) RefetchTargets(ctx context.Context) ([]string, error) {
	var ids []string
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		convs, err := tx.ListDirtyConversations(ctx)
		if err != nil {
			return err
		}
		for _, c := range convs {
			if c.NeedsRefetch && c.HasRemoteID() {
				ids = append(ids, c.RemoteIDString())
			}
		}
		return nil
	})
	return ids, err
}

// ApplyRefetched overwrites the remote view of a conversation with a freshly
// fetched summary and clears its re-fetch mark. Locally dirty fields are
// kept so that the edit is retried against the new state.
func (t *Transcoder) ApplyRefetched(ctx context.Context, summary models.ConversationSummary) error {
	var kind models.ChangeKind
	err := t.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		_, kind, err = t.applySummary(ctx, tx, summary, true)
		return err
	})
	if err != nil {
		return err
	}
	if kind == models.ChangeCreated {
		t.replay(ctx, summary.ID)
	}
	return nil
}

// applySummary merges one remote summary. force applies it even when it is
// not newer than the stored state. It returns ChangeCreated, ChangeUpdated
// or ChangeNone.
func (t *Transcoder) applySummary(ctx context.Context, tx store.Tx, summary models.ConversationSummary, force bool) (models.Conversation, models.ChangeKind, error) {
	if summary.ID == "" {
		return models.Conversation{}, models.ChangeNone, fmt.Errorf("%w: summary without id", ErrDecoding)
	}

	convType := models.ConversationTypeFromCode(summary.Type)
	ts := summary.LastModified

	conv, err := tx.FindConversationByRemoteID(ctx, summary.ID)
	if errors.Is(err, store.ErrNotFound) && convType.IsPairwise() {
		conv, err = t.linkPairwise(ctx, tx, summary)
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		conv = models.Conversation{
			LocalID:          t.ids.Generate(),
			RemoteID:         strPtr(summary.ID),
			Type:             convType,
			Name:             summary.Name,
			Creator:          summary.Creator,
			Archived:         summary.Archived,
			LastModified:     ts,
			NameModified:     ts,
			ArchivedModified: ts,
		}
		if other := t.otherMember(summary.Members); convType.IsPairwise() && other != "" {
			conv.OtherUserID = other
			pairKey := models.PairKey(t.selfUserID, other)
			// the pair may already be held by a conversation with another remote id
			if _, err := tx.FindConversationByPairKey(ctx, pairKey); errors.Is(err, store.ErrNotFound) {
				conv.PairKey = pairKey
			} else if err != nil {
				return models.Conversation{}, models.ChangeNone, err
			}
		}
		for _, uid := range summary.Members {
			conv.SetParticipant(uid, true, ts)
			if err := t.ensureUser(ctx, tx, uid, "", ""); err != nil {
				return models.Conversation{}, models.ChangeNone, err
			}
		}
		if err := tx.UpsertConversation(ctx, &conv); err != nil {
			return models.Conversation{}, models.ChangeNone, err
		}
		return conv, models.ChangeCreated, nil

	case err != nil:
		return models.Conversation{}, models.ChangeNone, err
	}

	if !force && !ts.After(conv.LastModified) && conv.HasRemoteID() && !conv.NeedsRefetch {
		return conv, models.ChangeNone, nil
	}

	if !conv.HasRemoteID() {
		conv.RemoteID = strPtr(summary.ID)
		conv.ClearDirty(models.DirtyCreate)
	}

	if !conv.Dirty.Has(models.DirtyName) && (force || ts.After(conv.NameModified)) {
		conv.Name = summary.Name
		conv.NameModified = maxTime(conv.NameModified, ts)
	}
	if !conv.Dirty.Has(models.DirtyArchived) && (force || ts.After(conv.ArchivedModified)) {
		conv.Archived = summary.Archived
		conv.ArchivedModified = maxTime(conv.ArchivedModified, ts)
	}

	for _, uid := range summary.Members {
		if conv.SetParticipant(uid, true, ts) {
			if err := t.ensureUser(ctx, tx, uid, "", ""); err != nil {
				return models.Conversation{}, models.ChangeNone, err
			}
		}
	}
	for _, uid := range conv.ActiveParticipants() {
		if !slices.Contains(summary.Members, uid) {
			conv.SetParticipant(uid, false, ts)
		}
	}

	if convType != models.ConversationInvalid {
		conv.Type = convType
	}
	if conv.Creator == "" {
		conv.Creator = summary.Creator
	}
	conv.Touch(ts)
	if force {
		conv.NeedsRefetch = false
	}

	if err := tx.UpsertConversation(ctx, &conv); err != nil {
		return models.Conversation{}, models.ChangeNone, err
	}
	return conv, models.ChangeUpdated, nil
}

// linkPairwise finds a pairwise conversation known only by its user pair,
// typically one created by a connection event before the page arrived.
func (t *Transcoder) linkPairwise(ctx context.Context, tx store.Tx, summary models.ConversationSummary) (models.Conversation, error) {
	other := t.otherMember(summary.Members)
	if other == "" {
		return models.Conversation{}, store.ErrNotFound
	}

	conv, err := tx.FindConversationByPairKey(ctx, models.PairKey(t.selfUserID, other))
	if err != nil {
		return models.Conversation{}, err
	}
	if conv.HasRemoteID() && conv.RemoteIDString() != summary.ID {
		return models.Conversation{}, store.ErrNotFound
	}
	return conv, nil
}

func (t *Transcoder) otherMember(members []string) string {
	for _, m := range members {
		if m != t.selfUserID {
			return m
		}
	}
	return ""
}
