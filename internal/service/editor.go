// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/internal/validators"
	"github.com/pukapp/convsync/models"
)

// LocalEditor applies edits made by the local user. Edits only mark
// conversations dirty; the transcoder turns them into requests later.
type LocalEditor struct {
	store      store.Store
	validator  validators.Validator
	ids        IDGenerator
	selfUserID string
	onChange   func()
	now        func() time.Time
	logger     *logger.Logger
}

// NewLocalEditor wires an editor. onChange is called after every committed
// edit and may be nil.
func NewLocalEditor(st store.Store, validator validators.Validator, ids IDGenerator, appCfg config.App, onChange func(), logger *logger.Logger) *LocalEditor {
	return &LocalEditor{
		store:      st,
		validator:  validator,
		ids:        ids,
		selfUserID: appCfg.SelfUserID,
		onChange:   onChange,
		now:        time.Now,
		logger:     logger,
	}
}

// CreateGroup creates a group conversation that exists only locally until
// its create request succeeds.
func (e *LocalEditor) CreateGroup(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error) {
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := e.now().UTC()
	conv := models.Conversation{
		LocalID:      e.ids.Generate(),
		Type:         models.ConversationGroup,
		Name:         req.Name,
		Creator:      e.selfUserID,
		LastModified: now,
	}
	conv.SetParticipant(e.selfUserID, true, now)
	conv.MarkDirty(models.DirtyCreate)
	if req.Name != "" {
		conv.MarkDirty(models.DirtyName)
	}
	conv.AddPending(e.withoutSelf(req.Users)...)

	err := e.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return tx.UpsertConversation(ctx, &conv)
	})
	if err != nil {
		e.logger.ForContext(ctx).Err(err).Str("func", "*LocalEditor.CreateGroup").Msg("failed to create conversation")
		return models.Conversation{}, err
	}

	e.changed(ctx, conv.LocalID, "create")
	return conv, nil
}

// Rename sets a new name on a group conversation.
func (e *LocalEditor) Rename(ctx context.Context, localID, name string) (models.Conversation, error) {
	if err := e.validator.Validate(ctx, models.RenameConversationRequest{Name: name}); err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return e.edit(ctx, localID, "rename", func(conv *models.Conversation) bool {
		if conv.Name == name {
			return false
		}
		conv.Name = name
		conv.MarkDirty(models.DirtyName)
		return true
	})
}

// AddMembers queues users for addition. Users that are already members are
// ignored.
func (e *LocalEditor) AddMembers(ctx context.Context, localID string, userIDs []string) (models.Conversation, error) {
	if err := e.validator.Validate(ctx, models.MembersRequest{Users: userIDs}); err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return e.edit(ctx, localID, "add-members", func(conv *models.Conversation) bool {
		active := conv.ActiveParticipants()
		changed := false
		for _, id := range e.withoutSelf(userIDs) {
			switch {
			case slices.Contains(conv.PendingRemove, id):
				// withdraw the queued removal of a current member
				conv.AckPendingRemove(id)
				changed = true
			case slices.Contains(active, id), slices.Contains(conv.PendingAdd, id):
			default:
				conv.AddPending(id)
				changed = true
			}
		}
		return changed
	})
}

// RemoveMembers queues users for removal. Users only queued for addition
// are dropped from that queue instead.
func (e *LocalEditor) RemoveMembers(ctx context.Context, localID string, userIDs []string) (models.Conversation, error) {
	if err := e.validator.Validate(ctx, models.MembersRequest{Users: userIDs}); err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return e.edit(ctx, localID, "remove-members", func(conv *models.Conversation) bool {
		active := conv.ActiveParticipants()
		changed := false
		for _, id := range userIDs {
			switch {
			case slices.Contains(conv.PendingAdd, id):
				conv.AckPendingAdd(id)
				changed = true
			case slices.Contains(active, id) && !slices.Contains(conv.PendingRemove, id):
				conv.RemovePending(id)
				changed = true
			}
		}
		return changed
	})
}

// SetArchived sets the archived flag of the self user.
func (e *LocalEditor) SetArchived(ctx context.Context, localID string, archived bool) (models.Conversation, error) {
	return e.edit(ctx, localID, "archive", func(conv *models.Conversation) bool {
		if conv.Archived == archived {
			return false
		}
		conv.Archived = archived
		conv.MarkDirty(models.DirtyArchived)
		return true
	})
}

// Get returns a conversation by local id.
func (e *LocalEditor) Get(ctx context.Context, localID string) (models.Conversation, error) {
	var conv models.Conversation
	err := e.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		conv, err = tx.FindConversationByLocalID(ctx, localID)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return models.Conversation{}, fmt.Errorf("%w: %s", ErrNotFound, localID)
	}
	return conv, err
}

// List returns up to limit conversations ordered by local id.
func (e *LocalEditor) List(ctx context.Context, limit int, afterLocalID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := e.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		convs, err = tx.ListConversations(ctx, limit, afterLocalID)
		return err
	})
	return convs, err
}

// edit loads, mutates and stores a conversation in one unit of work.
// Pairwise conversations accept only the archived flag. mutate reports
// whether it changed anything.
func (e *LocalEditor) edit(ctx context.Context, localID, action string, mutate func(conv *models.Conversation) bool) (models.Conversation, error) {
	var (
		conv    models.Conversation
		changed bool
	)
	err := e.store.InTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		conv, err = tx.FindConversationByLocalID(ctx, localID)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, localID)
		}
		if err != nil {
			return err
		}

		if conv.Left {
			return ErrConversationLeft
		}
		if conv.Type.IsPairwise() && action != "archive" {
			return ErrPairwiseImmutable
		}

		if changed = mutate(&conv); !changed {
			return nil
		}
		return tx.UpsertConversation(ctx, &conv)
	})
	if err != nil {
		return models.Conversation{}, err
	}

	if changed {
		e.changed(ctx, localID, action)
	}
	return conv, nil
}

func (e *LocalEditor) changed(ctx context.Context, localID, action string) {
	e.logger.ForContext(ctx).Debug().
		Str("conversation_id", localID).
		Str("action", action).
		Msg("local edit recorded")

	if e.onChange != nil {
		e.onChange()
	}
}

func (e *LocalEditor) withoutSelf(ids []string) []string {
	return slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == e.selfUserID })
}

var _ ConversationEditor = (*LocalEditor)(nil)
