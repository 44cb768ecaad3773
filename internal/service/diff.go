// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/pukapp/convsync/models"

// MinimalDiff emits one operation per dirty field. A conversation unknown to
// the remote side first needs a create, which also carries the name and the
// initial members; pairwise conversations are never created this way since
// the remote side creates them along with the connection.
type MinimalDiff struct{}

// Operations implements [DiffStrategy].
func (MinimalDiff) Operations(conv models.Conversation) []models.Operation {
	if conv.Dirty == models.DirtyNone {
		return nil
	}

	if !conv.HasRemoteID() {
		if conv.Type.IsPairwise() {
			return nil
		}
		return []models.Operation{models.OperationCreate}
	}

	var ops []models.Operation
	if conv.Dirty.Has(models.DirtyName) {
		ops = append(ops, models.OperationRename)
	}
	if conv.Dirty.Has(models.DirtyAddParticipants) && len(conv.PendingAdd) > 0 {
		ops = append(ops, models.OperationAddParticipants)
	}
	if conv.Dirty.Has(models.DirtyRemoveParticipants) && len(conv.PendingRemove) > 0 {
		ops = append(ops, models.OperationRemoveParticipants)
	}
	if conv.Dirty.Has(models.DirtyArchived) {
		ops = append(ops, models.OperationArchive)
	}
	return ops
}
