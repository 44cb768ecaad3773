// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Operation is a remote mutation of a conversation.
type Operation string

const (
	OperationCreate             Operation = "create"
	OperationRename             Operation = "rename"
	OperationAddParticipants    Operation = "add-participants"
	OperationRemoveParticipants Operation = "remove-participants"
	OperationArchive            Operation = "archive"
)

// Covers returns the dirty bits an operation acknowledges when it succeeds.
func (o Operation) Covers() DirtyFields {
	switch o {
	case OperationCreate:
		return DirtyCreate | DirtyName | DirtyAddParticipants
	case OperationRename:
		return DirtyName
	case OperationAddParticipants:
		return DirtyAddParticipants
	case OperationRemoveParticipants:
		return DirtyRemoveParticipants
	case OperationArchive:
		return DirtyArchived
	default:
		return DirtyNone
	}
}

// RequestSnapshot holds the values a request was built from. On success
// only fields still equal to the snapshot are acknowledged.
type RequestSnapshot struct {
	Name     string   `json:"name,omitempty"`
	Archived bool     `json:"archived,omitempty"`
	Users    []string `json:"users,omitempty"`
}

// OutgoingRequest is a pending remote mutation for one conversation.
type OutgoingRequest struct {
	ID       string          `json:"id"`
	LocalID  string          `json:"local_id"`
	RemoteID string          `json:"remote_id,omitempty"`
	Op       Operation       `json:"operation"`
	Covers   DirtyFields     `json:"covers"`
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Snapshot RequestSnapshot `json:"snapshot"`
}

// RequestResult is what the remote side answered to a successful request.
type RequestResult struct {
	// RemoteID is the id assigned by a create.
	RemoteID string
	// Time is the server timestamp of the change.
	Time time.Time
}
