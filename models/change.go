// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChangeKind describes what applying an event did.
type ChangeKind string

const (
	ChangeNone       ChangeKind = "none"
	ChangeBuffered   ChangeKind = "buffered"
	ChangeDuplicate  ChangeKind = "duplicate"
	ChangeMembership ChangeKind = "membership"
	ChangeRenamed    ChangeKind = "renamed"
	ChangeArchived   ChangeKind = "archived"
	ChangeMessage    ChangeKind = "message"
	ChangeConnection ChangeKind = "connection"
	ChangeCreated    ChangeKind = "created"
	ChangeUpdated    ChangeKind = "updated"
)

// AppliedChange describes the effect of one applied event or page entry.
type AppliedChange struct {
	Kind                 ChangeKind `json:"kind"`
	EventID              string     `json:"event_id,omitempty"`
	EventType            EventType  `json:"event_type,omitempty"`
	ConversationLocalID  string     `json:"conversation_local_id,omitempty"`
	ConversationRemoteID string     `json:"conversation_remote_id,omitempty"`
	Time                 time.Time  `json:"time"`
}

// Applied reports whether local state changed.
func (c AppliedChange) Applied() bool {
	switch c.Kind {
	case ChangeNone, ChangeBuffered, ChangeDuplicate, "":
		return false
	default:
		return true
	}
}
