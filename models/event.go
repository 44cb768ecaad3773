// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// EventType is the type tag of a live event. The set of tags is open: the
// remote side may send tags this client does not know, which must be
// ignored rather than rejected.
type EventType string

const (
	EventServiceMessageAdd EventType = "conversation.service-message-add"
	EventOTRMessageAdd     EventType = "conversation.otr-message-add"
	EventUserConnection    EventType = "user.connection"
)

// Recognized reports whether t is one of the tags the transcoder handles.
func (t EventType) Recognized() bool {
	switch t {
	case EventServiceMessageAdd, EventOTRMessageAdd, EventUserConnection:
		return true
	default:
		return false
	}
}

// SyncEvent is a single live event taken from a notification.
// It is transient; only its effects are persisted.
type SyncEvent struct {
	// ID is the notification scoped identifier of the event, if any.
	ID string `json:"id,omitempty"`

	Type EventType `json:"type"`

	// ConversationID is the remote id of the target conversation. Empty for
	// connection events, which carry a user pair instead.
	ConversationID string `json:"conversation,omitempty"`

	// From is the remote id of the user that caused the event.
	From string `json:"from,omitempty"`

	// SenderClientID is the device of the sender for message events.
	SenderClientID string `json:"sender_client_id,omitempty"`

	Time time.Time `json:"time"`

	// Data is the type specific body.
	Data json.RawMessage `json:"data,omitempty"`

	// Raw is the whole payload as received.
	Raw json.RawMessage `json:"-"`
}

// IdempotencyKey returns the key under which the event is recorded as
// applied: its ID when present, otherwise the sha256 of the raw payload.
func (e SyncEvent) IdempotencyKey() string {
	if e.ID != "" {
		return e.ID
	}
	sum := sha256.Sum256(e.Raw)
	return "sha256:" + hex.EncodeToString(sum[:])
}
