// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatusResponse is the state of the synchronization engine as reported
// by the control API.
type SyncStatusResponse struct {
	// Phase is the current synchronization phase.
	Phase Phase `json:"phase"`

	// DirtyConversations is the number of conversations with local changes
	// not yet acknowledged by the remote side.
	DirtyConversations int `json:"dirty_conversations"`

	// InFlight is the number of outgoing requests awaiting a response.
	InFlight int `json:"in_flight"`

	// BufferedEvents is the number of live events parked until their
	// conversation exists locally.
	BufferedEvents int `json:"buffered_events"`

	// QueuedEvents is the number of live events received before the local
	// state was ready to apply them.
	QueuedEvents int `json:"queued_events"`
}

// ConversationListResponse is a page of local conversations.
type ConversationListResponse struct {
	Conversations []Conversation `json:"conversations"`

	// Next is the LocalID to pass as "after" to get the next page; empty
	// on the last page.
	Next string `json:"next,omitempty"`
}
