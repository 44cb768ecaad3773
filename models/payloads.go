// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ServiceAction is the kind of a conversation service message.
type ServiceAction string

const (
	ActionMemberJoin  ServiceAction = "member-join"
	ActionMemberLeave ServiceAction = "member-leave"
	ActionRename      ServiceAction = "rename"
	ActionArchive     ServiceAction = "archive"
)

// ServiceMessagePayload is the body of a conversation.service-message-add event.
type ServiceMessagePayload struct {
	Action   ServiceAction `json:"action"`
	UserIDs  []string      `json:"user_ids,omitempty"`
	Name     string        `json:"name,omitempty"`
	Archived bool          `json:"archived,omitempty"`
}

// OTRMessagePayload is the part of a conversation.otr-message-add body the
// transcoder reads. Message content is never decoded.
type OTRMessagePayload struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient,omitempty"`
}

// ConnectionPayload is the body of a user.connection event.
type ConnectionPayload struct {
	From           string           `json:"from"`
	To             string           `json:"to"`
	ConversationID string           `json:"conversation,omitempty"`
	Status         ConnectionStatus `json:"status"`
	LastUpdate     time.Time        `json:"last_update"`

	// UserName is the display name of the other user, if sent along.
	UserName string `json:"-"`
}

// OtherUserID returns the side of the connection that is not selfID, or an
// empty string when neither side is the self user.
func (p ConnectionPayload) OtherUserID(selfID string) string {
	switch {
	case strings.EqualFold(p.From, selfID):
		return p.To
	case strings.EqualFold(p.To, selfID):
		return p.From
	default:
		return ""
	}
}

// ConversationSummary is one conversation as returned by the remote
// conversations resource.
type ConversationSummary struct {
	ID           string    `json:"id"`
	Type         int       `json:"type"`
	Name         string    `json:"name,omitempty"`
	Creator      string    `json:"creator,omitempty"`
	Members      []string  `json:"members"`
	Archived     bool      `json:"archived"`
	LastModified time.Time `json:"last_event_time"`
}

// ConversationPage is one page of the remote conversation listing.
// A nil NextCursor marks the last page.
type ConversationPage struct {
	Conversations []ConversationSummary `json:"conversations"`
	NextCursor    *string               `json:"next_cursor"`
}
