// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConnectionStatus is the state of the connection between the self user and
// another user as reported by the remote side.
type ConnectionStatus string

const (
	ConnectionAccepted  ConnectionStatus = "accepted"
	ConnectionPending   ConnectionStatus = "pending"
	ConnectionSent      ConnectionStatus = "sent"
	ConnectionBlocked   ConnectionStatus = "blocked"
	ConnectionIgnored   ConnectionStatus = "ignored"
	ConnectionCancelled ConnectionStatus = "cancelled"
)

// ConversationType returns the type of the pairwise conversation backing a
// connection in this status. Only an accepted connection is a real
// one-on-one conversation.
func (s ConnectionStatus) ConversationType() ConversationType {
	if s == ConnectionAccepted {
		return ConversationOneOnOne
	}
	return ConversationConnection
}

// User is a participant identity. Users are linked to conversations and are
// never managed on their own.
type User struct {
	// RemoteID is the identifier assigned by the remote side.
	RemoteID string `json:"id"`

	// Name is the display name of the user. It may be empty when the user
	// was only referenced as a member.
	Name string `json:"name,omitempty"`

	// Handle is the unique user handle, if known.
	Handle string `json:"handle,omitempty"`

	// ConnectionStatus is the status of the connection to the self user.
	// Empty for users the self user is not connected to.
	ConnectionStatus ConnectionStatus `json:"connection_status,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
