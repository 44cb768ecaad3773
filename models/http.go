// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateConversationRequest is the body of a conversation create, both on
// the remote conversations resource and on the local control API.
type CreateConversationRequest struct {
	// Name is optional for groups and ignored for pairwise conversations.
	Name string `json:"name,omitempty"`

	// Users are the invited members, the creator excluded.
	Users []string `json:"users"`
}

// RenameConversationRequest changes the conversation name.
type RenameConversationRequest struct {
	Name string `json:"name"`
}

// MembersRequest adds or removes members.
type MembersRequest struct {
	Users []string `json:"users"`
}

// ArchiveRequest sets the archived flag.
type ArchiveRequest struct {
	Archived bool `json:"archived"`
}
