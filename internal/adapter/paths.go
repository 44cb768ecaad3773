// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "net/url"

// ConversationsPath is the root of the remote conversations resource.
const ConversationsPath = "/conversations"

// ConversationPath addresses a single conversation.
func ConversationPath(remoteID string) string {
	return ConversationsPath + "/" + url.PathEscape(remoteID)
}

// MembersPath addresses the member list of a conversation.
func MembersPath(remoteID string) string {
	return ConversationPath(remoteID) + "/members"
}

// MemberPath addresses one member of a conversation.
func MemberPath(remoteID, userID string) string {
	return MembersPath(remoteID) + "/" + url.PathEscape(userID)
}

// SelfPath addresses the self member state (archived flag) of a conversation.
func SelfPath(remoteID string) string {
	return ConversationPath(remoteID) + "/self"
}
