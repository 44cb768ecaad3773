// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// ConversationType is the kind of a conversation as known locally.
type ConversationType string

const (
	ConversationGroup      ConversationType = "group"
	ConversationOneOnOne   ConversationType = "one_on_one"
	ConversationConnection ConversationType = "connection"
	ConversationSelf       ConversationType = "self"
	ConversationInvalid    ConversationType = "invalid"
)

// conversationTypeCodes maps the numeric type used on the wire to the local type.
var conversationTypeCodes = map[int]ConversationType{
	0: ConversationGroup,
	1: ConversationSelf,
	2: ConversationOneOnOne,
	3: ConversationConnection,
}

// ConversationTypeFromCode converts the remote numeric conversation type.
// Unknown codes map to ConversationInvalid.
func ConversationTypeFromCode(code int) ConversationType {
	if t, ok := conversationTypeCodes[code]; ok {
		return t
	}
	return ConversationInvalid
}

// Code returns the wire code of the type, or -1 for ConversationInvalid.
func (t ConversationType) Code() int {
	for code, ct := range conversationTypeCodes {
		if ct == t {
			return code
		}
	}
	return -1
}

// IsPairwise reports whether conversations of this type belong to exactly
// one user pair and are therefore keyed by [PairKey].
func (t ConversationType) IsPairwise() bool {
	return t == ConversationOneOnOne || t == ConversationConnection
}

// DirtyFields is a bit set of locally modified attributes that the remote
// side has not acknowledged yet.
type DirtyFields uint32

const (
	DirtyCreate DirtyFields = 1 << iota
	DirtyName
	DirtyAddParticipants
	DirtyRemoveParticipants
	DirtyArchived
)

// DirtyNone is the empty set.
const DirtyNone DirtyFields = 0

// Has reports whether every bit of f is set.
func (d DirtyFields) Has(f DirtyFields) bool {
	return f != 0 && d&f == f
}

// Participant is one entry of the conversation membership set. Entries are
// never removed; leaving flips Active so that an older join can not
// resurrect a newer leave.
type Participant struct {
	UserID    string    `json:"user_id"`
	Active    bool      `json:"active"`
	ChangedAt time.Time `json:"changed_at"`
}

// Conversation is the local representation of a remote conversation.
type Conversation struct {
	// LocalID identifies the entity before and after it gets a remote id.
	LocalID string `json:"local_id"`

	// RemoteID is nil until the remote side has assigned an identifier.
	// Once set it never changes.
	RemoteID *string `json:"remote_id,omitempty"`

	Type    ConversationType `json:"type"`
	Name    string           `json:"name"`
	Creator string           `json:"creator,omitempty"`

	// OtherUserID and PairKey are set for pairwise conversations only.
	OtherUserID string `json:"other_user_id,omitempty"`
	PairKey     string `json:"pair_key,omitempty"`

	// LastModified is the highest server timestamp applied to the entity.
	LastModified time.Time `json:"last_modified"`
	// NameModified is the server timestamp of the applied name.
	NameModified time.Time `json:"name_modified"`
	// ArchivedModified is the server timestamp of the applied archive flag.
	ArchivedModified time.Time `json:"archived_modified"`

	Participants []Participant `json:"participants"`

	Archived bool `json:"archived"`
	Left     bool `json:"left"`

	Dirty         DirtyFields `json:"dirty"`
	PendingAdd    []string    `json:"pending_add,omitempty"`
	PendingRemove []string    `json:"pending_remove,omitempty"`

	// NeedsRefetch is set when the remote side rejected a write as stale.
	NeedsRefetch bool `json:"needs_refetch"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RemoteIDString returns the remote id or an empty string.
func (c *Conversation) RemoteIDString() string {
	if c.RemoteID == nil {
		return ""
	}
	return *c.RemoteID
}

// HasRemoteID reports whether the remote side knows the conversation.
func (c *Conversation) HasRemoteID() bool {
	return c.RemoteID != nil && *c.RemoteID != ""
}

// IsDirty reports whether any local change awaits acknowledgement.
func (c *Conversation) IsDirty() bool {
	return c.Dirty != DirtyNone
}

// ActiveParticipants returns the ids of current members in join order.
func (c *Conversation) ActiveParticipants() []string {
	ids := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p.Active {
			ids = append(ids, p.UserID)
		}
	}
	return ids
}

// SetParticipant records a membership change for userID at ts. It returns
// false without touching the set when an equal or newer change is already
// recorded for that user.
func (c *Conversation) SetParticipant(userID string, active bool, ts time.Time) bool {
	for i := range c.Participants {
		p := &c.Participants[i]
		if p.UserID != userID {
			continue
		}
		if !ts.After(p.ChangedAt) {
			return false
		}
		p.Active = active
		p.ChangedAt = ts
		return true
	}
	c.Participants = append(c.Participants, Participant{UserID: userID, Active: active, ChangedAt: ts})
	return true
}

// Touch advances LastModified to ts if ts is newer.
func (c *Conversation) Touch(ts time.Time) bool {
	if ts.After(c.LastModified) {
		c.LastModified = ts
		return true
	}
	return false
}

// MarkDirty sets bits in the dirty set.
func (c *Conversation) MarkDirty(f DirtyFields) {
	c.Dirty |= f
}

// ClearDirty removes bits from the dirty set.
func (c *Conversation) ClearDirty(f DirtyFields) {
	c.Dirty &^= f
}

// AddPending queues userIDs for a remote add, dropping them from a queued remove.
func (c *Conversation) AddPending(userIDs ...string) {
	for _, id := range userIDs {
		c.PendingRemove = slices.DeleteFunc(c.PendingRemove, func(s string) bool { return s == id })
		if !slices.Contains(c.PendingAdd, id) {
			c.PendingAdd = append(c.PendingAdd, id)
		}
	}
	c.syncPendingBits()
}

// RemovePending queues userIDs for a remote removal, dropping them from a queued add.
func (c *Conversation) RemovePending(userIDs ...string) {
	for _, id := range userIDs {
		c.PendingAdd = slices.DeleteFunc(c.PendingAdd, func(s string) bool { return s == id })
		if !slices.Contains(c.PendingRemove, id) {
			c.PendingRemove = append(c.PendingRemove, id)
		}
	}
	c.syncPendingBits()
}

// AckPendingAdd drops userIDs from the queued adds once the remote side
// confirmed them.
func (c *Conversation) AckPendingAdd(userIDs ...string) {
	c.PendingAdd = slices.DeleteFunc(c.PendingAdd, func(s string) bool { return slices.Contains(userIDs, s) })
	c.syncPendingBits()
}

// AckPendingRemove drops userIDs from the queued removals once the remote
// side confirmed them.
func (c *Conversation) AckPendingRemove(userIDs ...string) {
	c.PendingRemove = slices.DeleteFunc(c.PendingRemove, func(s string) bool { return slices.Contains(userIDs, s) })
	c.syncPendingBits()
}

func (c *Conversation) syncPendingBits() {
	c.ClearDirty(DirtyAddParticipants | DirtyRemoveParticipants)
	if len(c.PendingAdd) > 0 {
		c.MarkDirty(DirtyAddParticipants)
	}
	if len(c.PendingRemove) > 0 {
		c.MarkDirty(DirtyRemoveParticipants)
	}
}

// PairKey returns the order-independent key of a user pair.
func PairKey(a, b string) string {
	ids := []string{strings.ToLower(a), strings.ToLower(b)}
	sort.Strings(ids)
	return ids[0] + ":" + ids[1]
}
