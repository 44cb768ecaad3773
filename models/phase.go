// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the synchronization phase of the whole client.
type Phase string

const (
	PhaseUnsynchronized Phase = "unsynchronized"
	PhaseSlowSync       Phase = "slow_sync"
	PhaseQuickSync      Phase = "quick_sync"
	PhaseSynced         Phase = "synced"
	PhaseError          Phase = "error"
)

// EventReady reports whether live events may be applied directly.
func (p Phase) EventReady() bool {
	return p == PhaseQuickSync || p == PhaseSynced
}

// RequestReady reports whether local changes may be pushed to the remote side.
func (p Phase) RequestReady() bool {
	return p == PhaseQuickSync || p == PhaseSynced
}
