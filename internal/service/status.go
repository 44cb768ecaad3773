// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"

	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/models"
)

// phaseTransitions lists the allowed moves of the phase machine. Any phase
// may additionally move to error.
var phaseTransitions = map[models.Phase][]models.Phase{
	models.PhaseUnsynchronized: {models.PhaseSlowSync},
	models.PhaseSlowSync:       {models.PhaseQuickSync},
	models.PhaseQuickSync:      {models.PhaseSynced},
	models.PhaseSynced:         {models.PhaseQuickSync},
	models.PhaseError:          {models.PhaseSlowSync, models.PhaseUnsynchronized},
}

// PhaseMachine is the only writer of the synchronization phase.
type PhaseMachine struct {
	mu      sync.RWMutex
	phase   models.Phase
	lastErr error

	logger *logger.Logger
}

// NewPhaseMachine returns a machine in the unsynchronized phase.
func NewPhaseMachine(logger *logger.Logger) *PhaseMachine {
	return &PhaseMachine{phase: models.PhaseUnsynchronized, logger: logger}
}

// CurrentPhase implements [SyncStatus].
func (m *PhaseMachine) CurrentPhase() models.Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// LastError returns the error that moved the machine to the error phase.
func (m *PhaseMachine) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// BeginSlowSync starts a bulk catch-up from unsynchronized or error.
func (m *PhaseMachine) BeginSlowSync() error {
	return m.transition(models.PhaseSlowSync)
}

// CompleteSlowSync moves to quick_sync once every page has been applied.
func (m *PhaseMachine) CompleteSlowSync() error {
	return m.transition(models.PhaseQuickSync)
}

// MarkSynced records that no local change awaits acknowledgement.
// It is a no-op when already synced.
func (m *PhaseMachine) MarkSynced() error {
	if m.CurrentPhase() == models.PhaseSynced {
		return nil
	}
	return m.transition(models.PhaseSynced)
}

// MarkPending moves from synced back to quick_sync when local changes
// appear. It is a no-op in quick_sync.
func (m *PhaseMachine) MarkPending() error {
	if m.CurrentPhase() == models.PhaseQuickSync {
		return nil
	}
	return m.transition(models.PhaseQuickSync)
}

// Fail moves to the error phase from any phase.
func (m *PhaseMachine) Fail(err error) {
	m.mu.Lock()
	from := m.phase
	m.phase = models.PhaseError
	m.lastErr = err
	m.mu.Unlock()

	m.logger.Err(err).
		Str("from", string(from)).
		Str("phase", string(models.PhaseError)).
		Msg("sync phase changed")
}

// Reset returns to unsynchronized from the error phase.
func (m *PhaseMachine) Reset() error {
	return m.transition(models.PhaseUnsynchronized)
}

func (m *PhaseMachine) transition(to models.Phase) error {
	m.mu.Lock()
	from := m.phase
	allowed := false
	for _, p := range phaseTransitions[from] {
		if p == to {
			allowed = true
			break
		}
	}
	if !allowed {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrWrongPhase, from, to)
	}
	m.phase = to
	if to != models.PhaseError {
		m.lastErr = nil
	}
	m.mu.Unlock()

	m.logger.Info().
		Str("from", string(from)).
		Str("phase", string(to)).
		Msg("sync phase changed")
	return nil
}
