// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/pukapp/convsync/internal/utils"
	"github.com/pukapp/convsync/models"
)

// syncStatus extends the engine stats with the last sync failure.
type syncStatus struct {
	models.SyncStatusResponse
	LastError string `json:"last_error,omitempty"`
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.Syncer.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getSyncStatus", err)
		return
	}

	response := syncStatus{SyncStatusResponse: stats}
	if h.services.Phases != nil {
		if lastErr := h.services.Phases.LastError(); lastErr != nil {
			response.LastError = lastErr.Error()
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	h.services.SyncJob.Trigger()
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) getRecentChanges(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.WriteError(w, errInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = n
	}

	changes := []models.AppliedChange{}
	if h.changes != nil {
		changes = append(changes, h.changes.Recent(limit)...)
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}
