// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/utils"
	"github.com/pukapp/convsync/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Err(errInvalidLimit).Str("func", "*Handler.listConversations").Str("limit", raw).Send()
			utils.WriteError(w, errInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = min(n, maxListLimit)
	}
	after := r.URL.Query().Get("after")

	convs, err := h.services.Editor.List(r.Context(), limit, after)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listConversations", err)
		return
	}

	response := models.ConversationListResponse{Conversations: convs}
	if len(convs) == limit {
		response.Next = convs[len(convs)-1].LocalID
	}
	if response.Conversations == nil {
		response.Conversations = []models.Conversation{}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.services.Editor.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getConversation", err)
		return
	}

	utils.WriteJSON(w, conv, http.StatusOK)
}

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateConversationRequest
	if !decodeBody(w, r, "*Handler.createConversation", &req) {
		return
	}

	conv, err := h.services.Editor.CreateGroup(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.createConversation", err)
		return
	}

	utils.WriteJSON(w, conv, http.StatusCreated)
}

func (h *Handler) renameConversation(w http.ResponseWriter, r *http.Request) {
	var req models.RenameConversationRequest
	if !decodeBody(w, r, "*Handler.renameConversation", &req) {
		return
	}

	conv, err := h.services.Editor.Rename(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.renameConversation", err)
		return
	}

	utils.WriteJSON(w, conv, http.StatusOK)
}

func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request) {
	var req models.MembersRequest
	if !decodeBody(w, r, "*Handler.addMembers", &req) {
		return
	}

	conv, err := h.services.Editor.AddMembers(r.Context(), chi.URLParam(r, "id"), req.Users)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.addMembers", err)
		return
	}

	utils.WriteJSON(w, conv, http.StatusOK)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	conv, err := h.services.Editor.RemoveMembers(r.Context(), chi.URLParam(r, "id"), []string{userID})
	if err != nil {
		h.writeServiceError(w, r, "*Handler.removeMember", err)
		return
	}

	utils.WriteJSON(w, conv, http.StatusOK)
}

func (h *Handler) setArchived(w http.ResponseWriter, r *http.Request) {
	var req models.ArchiveRequest
	if !decodeBody(w, r, "*Handler.setArchived", &req) {
		return
	}

	conv, err := h.services.Editor.SetArchived(r.Context(), chi.URLParam(r, "id"), req.Archived)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.setArchived", err)
		return
	}

	utils.WriteJSON(w, conv, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromStatus(err, status), status)
}
