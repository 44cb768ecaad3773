// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Get("/api/version", h.getVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync/status", h.getSyncStatus)
		r.Post("/api/sync/trigger", h.triggerSync)
		r.Get("/api/changes", h.getRecentChanges)

		r.Get("/api/conversations", h.listConversations)
		r.Get("/api/conversations/{id}", h.getConversation)
		r.Delete("/api/conversations/{id}/members/{userID}", h.removeMember)

		// routes with a request body
		r.Group(func(r chi.Router) {
			r.Use(h.checkBodySignature)

			r.Post("/api/conversations", h.createConversation)
			r.Put("/api/conversations/{id}/name", h.renameConversation)
			r.Post("/api/conversations/{id}/members", h.addMembers)
			r.Put("/api/conversations/{id}/archived", h.setArchived)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
