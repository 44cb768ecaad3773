// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/pukapp/convsync/internal/service"
	"github.com/pukapp/convsync/internal/store"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNotFound, http.StatusNotFound},
	{store.ErrNotFound, http.StatusNotFound},
	{service.ErrConversationLeft, http.StatusConflict},
	{service.ErrPairwiseImmutable, http.StatusConflict},
	{service.ErrWrongPhase, http.StatusConflict},
	{store.ErrConversationExists, http.StatusConflict},
	{service.ErrTransport, http.StatusBadGateway},
	{service.ErrConflict, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus hides internal error details from 5xx responses.
func messageFromStatus(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
