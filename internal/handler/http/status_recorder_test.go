// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRecorder(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "implicit ok on write",
			write:      func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"id":"local-1"}`)) },
			wantStatus: http.StatusOK,
			wantSize:   16,
		},
		{
			name: "second status is ignored",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "size accumulates",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte("abc"))
				_, _ = w.Write([]byte("de"))
			},
			wantStatus: http.StatusConflict,
			wantSize:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			rr := httptest.NewRecorder()
			rec := &statusRecorder{ResponseWriter: rr}

			// Act
			tt.write(rec)

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Status())
			assert.Equal(t, tt.wantSize, rec.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}

	require.NoError(t, http.NewResponseController(rec).Flush())
	assert.Same(t, rr, rec.Unwrap())
	assert.True(t, rr.Flushed)
}
