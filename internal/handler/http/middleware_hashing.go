// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/utils"
)

// bodySignatureHeader carries the hex HMAC-SHA256 of the request body.
const bodySignatureHeader = "HashSHA256"

// checkBodySignature rejects requests whose body does not match the
// signature header. Responses are signed the same way. Without a hash key
// it is a no-op.
func (h *Handler) checkBodySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		signature := r.Header.Get(bodySignatureHeader)
		if signature == "" {
			log.Err(ErrMissingBodySignature).Str("func", "*Handler.checkBodySignature").Send()
			utils.WriteError(w, ErrMissingBodySignature.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkBodySignature").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, signature) {
			log.Error().Str("func", "*Handler.checkBodySignature").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrInvalidBodySignature.Error(), http.StatusBadRequest)
			return
		}

		sw := &signingResponseWriter{ResponseWriter: w, hasher: h.hasher}
		next.ServeHTTP(sw, r)
		sw.flush()
	})
}

// signingResponseWriter buffers the response to sign it before sending.
type signingResponseWriter struct {
	http.ResponseWriter
	hasher *utils.Hasher
	status int
	buf    bytes.Buffer
}

func (w *signingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *signingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.buf.Write(b)
}

func (w *signingResponseWriter) flush() {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.buf.Len() > 0 {
		w.Header().Set(bodySignatureHeader, w.hasher.SumHex(w.buf.Bytes()))
	}
	w.ResponseWriter.WriteHeader(w.status)
	_, _ = w.ResponseWriter.Write(w.buf.Bytes())
}
