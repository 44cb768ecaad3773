// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrDecoding is returned when an event or page body can not be decoded.
	ErrDecoding = errors.New("decoding error")

	// ErrNotFound is returned when an event targets a conversation that is
	// not known locally. It is not fatal to event processing.
	ErrNotFound = errors.New("conversation not found")

	// ErrTransport wraps failures of the remote service that are not a
	// conflict: connectivity, timeouts, 5xx responses.
	ErrTransport = errors.New("transport error")

	// ErrConflict is returned when the remote side rejected a request as stale.
	ErrConflict = errors.New("remote conflict")

	// ErrWrongPhase is returned when an operation is called in a sync phase
	// that does not allow it.
	ErrWrongPhase = errors.New("operation not allowed in current sync phase")

	ErrVersionIsNotSpecified = errors.New("build version is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrConversationLeft    = errors.New("conversation was left")
	ErrPairwiseImmutable   = errors.New("pairwise conversations can not be edited")
)
