// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the bearer token is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	ErrMissingBodySignature = errors.New("missing body signature")
	ErrInvalidBodySignature = errors.New("body signature mismatch")

	errInvalidJSON  = errors.New("invalid JSON was passed")
	errInvalidLimit = errors.New("limit must be a positive integer")
)
