// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import "errors"

var (
	// ErrMalformedPayload is returned when a payload is not valid JSON or
	// does not match its schema.
	ErrMalformedPayload = errors.New("malformed payload")
)
