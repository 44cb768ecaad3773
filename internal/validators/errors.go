// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName     = errors.New("invalid conversation name")
	ErrNameTooLong     = errors.New("conversation name is too long")
	ErrEmptyUsers      = errors.New("users list cannot be empty")
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrDuplicateUserID = errors.New("duplicate user ID")
	ErrTooManyUsers    = errors.New("too many users")
)
