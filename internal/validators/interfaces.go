// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks local conversation edit requests before the
// editor turns them into stored changes.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked; otherwise every rule for the value's type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
