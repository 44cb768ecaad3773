// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSubjectFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "operator")

	sub, ok := GetSubjectFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "operator", sub)

	_, ok = GetSubjectFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetSubjectFromContext(context.WithValue(context.Background(), SubjectCtxKey, 42))
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "subject", SubjectCtxKey.String())
}
