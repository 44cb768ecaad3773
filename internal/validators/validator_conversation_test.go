// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/pukapp/convsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewConversationValidator
// ---------------------------------------------------------------------------

func TestNewConversationValidator(t *testing.T) {
	v := NewConversationValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewConversationValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "create value", obj: models.CreateConversationRequest{Name: "team"}},
		{name: "create pointer", obj: &models.CreateConversationRequest{Name: "team"}},
		{name: "rename value", obj: models.RenameConversationRequest{Name: "team"}},
		{name: "rename pointer", obj: &models.RenameConversationRequest{Name: "team"}},
		{name: "members value", obj: models.MembersRequest{Users: []string{"u1"}}},
		{name: "members pointer", obj: &models.MembersRequest{Users: []string{"u1"}}},
		{name: "unsupported", obj: "text", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_CreateConversationRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateConversationRequest(t *testing.T) {
	v := NewConversationValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateConversationRequest
		fields  []string
		wantErr error
	}{
		{name: "empty request is a valid unnamed group", req: models.CreateConversationRequest{}},
		{name: "named with users", req: models.CreateConversationRequest{Name: "team", Users: []string{"u1", "u2"}}},
		{name: "blank name", req: models.CreateConversationRequest{Name: "   "}, wantErr: ErrInvalidName},
		{name: "name too long", req: models.CreateConversationRequest{Name: strings.Repeat("x", MaxNameLength+1)}, wantErr: ErrNameTooLong},
		{name: "name required when scoped", req: models.CreateConversationRequest{}, fields: []string{FieldName}, wantErr: ErrInvalidName},
		{name: "users required when scoped", req: models.CreateConversationRequest{}, fields: []string{FieldUsers}, wantErr: ErrEmptyUsers},
		{name: "duplicate user", req: models.CreateConversationRequest{Users: []string{"u1", "u1"}}, wantErr: ErrDuplicateUserID},
		{name: "blank user", req: models.CreateConversationRequest{Users: []string{"u1", ""}}, wantErr: ErrInvalidUserID},
		{name: "unknown field", req: models.CreateConversationRequest{}, fields: []string{"archived"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_RenameConversationRequest
// ---------------------------------------------------------------------------

func TestValidate_RenameConversationRequest(t *testing.T) {
	v := NewConversationValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RenameConversationRequest{Name: "ok"}))
	assert.NoError(t, v.Validate(ctx, models.RenameConversationRequest{Name: strings.Repeat("ü", MaxNameLength)}))
	assert.ErrorIs(t, v.Validate(ctx, models.RenameConversationRequest{}), ErrInvalidName)
	assert.ErrorIs(t, v.Validate(ctx, models.RenameConversationRequest{Name: "\xff"}), ErrInvalidName)
	assert.NoError(t, v.Validate(ctx, models.RenameConversationRequest{}, FieldOptionalName))
	assert.ErrorIs(t, v.Validate(ctx, models.RenameConversationRequest{Name: "ok"}, FieldUsers), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_MembersRequest
// ---------------------------------------------------------------------------

func TestValidate_MembersRequest(t *testing.T) {
	v := NewConversationValidator()
	ctx := context.Background()

	tooMany := make([]string, MaxUsersPerRequest+1)
	for i := range tooMany {
		tooMany[i] = strings.Repeat("u", i+1)
	}

	assert.NoError(t, v.Validate(ctx, models.MembersRequest{Users: []string{"u1", "u2"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.MembersRequest{}), ErrEmptyUsers)
	assert.ErrorIs(t, v.Validate(ctx, models.MembersRequest{Users: tooMany}), ErrTooManyUsers)
	assert.NoError(t, v.Validate(ctx, models.MembersRequest{}, FieldOptionalUsers))

	err := v.Validate(ctx, models.MembersRequest{Users: []string{"u1", " "}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.Contains(t, err.Error(), "index 1")
}
