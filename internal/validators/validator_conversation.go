// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pukapp/convsync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the conversation name.
	FieldName = "name"

	// FieldOptionalName accepts an empty name but otherwise applies the
	// FieldName rules.
	FieldOptionalName = "optional_name"

	// FieldUsers targets the list of user ids of a request.
	FieldUsers = "users"

	// FieldOptionalUsers accepts an empty users list but otherwise applies
	// the FieldUsers rules.
	FieldOptionalUsers = "optional_users"
)

const (
	// MaxNameLength is the longest accepted conversation name, in runes.
	MaxNameLength = 256

	// MaxUsersPerRequest caps the users of a single create or add request.
	MaxUsersPerRequest = 128
)

// ConversationValidator implements the Validator interface for local
// conversation edit requests: CreateConversationRequest,
// RenameConversationRequest and MembersRequest.
type ConversationValidator struct {
}

// NewConversationValidator constructs a new ConversationValidator
// and returns it as the Validator interface.
func NewConversationValidator() Validator {
	return &ConversationValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ConversationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateConversationRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateConversationRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.RenameConversationRequest:
		return v.validateRenameRequest(ctx, value, fields...)
	case *models.RenameConversationRequest:
		return v.validateRenameRequest(ctx, *value, fields...)

	case models.MembersRequest:
		return v.validateMembersRequest(ctx, value, fields...)
	case *models.MembersRequest:
		return v.validateMembersRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateRequest defaults to an optional name and optional users:
// a group may be created empty and unnamed.
func (v *ConversationValidator) validateCreateRequest(_ context.Context, request models.CreateConversationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOptionalName, FieldOptionalUsers}
	}

	for _, f := range fields {
		switch f {
		case FieldName, FieldOptionalName:
			if err := validateName(request.Name, f == FieldOptionalName); err != nil {
				return err
			}
		case FieldUsers, FieldOptionalUsers:
			if err := validateUsers(request.Users, f == FieldOptionalUsers); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ConversationValidator) validateRenameRequest(_ context.Context, request models.RenameConversationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName, FieldOptionalName:
			if err := validateName(request.Name, f == FieldOptionalName); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ConversationValidator) validateMembersRequest(_ context.Context, request models.MembersRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsers}
	}

	for _, f := range fields {
		switch f {
		case FieldUsers, FieldOptionalUsers:
			if err := validateUsers(request.Users, f == FieldOptionalUsers); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string, optional bool) error {
	if name == "" && optional {
		return nil
	}
	if strings.TrimSpace(name) == "" || !utf8.ValidString(name) {
		return ErrInvalidName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateUsers(users []string, optional bool) error {
	if len(users) == 0 {
		if optional {
			return nil
		}
		return ErrEmptyUsers
	}
	if len(users) > MaxUsersPerRequest {
		return ErrTooManyUsers
	}

	seen := make(map[string]struct{}, len(users))
	for i, id := range users {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidUserID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateUserID)
		}
		seen[id] = struct{}{}
	}
	return nil
}
