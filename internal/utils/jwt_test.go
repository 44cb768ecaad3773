// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "user-123", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("convsync", "user-456", time.Minute, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("convsync", "user-456", -time.Second, "key")
	require.NoError(t, err)
	foreign, err := GenerateJWTToken("other", "user-456", time.Minute, "key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		key     string
		wantErr bool
	}{
		{"valid", valid.SignedString, "key", false},
		{"wrong key", valid.SignedString, "other-key", true},
		{"expired", expired.SignedString, "key", true},
		{"wrong issuer", foreign.SignedString, "key", true},
		{"malformed", "not.a.token", "key", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ValidateAndParseJWTToken(tt.token, tt.key, "convsync")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-456", token.Subject)
		})
	}
}

func TestParseSubjectFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("remote", "self-user", time.Hour, "remote-secret")
	require.NoError(t, err)

	sub, err := ParseSubjectFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "self-user", sub)

	_, err = ParseSubjectFromJWT("garbage")
	assert.Error(t, err)
}
