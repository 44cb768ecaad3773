// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/service"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8081"}}

	h, err := NewHandlers(&service.Services{}, nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
