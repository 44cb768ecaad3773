// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/service"
	"github.com/pukapp/convsync/internal/utils"
	"github.com/pukapp/convsync/models"
)

// ChangeHistory returns recently applied changes, newest first.
type ChangeHistory interface {
	Recent(limit int) []models.AppliedChange
}

type Handler struct {
	services *service.Services
	changes  ChangeHistory

	// signKey and hasher are empty when no hash key is configured; token
	// and body signature checks are skipped then.
	signKey     string
	tokenIssuer string
	hasher      *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, changes ChangeHistory, appCfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services:    services,
		changes:     changes,
		signKey:     appCfg.HashKey,
		tokenIssuer: appCfg.TokenIssuer,
		logger:      logger,
	}
	if appCfg.HashKey != "" {
		h.hasher = utils.NewHasher(appCfg.HashKey)
	}

	logger.Info().Bool("auth", h.signKey != "").Msg("http handler created")
	return h
}
