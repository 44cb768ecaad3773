// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/internal/utils"
	"github.com/pukapp/convsync/internal/validators"
	"github.com/pukapp/convsync/models"
)

// Services aggregates the components exposed to workers and handlers.
// Syncer and Events are the same transcoder seen through its two contracts.
type Services struct {
	Syncer  Syncer
	Events  EventProcessor
	Phases  *PhaseMachine
	Editor  ConversationEditor
	SyncJob SyncJob
	AppInfo AppInfoService
}

// NewServices wires the transcoder with its collaborators. Local edits
// trigger an immediate sync run.
func NewServices(
	st store.Store,
	serverAdapter adapter.ServerAdapter,
	relay NotificationRelay,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	phases := NewPhaseMachine(logger)
	transcoder := NewTranscoder(st, serverAdapter, phases, relay, cfg.App, cfg.Sync, logger)
	job := NewSyncJob(transcoder, phases, serverAdapter, logger)
	editor := NewLocalEditor(st, validators.NewConversationValidator(), utils.NewUUIDGenerator(), cfg.App, job.Trigger, logger)

	return &Services{
		Syncer:  transcoder,
		Events:  transcoder,
		Phases:  phases,
		Editor:  editor,
		SyncJob: job,
		AppInfo: appInfo,
	}, nil
}
