// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/handler"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/notify"
	"github.com/pukapp/convsync/internal/server"
	"github.com/pukapp/convsync/internal/service"
	"github.com/pukapp/convsync/internal/store"
	"github.com/pukapp/convsync/internal/workers"
	"github.com/pukapp/convsync/models"
)

type App struct {
	db       *store.DB
	services *service.Services
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens the store and wires every component. The caller owns the
// returned App and must Run it; Run closes the store on exit.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	db, err := store.NewStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(db, cfg, buildInfo, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(db *store.DB, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	dispatcher := notify.NewDispatcher(notify.DefaultBufferSize, notify.DefaultHistorySize, logger)

	services, err := service.NewServices(db, serverAdapter, dispatcher, *cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, dispatcher, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	ws := []workers.Worker{
		dispatcher,
		workers.NewSyncWorker(services.SyncJob, cfg.Workers),
		srv,
	}

	if cfg.Adapter.EventsAddress != "" {
		stream, err := adapter.NewWebsocketEventStream(cfg.Adapter, serverAdapter.Token, logger)
		if err != nil {
			return nil, fmt.Errorf("create event stream: %w", err)
		}
		ws = append(ws, workers.NewEventStreamWorker(stream, services.Events, restartOnGap(services), logger))
	} else {
		logger.Warn().Msg("no events address configured, live events are disabled")
	}

	return &App{
		db:       db,
		services: services,
		workers:  workers.NewWorkers(logger, ws...),
		logger:   logger,
	}, nil
}

// restartOnGap forces a new slow sync after the event stream lost
// events. Live events are queued until it completes.
func restartOnGap(services *service.Services) func(err error) {
	return func(err error) {
		services.Phases.Fail(err)
		services.SyncJob.Trigger()
	}
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Err(err).Msg("closing local storage")
		}
	}()

	a.logger.Info().
		Str("version", a.services.AppInfo.GetAppInfo(ctx).BuildVersion()).
		Msg("convsync started")

	err := a.workers.Run(ctx)

	a.logger.Info().Msg("convsync stopped")
	return err
}

var _ Client = (*App)(nil)

func (a *App) workersList() []workers.Worker {
	return a.workers.List()
}
