// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/service"
)

type syncWorker struct {
	job      service.SyncJob
	interval time.Duration
}

// NewSyncWorker runs job for the lifetime of the worker.
func NewSyncWorker(job service.SyncJob, cfg config.Workers) Worker {
	return &syncWorker{job: job, interval: cfg.SyncInterval}
}

func (w *syncWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
	return nil
}
