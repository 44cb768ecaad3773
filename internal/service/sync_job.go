// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/models"
)

// defaultSyncInterval is used when Start gets a non-positive interval.
const defaultSyncInterval = 30 * time.Second

type syncJob struct {
	syncer  Syncer
	phases  PhaseController
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	trigger chan struct{}

	// runMu keeps ticker and trigger runs from overlapping with direct
	// RunOnce calls.
	runMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a job that drives syncer through the sync phases.
// The job is idle until Start is called.
func NewSyncJob(syncer Syncer, phases PhaseController, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SyncJob {
	return &syncJob{
		syncer:  syncer,
		phases:  phases,
		adapter: serverAdapter,
		logger:  logger,
		trigger: make(chan struct{}, 1),
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that calls RunOnce every interval and on
// every Trigger. If interval is zero or negative it defaults to 30 seconds.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			case <-j.trigger:
				j.run(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Trigger implements SyncJob.
func (j *syncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

func (j *syncJob) run(ctx context.Context) {
	if err := j.RunOnce(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("func", "*syncJob.run").Msg("sync pass failed")
	}
}

// RunOnce implements SyncJob. A pass catches up with the remote listing when
// needed, then pushes pending local changes and re-fetches conversations
// whose last request conflicted.
func (j *syncJob) RunOnce(ctx context.Context) error {
	j.runMu.Lock()
	defer j.runMu.Unlock()

	if err := j.catchUp(ctx); err != nil {
		return err
	}

	if err := j.pushRequests(ctx); err != nil {
		return err
	}

	if err := j.refetch(ctx); err != nil {
		return err
	}

	stats, err := j.syncer.Stats(ctx)
	if err != nil {
		return err
	}
	if stats.DirtyConversations == 0 && stats.InFlight == 0 {
		return j.phases.MarkSynced()
	}
	return j.phases.MarkPending()
}

// catchUp runs slow sync to completion when the phase requires it.
func (j *syncJob) catchUp(ctx context.Context) error {
	switch j.phases.CurrentPhase() {
	case models.PhaseUnsynchronized, models.PhaseError:
		if err := j.phases.BeginSlowSync(); err != nil {
			return err
		}
	case models.PhaseSlowSync:
	default:
		return nil
	}

	for {
		done, err := j.syncer.SlowSync(ctx)
		if err != nil {
			if ctx.Err() == nil {
				j.phases.Fail(err)
			}
			return fmt.Errorf("slow sync: %w", err)
		}
		if done {
			break
		}
	}

	n, err := j.syncer.GoLive(ctx, j.phases.CompleteSlowSync)
	if err != nil {
		return fmt.Errorf("complete slow sync: %w", err)
	}
	j.logger.Info().Int("events", n).Msg("slow sync completed")
	return nil
}

func (j *syncJob) pushRequests(ctx context.Context) error {
	requests, err := j.syncer.PendingRequests(ctx)
	if err != nil {
		return err
	}

	for _, req := range requests {
		log := j.logger.WithFields("conversation_id", req.LocalID, "operation", string(req.Op))

		result, err := j.adapter.Do(ctx, req)
		if err != nil {
			classified := classifyAdapterError(err)
			if ferr := j.syncer.RequestFailed(ctx, req, classified); ferr != nil {
				log.Err(ferr).Msg("failed to record request failure")
			}
			if errors.Is(classified, context.Canceled) || errors.Is(classified, context.DeadlineExceeded) {
				return classified
			}
			continue
		}

		if err := j.syncer.RequestSucceeded(ctx, req, result); err != nil {
			log.Err(err).Msg("failed to record request success")
		}
	}
	return nil
}

func (j *syncJob) refetch(ctx context.Context) error {
	targets, err := j.syncer.RefetchTargets(ctx)
	if err != nil {
		return err
	}

	for _, remoteID := range targets {
		summary, err := j.adapter.GetConversation(ctx, remoteID)
		if err != nil {
			j.logger.Warn().Err(err).Str("remote_id", remoteID).Msg("failed to re-fetch conversation")
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		if err := j.syncer.ApplyRefetched(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}
