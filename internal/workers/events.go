// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/pukapp/convsync/internal/adapter"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/service"
	"github.com/pukapp/convsync/models"
)

// ErrEventStreamGap is reported to the gap handler when the stream had to
// reconnect and live events may have been missed.
var ErrEventStreamGap = errors.New("event stream reconnected, live events may be missing")

const (
	minReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay = 30 * time.Second
)

type eventStreamWorker struct {
	stream    adapter.EventStream
	processor service.EventProcessor
	onGap     func(err error)

	minDelay time.Duration
	maxDelay time.Duration

	logger *logger.Logger
}

// NewEventStreamWorker feeds live notifications from stream into processor
// and reconnects with exponential backoff. onGap is called after every
// reconnect; it may be nil.
func NewEventStreamWorker(stream adapter.EventStream, processor service.EventProcessor, onGap func(err error), logger *logger.Logger) Worker {
	return &eventStreamWorker{
		stream:    stream,
		processor: processor,
		onGap:     onGap,
		minDelay:  minReconnectDelay,
		maxDelay:  maxReconnectDelay,
		logger:    logger,
	}
}

func (w *eventStreamWorker) Run(ctx context.Context) error {
	delay := w.minDelay
	connected := false

	for {
		if connected && w.onGap != nil {
			w.onGap(ErrEventStreamGap)
		}

		started := time.Now()
		err := w.stream.Run(ctx, w.handle)
		connected = true
		if ctx.Err() != nil {
			return nil
		}

		// a connection that lived longer than the max delay was healthy
		if time.Since(started) > w.maxDelay {
			delay = w.minDelay
		}

		w.logger.Warn().Err(err).
			Str("func", "*eventStreamWorker.Run").
			Dur("retry_in", delay).
			Msg("event stream disconnected")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		delay = min(delay*2, w.maxDelay)
	}
}

func (w *eventStreamWorker) handle(ctx context.Context, events []models.SyncEvent) error {
	changes, err := w.processor.ProcessEvents(ctx, events, false)
	if err != nil {
		return err
	}

	w.logger.Debug().
		Int("events", len(events)).
		Int("changes", len(changes)).
		Msg("notification processed")
	return nil
}
