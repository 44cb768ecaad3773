// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/models"
)

const (
	// DefaultBufferSize is the number of changes queued for handlers before
	// Notify starts dropping.
	DefaultBufferSize = 256
	// DefaultHistorySize is the number of recent changes kept for Recent.
	DefaultHistorySize = 100
)

// Handler receives applied changes in the order they were notified.
type Handler func(ctx context.Context, change models.AppliedChange)

// Dispatcher fans applied changes out to subscribed handlers from a single
// goroutine and keeps a ring of the most recent ones. Notify never blocks.
type Dispatcher struct {
	queue chan models.AppliedChange

	mu       sync.RWMutex
	history  []models.AppliedChange
	next     int
	filled   bool
	handlers []Handler

	dropped atomic.Int64

	logger *logger.Logger
}

// NewDispatcher creates a dispatcher. Non-positive sizes fall back to
// DefaultBufferSize and DefaultHistorySize.
func NewDispatcher(bufferSize, historySize int, logger *logger.Logger) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	return &Dispatcher{
		queue:   make(chan models.AppliedChange, bufferSize),
		history: make([]models.AppliedChange, historySize),
		logger:  logger,
	}
}

// Subscribe registers h for every change dispatched after the call.
func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Notify enqueues change. When the queue is full the change is dropped.
func (d *Dispatcher) Notify(change models.AppliedChange) {
	select {
	case d.queue <- change:
	default:
		d.dropped.Add(1)
		d.logger.Warn().
			Str("func", "*Dispatcher.Notify").
			Str("kind", string(change.Kind)).
			Str("conversation_id", change.ConversationLocalID).
			Msg("notification queue full, change dropped")
	}
}

// Dropped returns the number of changes lost to a full queue.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Run dispatches queued changes until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-d.queue:
			d.dispatch(ctx, change)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, change models.AppliedChange) {
	d.mu.Lock()
	d.history[d.next] = change
	d.next = (d.next + 1) % len(d.history)
	if d.next == 0 {
		d.filled = true
	}
	handlers := d.handlers
	d.mu.Unlock()

	d.logger.Debug().
		Str("kind", string(change.Kind)).
		Str("event_type", string(change.EventType)).
		Str("conversation_id", change.ConversationLocalID).
		Msg("conversation changed")

	for _, h := range handlers {
		h(ctx, change)
	}
}

// Recent returns up to limit dispatched changes, newest first.
// A non-positive limit returns the whole history.
func (d *Dispatcher) Recent(limit int) []models.AppliedChange {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := d.next
	if d.filled {
		n = len(d.history)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]models.AppliedChange, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (d.next - i + len(d.history)) % len(d.history)
		out = append(out, d.history[idx])
	}
	return out
}
