// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/pukapp/convsync/models"
)

// pendingEvents parks events for conversations not known locally yet,
// keyed by remote conversation id. Both the number of events per
// conversation and the number of conversations are capped; on overflow the
// oldest event, respectively the oldest conversation, is dropped.
type pendingEvents struct {
	mu         sync.Mutex
	perKey     int
	maxKeys    int
	events     map[string][]models.SyncEvent
	keyOrder   []string
	totalCount int
}

func newPendingEvents(perKey, maxKeys int) *pendingEvents {
	return &pendingEvents{
		perKey:  perKey,
		maxKeys: maxKeys,
		events:  make(map[string][]models.SyncEvent),
	}
}

// add parks event under remoteID and returns the number of events dropped
// to make room.
func (p *pendingEvents) add(remoteID string, event models.SyncEvent) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	dropped := 0
	queue, ok := p.events[remoteID]
	if !ok {
		if len(p.keyOrder) >= p.maxKeys {
			oldest := p.keyOrder[0]
			p.keyOrder = p.keyOrder[1:]
			dropped += len(p.events[oldest])
			p.totalCount -= len(p.events[oldest])
			delete(p.events, oldest)
		}
		p.keyOrder = append(p.keyOrder, remoteID)
	}

	if len(queue) >= p.perKey {
		n := len(queue) - p.perKey + 1
		queue = queue[n:]
		dropped += n
		p.totalCount -= n
	}
	p.events[remoteID] = append(queue, event)
	p.totalCount++

	return dropped
}

// take removes and returns the events parked under remoteID, oldest first.
func (p *pendingEvents) take(remoteID string) []models.SyncEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	queue, ok := p.events[remoteID]
	if !ok {
		return nil
	}
	delete(p.events, remoteID)
	for i, k := range p.keyOrder {
		if k == remoteID {
			p.keyOrder = append(p.keyOrder[:i], p.keyOrder[i+1:]...)
			break
		}
	}
	p.totalCount -= len(queue)
	return queue
}

func (p *pendingEvents) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalCount
}

// ingressQueue holds live events that arrived before the local state was
// ready for them. It is bounded; on overflow the oldest event is dropped.
type ingressQueue struct {
	mu     sync.Mutex
	max    int
	events []models.SyncEvent
}

func newIngressQueue(max int) *ingressQueue {
	return &ingressQueue{max: max}
}

// push appends event and reports whether an older event was dropped.
func (q *ingressQueue) push(event models.SyncEvent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	dropped := false
	if len(q.events) >= q.max {
		q.events = q.events[1:]
		dropped = true
	}
	q.events = append(q.events, event)
	return dropped
}

// drain removes and returns every queued event in arrival order.
func (q *ingressQueue) drain() []models.SyncEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil
	return events
}

func (q *ingressQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// inflightTable allows at most one outstanding request per conversation.
type inflightTable struct {
	mu       sync.Mutex
	requests map[string]string
}

func newInflightTable() *inflightTable {
	return &inflightTable{requests: make(map[string]string)}
}

// tryAcquire reserves localID for requestID. It returns false when another
// request for localID is outstanding.
func (t *inflightTable) tryAcquire(localID, requestID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.requests[localID]; busy {
		return false
	}
	t.requests[localID] = requestID
	return true
}

// release frees localID if it is still held by requestID.
func (t *inflightTable) release(localID, requestID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.requests[localID] == requestID {
		delete(t.requests, localID)
	}
}

func (t *inflightTable) has(localID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.requests[localID]
	return ok
}

func (t *inflightTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}
