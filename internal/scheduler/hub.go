/*
 * MIT License
 *
 * Copyright (c) 2026 Nguyen Thanh Phuong
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package scheduler

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phuonguno98/unodash/internal/snapshot"
)

// Hub fans assembled snapshots out to presentation-layer subscribers and
// retains the most recent one for pull-style consumers.
//
// Publishing never blocks: a subscriber that is gone or not keeping up
// simply misses snapshots. A hub with no subscribers swallows the publish
// silently; that is the normal state while no view is attached and during
// shutdown, not an error.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]chan *snapshot.Snapshot
	latest *snapshot.Snapshot
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]chan *snapshot.Snapshot),
		logger: logger,
	}
}

// Subscribe registers a new subscriber and returns its id together with the
// delivery channel. buffer controls how many snapshots may queue before
// newer ones are dropped for this subscriber.
func (h *Hub) Subscribe(buffer int) (uuid.UUID, <-chan *snapshot.Snapshot) {
	if buffer < 1 {
		buffer = 1
	}

	id := uuid.New()
	ch := make(chan *snapshot.Snapshot, buffer)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	h.logger.Debug("Subscriber registered", "id", id)
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown ids are
// ignored.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	ch, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
		close(ch)
	}
	h.mu.Unlock()

	if ok {
		h.logger.Debug("Subscriber removed", "id", id)
	}
}

// Publish stores s as the latest snapshot and delivers it to every
// subscriber without blocking.
func (h *Hub) Publish(s *snapshot.Snapshot) {
	h.mu.Lock()
	h.latest = s
	for id, ch := range h.subs {
		select {
		case ch <- s:
		default:
			h.logger.Debug("Subscriber not keeping up, snapshot dropped", "id", id)
		}
	}
	h.mu.Unlock()
}

// Latest returns the most recently published snapshot, or nil before the
// first tick completes.
func (h *Hub) Latest() *snapshot.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
