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
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phuonguno98/unodash/internal/snapshot"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHub_PublishAndLatest(t *testing.T) {
	hub := NewHub(discardLogger())

	if hub.Latest() != nil {
		t.Error("Latest() before any publish = non-nil, want nil")
	}

	snap := &snapshot.Snapshot{Timestamp: time.Now()}
	hub.Publish(snap)

	if hub.Latest() != snap {
		t.Error("Latest() did not return the published snapshot")
	}
}

func TestHub_SubscribeDelivery(t *testing.T) {
	hub := NewHub(discardLogger())

	id, ch := hub.Subscribe(2)
	defer hub.Unsubscribe(id)

	if hub.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", hub.SubscriberCount())
	}

	snap := &snapshot.Snapshot{Timestamp: time.Now()}
	hub.Publish(snap)

	select {
	case got := <-ch:
		if got != snap {
			t.Error("delivered snapshot does not match the published one")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Timeout waiting for snapshot delivery")
	}
}

func TestHub_PublishWithoutSubscribersIsNoOp(t *testing.T) {
	hub := NewHub(discardLogger())

	// A hub with no attached views swallows the publish. The snapshot is
	// still retained for pull-style consumers.
	snap := &snapshot.Snapshot{Timestamp: time.Now()}
	hub.Publish(snap)

	if hub.Latest() != snap {
		t.Error("Latest() must retain the snapshot even with no subscribers")
	}
}

func TestHub_SlowSubscriberDropsSnapshots(t *testing.T) {
	hub := NewHub(discardLogger())

	id, ch := hub.Subscribe(1)
	defer hub.Unsubscribe(id)

	first := &snapshot.Snapshot{Timestamp: time.Now()}
	second := &snapshot.Snapshot{Timestamp: time.Now().Add(time.Second)}

	// Nobody reads the channel; the second publish must not block.
	done := make(chan struct{})
	go func() {
		hub.Publish(first)
		hub.Publish(second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// Only the first snapshot fit in the buffer.
	if got := <-ch; got != first {
		t.Error("buffered snapshot should be the first published")
	}
	if hub.Latest() != second {
		t.Error("Latest() should be the most recent publish")
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(discardLogger())

	id, ch := hub.Subscribe(1)
	hub.Unsubscribe(id)

	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d after unsubscribe, want 0", hub.SubscriberCount())
	}

	if _, open := <-ch; open {
		t.Error("channel still open after unsubscribe")
	}

	// Double unsubscribe is harmless.
	hub.Unsubscribe(id)
}
