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

// Package history maintains the fixed-length rolling windows of recent
// samples that back the dashboard charts.
package history

// Ring is a fixed-capacity sliding window over samples. Its length is always
// equal to its capacity: the buffer is pre-filled at construction and every
// push overwrites the oldest slot in place, so a push never shifts elements
// and never allocates.
type Ring[T any] struct {
	buf  []T
	head int // index of the oldest element
}

// NewRing creates a ring of the given capacity with every slot set to fill.
// Capacity must be at least 1.
func NewRing[T any](capacity int, fill T) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	buf := make([]T, capacity)
	for i := range buf {
		buf[i] = fill
	}
	return &Ring[T]{buf: buf}
}

// Push evicts the oldest sample and appends v as the newest.
func (r *Ring[T]) Push(v T) {
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
}

// Values returns the window contents oldest to newest. The returned slice is
// freshly allocated; callers may retain or mutate it freely.
func (r *Ring[T]) Values() []T {
	out := make([]T, len(r.buf))
	n := copy(out, r.buf[r.head:])
	copy(out[n:], r.buf[:r.head])
	return out
}

// Latest returns the most recently pushed sample.
func (r *Ring[T]) Latest() T {
	idx := r.head - 1
	if idx < 0 {
		idx = len(r.buf) - 1
	}
	return r.buf[idx]
}

// Capacity returns the fixed window size.
func (r *Ring[T]) Capacity() int {
	return len(r.buf)
}
