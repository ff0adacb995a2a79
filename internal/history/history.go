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

package history

import "github.com/phuonguno98/unodash/pkg/metrics"

// DefaultWindowSize is the number of samples each history window retains.
// At a one second sampling interval this covers one minute of history.
const DefaultWindowSize = 60

// SystemHistory aggregates the rolling windows for CPU utilization, memory
// utilization and network throughput, plus the rate counter that derives
// throughput from cumulative interface byte counters.
//
// It is single-owner mutable state: only the scheduler's tick handler writes
// to it, so no locking is required.
type SystemHistory struct {
	cpu  *Ring[float64]
	mem  *Ring[float64]
	net  *Ring[metrics.NetworkSample]
	rate *metrics.RateCounter
}

// New creates a SystemHistory with zero-filled windows of the given size.
func New(size int) *SystemHistory {
	return &SystemHistory{
		cpu:  NewRing(size, 0.0),
		mem:  NewRing(size, 0.0),
		net:  NewRing(size, metrics.NetworkSample{}),
		rate: metrics.NewRateCounter(),
	}
}

// RecordCPU pushes a CPU utilization sample (percent).
func (h *SystemHistory) RecordCPU(pct float64) {
	h.cpu.Push(pct)
}

// RecordMemory pushes a memory utilization sample (percent).
func (h *SystemHistory) RecordMemory(pct float64) {
	h.mem.Push(pct)
}

// RecordNetwork feeds the cumulative byte totals to the rate counter and
// pushes the derived throughput sample. The first call only seeds the
// counter: no sample is pushed and false is returned, so the network window
// never contains a spurious process-start-to-now spike.
func (h *SystemHistory) RecordNetwork(totalRx, totalTx uint64) bool {
	sample, ok := h.rate.Observe(totalRx, totalTx)
	if !ok {
		return false
	}
	h.net.Push(sample)
	return true
}

// CPU returns the CPU utilization window, oldest to newest.
func (h *SystemHistory) CPU() []float64 {
	return h.cpu.Values()
}

// Memory returns the memory utilization window, oldest to newest.
func (h *SystemHistory) Memory() []float64 {
	return h.mem.Values()
}

// Network returns the throughput window, oldest to newest.
func (h *SystemHistory) Network() []metrics.NetworkSample {
	return h.net.Values()
}

// LatestNetwork returns the most recent throughput sample.
func (h *SystemHistory) LatestNetwork() metrics.NetworkSample {
	return h.net.Latest()
}

// Size returns the fixed window size.
func (h *SystemHistory) Size() int {
	return h.cpu.Capacity()
}
