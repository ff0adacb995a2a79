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

package metrics

// RateCounter converts monotonically increasing byte counters into per-tick
// throughput deltas. The very first observation only seeds the baseline:
// reporting a delta against process start would show the host's entire
// cumulative traffic as a single spike.
type RateCounter struct {
	lastRx uint64
	lastTx uint64
	// seeded distinguishes "never observed" from a legitimately zero
	// counter. Value comparison against zero is not a safe sentinel.
	seeded bool
}

// NewRateCounter creates an unseeded rate counter.
func NewRateCounter() *RateCounter {
	return &RateCounter{}
}

// Seeded reports whether a baseline observation has been recorded.
func (r *RateCounter) Seeded() bool {
	return r.seeded
}

// Observe records the current cumulative receive/transmit totals and returns
// the throughput since the previous observation in KiB per tick.
//
// The first call seeds the baseline and returns ok=false with no sample.
// A counter regression (interface reset, driver reload) clamps the affected
// delta to zero instead of underflowing.
func (r *RateCounter) Observe(totalRx, totalTx uint64) (NetworkSample, bool) {
	if !r.seeded {
		r.lastRx = totalRx
		r.lastTx = totalTx
		r.seeded = true
		return NetworkSample{}, false
	}

	sample := NetworkSample{
		Download: float64(saturatingSub(totalRx, r.lastRx)) / BytesPerKiB,
		Upload:   float64(saturatingSub(totalTx, r.lastTx)) / BytesPerKiB,
	}

	r.lastRx = totalRx
	r.lastTx = totalTx

	return sample, true
}

// saturatingSub returns a-b, clamped to zero when b > a.
func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
