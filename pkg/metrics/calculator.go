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

import "math"

// CalculateUsagePercent calculates utilization percentage from used/total.
// Formula: (Used / Total) × 100. Returns 0 when total is zero.
func CalculateUsagePercent(used, total uint64) float64 {
	if total == 0 {
		return 0.0
	}
	return (float64(used) / float64(total)) * 100.0
}

// SeriesMax returns the maximum value of a history series, clamped to a
// minimum of 1. Charts scale their y-axis to this value; the clamp avoids a
// degenerate zero-height chart when every sample is zero.
func SeriesMax(series []float64) float64 {
	max := 0.0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	if max < 1.0 {
		return 1.0
	}
	return max
}

// Round2 rounds a value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100.0) / 100.0
}

// BytesToGiB converts a byte count to GiB, rounded to two decimal places.
func BytesToGiB(b uint64) float64 {
	return Round2(float64(b) / BytesPerGiB)
}
