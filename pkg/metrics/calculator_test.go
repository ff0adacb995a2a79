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

import (
	"math"
	"testing"
)

func TestCalculateUsagePercent(t *testing.T) {
	tests := []struct {
		name     string
		used     uint64
		total    uint64
		expected float64
	}{
		{
			name:     "Half used",
			used:     4096,
			total:    8192,
			expected: 50.0,
		},
		{
			name:     "Fully used",
			used:     8192,
			total:    8192,
			expected: 100.0,
		},
		{
			name:     "Zero total (missing data)",
			used:     100,
			total:    0,
			expected: 0.0,
		},
		{
			name:     "Nothing used",
			used:     0,
			total:    8192,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateUsagePercent(tt.used, tt.total)
			if math.Abs(got-tt.expected) > 0.00001 {
				t.Errorf("CalculateUsagePercent() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSeriesMax(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		expected float64
	}{
		{
			name:     "All zeros clamps to 1",
			series:   []float64{0, 0, 0, 0},
			expected: 1.0,
		},
		{
			name:     "Empty series clamps to 1",
			series:   nil,
			expected: 1.0,
		},
		{
			name:     "Below clamp threshold",
			series:   []float64{0.2, 0.5, 0.1},
			expected: 1.0,
		},
		{
			name:     "Above clamp threshold",
			series:   []float64{3.5, 87.2, 14.0},
			expected: 87.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeriesMax(tt.series)
			if math.Abs(got-tt.expected) > 0.00001 {
				t.Errorf("SeriesMax() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBytesToGiB(t *testing.T) {
	// 8 GiB exactly.
	got := BytesToGiB(8_589_934_592)
	if math.Abs(got-8.00) > 0.01 {
		t.Errorf("BytesToGiB(8 GiB) = %v, want 8.00", got)
	}

	// 1.5 GiB rounds cleanly to two decimals.
	got = BytesToGiB(1_610_612_736)
	if math.Abs(got-1.50) > 0.01 {
		t.Errorf("BytesToGiB(1.5 GiB) = %v, want 1.50", got)
	}
}
