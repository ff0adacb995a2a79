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

// Package scheduler drives the fixed-cadence sampling cycle: on every tick
// it refreshes the raw OS metrics, updates the rolling history windows,
// assembles a snapshot and publishes it to the presentation layer.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/phuonguno98/unodash/internal/config"
	"github.com/phuonguno98/unodash/internal/history"
	"github.com/phuonguno98/unodash/internal/sampler"
	"github.com/phuonguno98/unodash/internal/snapshot"
)

// SampleSource is the per-tick refresh surface the scheduler drives.
type SampleSource interface {
	Sample() *sampler.Sample
}

// Scheduler owns the tick loop and is the sole writer of SystemHistory.
type Scheduler struct {
	config  *config.Config
	source  SampleSource
	history *history.SystemHistory
	hub     *Hub
	ticker  *time.Ticker
	logger  *slog.Logger
}

// NewScheduler creates a scheduler publishing to the given hub.
func NewScheduler(cfg *config.Config, source SampleSource, hist *history.SystemHistory, hub *Hub, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		config:  cfg,
		source:  source,
		history: hist,
		hub:     hub,
		logger:  logger,
	}
}

// Start begins the sampling loop. The first tick runs immediately so the
// dashboard has data without waiting a full interval; subsequent ticks fire
// on the configured cadence until the context is cancelled.
//
// No tick ever fails the loop: individual metric errors degrade inside the
// sampler and publishing to zero subscribers is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("Starting scheduler",
		"interval", s.config.SamplingInterval,
		"history_size", s.history.Size(),
	)

	s.tick()

	s.ticker = time.NewTicker(s.config.SamplingInterval)
	defer s.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopping...")
			return nil

		case <-s.ticker.C:
			s.tick()
		}
	}
}

// tick runs one complete sampling cycle to completion.
func (s *Scheduler) tick() {
	sample := s.source.Sample()

	// CPU and memory are recorded unconditionally; the network window is
	// only updated once the rate counter has a baseline.
	s.history.RecordCPU(sample.CPU.Global)
	s.history.RecordMemory(s.memoryPercent(sample))
	recorded := s.history.RecordNetwork(sample.TotalRecv, sample.TotalSent)

	snap := snapshot.Assemble(sample, s.history)
	s.hub.Publish(snap)

	s.logger.Debug("Tick published",
		"cpu", sample.CPU.Global,
		"mem_total", sample.Memory.Total,
		"net_recorded", recorded,
		"subscribers", s.hub.SubscriberCount(),
	)
}

func (s *Scheduler) memoryPercent(sample *sampler.Sample) float64 {
	if sample.Memory.Total == 0 {
		return 0
	}
	return float64(sample.Memory.Used) / float64(sample.Memory.Total) * 100.0
}

// Stop halts the ticker. Safe to call before Start.
func (s *Scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.logger.Info("Scheduler stopped")
}
