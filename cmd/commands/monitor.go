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

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/phuonguno98/unodash/internal/config"
	"github.com/phuonguno98/unodash/internal/history"
	"github.com/phuonguno98/unodash/internal/sampler"
	"github.com/phuonguno98/unodash/internal/scheduler"
	"github.com/phuonguno98/unodash/internal/server"
	"github.com/phuonguno98/unodash/pkg/version"
	"github.com/spf13/cobra"
)

var (
	// Monitor command specific flags
	samplingInterval time.Duration
	historySize      int
	listenHost       string
	listenPort       int
	includeNetworks  string
	excludeNetworks  string
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Start UnoDash system monitoring",
	Long: `Start UnoDash to sample system telemetry (CPU, RAM, Network, Processes)
on a fixed cadence and serve the dashboard over HTTP.

Examples:
  # Run with default settings and open http://localhost:8080
  unodash monitor

  # Custom port and interface filters
  unodash monitor --port 9090 --exclude-networks "lo,docker0"`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	// Define flags specifically for monitor command
	monitorCmd.Flags().DurationVar(&samplingInterval, "interval", config.DefaultSamplingInterval,
		"Sampling interval (e.g., 1s, 5s, 1m)")
	monitorCmd.Flags().IntVar(&historySize, "history-size", config.DefaultHistorySize,
		"Number of samples each rolling history window retains")
	monitorCmd.Flags().StringVar(&listenHost, "host", config.DefaultListenHost,
		"HTTP listen address")
	monitorCmd.Flags().IntVarP(&listenPort, "port", "p", config.DefaultListenPort,
		"HTTP listen port")

	// Filter flags
	monitorCmd.Flags().StringVar(&includeNetworks, "include-networks", "",
		"Comma-separated list of network interfaces to monitor (empty = all)")
	monitorCmd.Flags().StringVar(&excludeNetworks, "exclude-networks", "",
		"Comma-separated list of network interfaces to exclude")
}

// buildConfig creates a Config object from parsed flags.
func buildConfig() (*config.Config, error) {
	cfg := &config.Config{
		SamplingInterval: samplingInterval,
		HistorySize:      historySize,
		ListenHost:       listenHost,
		ListenPort:       listenPort,
		LogLevel:         logLevel, // Access global var from root.go
		LogFile:          logFile,  // Access global var from root.go
	}

	// Parse filter lists
	cfg.IncludeNetworks = config.ParseCommaSeparated(includeNetworks)
	cfg.ExcludeNetworks = config.ParseCommaSeparated(excludeNetworks)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// runMonitor is the main monitoring entry point.
func runMonitor(cmd *cobra.Command, args []string) error {
	// Build configuration from flags
	var err error
	cfg, err = buildConfig()
	if err != nil {
		return err
	}

	// Initialize logger
	logger := InitLogger(cfg.LogLevel, cfg.LogFile)

	logger.Info("Starting UnoDash",
		"version", version.Info(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
	)
	logger.Info("Configuration loaded", "config", cfg.String())

	// Check platform capabilities
	checkPlatformCapabilities(logger)

	// Wire the sampling pipeline
	smp := sampler.NewSampler(cfg.IncludeNetworks, cfg.ExcludeNetworks, logger)
	hist := history.New(cfg.HistorySize)
	hub := scheduler.NewHub(logger)
	sched := scheduler.NewScheduler(cfg, smp, hist, hub, logger)

	// HTTP presentation layer
	srv := server.NewServer(hub, logger)
	addr := net.JoinHostPort(cfg.ListenHost, strconv.Itoa(cfg.ListenPort))
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Received signal, initiating shutdown", "signal", sig)
		cancel()
	}()

	// Use WaitGroup to track the HTTP server goroutine
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Dashboard available", "addr", "http://"+addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped with error", "error", err)
			cancel()
		}
	}()

	// Start scheduler (blocking until context is cancelled)
	if err := sched.Start(ctx); err != nil {
		logger.Error("Scheduler stopped with error", "error", err)
	}

	logger.Info("Shutting down...")

	// Give in-flight requests a bounded window to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	// Wait for the server goroutine to finish
	wg.Wait()

	logger.Info("Shutdown complete")

	return nil
}

// checkPlatformCapabilities logs platform-specific capability warnings.
func checkPlatformCapabilities(logger *slog.Logger) {
	switch runtime.GOOS {
	case osWindows:
		logger.Info("Running on Windows: load average is not available")
	case osDarwin:
		logger.Info("Running on macOS: per-process CPU may require elevated privileges")
	case osLinux:
		logger.Info("Running on Linux: All metrics available")
	default:
		logger.Warn("Running on unsupported platform, some metrics may not work", "os", runtime.GOOS)
	}
}
