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

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config represents application configuration.
type Config struct {
	SamplingInterval time.Duration // Interval between sampling ticks
	HistorySize      int           // Number of samples each rolling window retains

	// HTTP presentation layer
	ListenHost string
	ListenPort int

	// Filters
	IncludeNetworks []string // Network interfaces to monitor (empty = all)
	ExcludeNetworks []string // Network interfaces to exclude

	// Logging
	LogLevel string // Log level: debug, info, warn, error
	LogFile  string // Log file path (empty = stdout)
}

// Default configuration values.
const (
	DefaultSamplingInterval = 1 * time.Second
	DefaultHistorySize      = 60
	DefaultListenHost       = "0.0.0.0"
	DefaultListenPort       = 8080
	DefaultLogLevel         = "info"
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		SamplingInterval: DefaultSamplingInterval,
		HistorySize:      DefaultHistorySize,
		ListenHost:       DefaultListenHost,
		ListenPort:       DefaultListenPort,
		LogLevel:         DefaultLogLevel,
	}
}

// ParseCommaSeparated parses a comma-separated string into a slice of
// trimmed strings.
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SamplingInterval < 1*time.Second {
		return errors.New("sampling interval must be at least 1 second")
	}

	if c.SamplingInterval > 1*time.Hour {
		return errors.New("sampling interval must not exceed 1 hour")
	}

	if c.HistorySize < 2 {
		return errors.New("history size must be at least 2 samples")
	}

	if c.HistorySize > 3600 {
		return errors.New("history size must not exceed 3600 samples")
	}

	if c.ListenPort < 1 || c.ListenPort > 65535 {
		return fmt.Errorf("invalid listen port: %d", c.ListenPort)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// String returns a loggable summary of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("interval=%s history=%d listen=%s:%d include_networks=%v exclude_networks=%v",
		c.SamplingInterval, c.HistorySize, c.ListenHost, c.ListenPort,
		c.IncludeNetworks, c.ExcludeNetworks,
	)
}
