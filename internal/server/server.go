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

// Package server exposes the latest assembled snapshot over HTTP for the
// dashboard frontend and any other pull-style consumer.
package server

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/phuonguno98/unodash/internal/snapshot"
	"github.com/phuonguno98/unodash/pkg/version"
	"github.com/phuonguno98/unodash/web"
)

// SnapshotSource provides the most recent snapshot, or nil before the first
// sampling tick has completed.
type SnapshotSource interface {
	Latest() *snapshot.Snapshot
}

// Server represents the dashboard web server.
type Server struct {
	source SnapshotSource
	logger *slog.Logger
	router *mux.Router
}

// NewServer creates a server reading snapshots from source.
func NewServer(source SnapshotSource, logger *slog.Logger) *Server {
	s := &Server{
		source: source,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(corsMiddleware)
	// Add logging middleware
	s.router.Use(s.loggingMiddleware)

	// OPTIONS is listed so preflight requests reach the CORS middleware.
	s.router.HandleFunc("/api/version", s.handleGetVersion).Methods("GET", "OPTIONS")
	s.router.HandleFunc("/api/snapshot", s.handleGetSnapshot).Methods("GET", "OPTIONS")
	s.router.HandleFunc("/api/views/{view}", s.handleGetView).Methods("GET", "OPTIONS")

	// Embedded frontend
	staticFS, err := fs.Sub(web.Assets, "static")
	if err != nil {
		s.logger.Error("Failed to get static assets", "error", err)
	} else {
		s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := web.Assets.ReadFile("index.html")
	if err != nil {
		s.logger.Error("Failed to read index.html", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("Failed to write index response", "error", err)
	}
}

func (s *Server) handleGetVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": version.Info()})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, _ *http.Request) {
	snap := s.source.Latest()
	if snap == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no snapshot available yet")
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGetView(w http.ResponseWriter, r *http.Request) {
	snap := s.source.Latest()
	if snap == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no snapshot available yet")
		return
	}

	view := mux.Vars(r)["view"]
	var payload any
	switch view {
	case "home":
		payload = snap.Home
	case "cpu":
		payload = snap.CPU
	case "memory":
		payload = snap.Memory
	case "network":
		payload = snap.Network
	case "processes":
		payload = snap.Processes
	default:
		s.writeError(w, http.StatusNotFound, "unknown view: "+view)
		return
	}

	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("Failed to encode JSON response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// corsMiddleware allows the frontend to be served from a different origin
// during development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request with its duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
