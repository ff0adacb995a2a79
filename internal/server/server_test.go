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

package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phuonguno98/unodash/internal/snapshot"
)

// fakeSource serves a fixed snapshot (or nil).
type fakeSource struct {
	snap *snapshot.Snapshot
}

func (f *fakeSource) Latest() *snapshot.Snapshot {
	return f.snap
}

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Timestamp: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		CPU:       snapshot.CPUView{TotalConsumption: 42.5},
		Processes: []snapshot.ProcessRow{
			{PID: 1, Name: "init", CPU: "0.1%", Memory: "1.0 MB"},
		},
	}
}

func newTestServer(snap *snapshot.Snapshot) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(&fakeSource{snap: snap}, logger)
}

func TestServer_SnapshotEndpoint(t *testing.T) {
	srv := newTestServer(testSnapshot())

	req := httptest.NewRequest("GET", "/api/snapshot", http.NoBody)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/snapshot status = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	var got snapshot.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.CPU.TotalConsumption != 42.5 {
		t.Errorf("decoded CPU = %v, want 42.5", got.CPU.TotalConsumption)
	}
}

func TestServer_SnapshotUnavailableBeforeFirstTick(t *testing.T) {
	srv := newTestServer(nil)

	for _, path := range []string{"/api/snapshot", "/api/views/home"} {
		req := httptest.NewRequest("GET", path, http.NoBody)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusServiceUnavailable {
			t.Errorf("GET %s status = %v, want %v", path, w.Result().StatusCode, http.StatusServiceUnavailable)
		}
	}
}

func TestServer_ViewEndpoints(t *testing.T) {
	srv := newTestServer(testSnapshot())

	tests := []struct {
		view       string
		wantStatus int
	}{
		{"home", http.StatusOK},
		{"cpu", http.StatusOK},
		{"memory", http.StatusOK},
		{"network", http.StatusOK},
		{"processes", http.StatusOK},
		{"gpu", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/views/"+tt.view, http.NoBody)
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Errorf("GET /api/views/%s status = %v, want %v", tt.view, w.Result().StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestServer_ProcessesView(t *testing.T) {
	srv := newTestServer(testSnapshot())

	req := httptest.NewRequest("GET", "/api/views/processes", http.NoBody)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var rows []snapshot.ProcessRow
	if err := json.NewDecoder(w.Result().Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Name != "init" {
		t.Errorf("rows = %+v, want single init row", rows)
	}
}

func TestServer_VersionEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("GET", "/api/version", http.NoBody)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("GET /api/version status = %v, want %v", w.Result().StatusCode, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["version"] == "" {
		t.Error("version response is empty")
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest("OPTIONS", "/api/snapshot", http.NoBody)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("OPTIONS status = %v, want %v", resp.StatusCode, http.StatusNoContent)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}
