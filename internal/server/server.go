// seehuhn.de/go/sigil - name sigils on a 26-letter wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package server serves sigil diagrams over HTTP.
//
// Every request builds its scene from scratch; no state is shared between
// requests apart from the metrics.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seehuhn.de/go/sigil"
	"seehuhn.de/go/sigil/internal/config"
	"seehuhn.de/go/sigil/raster"
	"seehuhn.de/go/sigil/scene"
)

// shutdownTimeout bounds the wait for open requests on shutdown.
const shutdownTimeout = 5 * time.Second

// Server handles the sigil HTTP endpoints.
type Server struct {
	cfg *config.Config
	log *slog.Logger

	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a server for the given configuration.
// Metrics are kept in a registry private to the server.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      logger,
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sigil_renders_total",
			Help: "Number of rendered sigils by output format.",
		}, []string{"format"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sigil_render_duration_seconds",
			Help:    "Time spent rendering a sigil, by output format.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"format"}),
	}
	s.registry.MustRegister(s.renders, s.duration)
	return s
}

// Handler returns the routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/sigil.svg", s.handleSVG)
	mux.HandleFunc("/sigil.png", s.handlePNG)
	mux.HandleFunc("/trace", s.handleTrace)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	}
	return nil
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// TraceResponse is the JSON response for GET /trace.
type TraceResponse struct {
	Name     string         `json:"name"`
	Letters  string         `json:"letters"`
	FileName string         `json:"file_name"`
	Bindings []TraceBinding `json:"bindings"`
}

// TraceBinding is one binding of a trace with its preview position.
type TraceBinding struct {
	Letter string  `json:"letter"`
	Ring   string  `json:"ring"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// handleSVG handles GET /sigil.svg?name=...&letters=true|false.
func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	letters := s.cfg.Preview.ShowLetters
	if v := r.URL.Query().Get("letters"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_letters", "letters must be true or false")
			return
		}
		letters = b
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := scene.WriteSVG(&buf, sigil.Preview(name, letters, sigil.PreviewStyle())); err != nil {
		s.fail(w, "svg", err)
		return
	}
	s.observe("svg", name, buf.Len(), start)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// handlePNG handles GET /sigil.png?name=...
func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	start := time.Now()
	data, err := raster.NewExporter(sigil.ExportStyle(), s.cfg.Export.Size).Update(name)
	if err != nil {
		s.fail(w, "png", err)
		return
	}
	s.observe("png", name, len(data), start)

	fileName := sigil.FileName(name, "_Sigil", ".png")
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// handleTrace handles GET /trace?name=...
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	tr := sigil.Trace(name)
	l := sigil.DefaultLayout()

	resp := TraceResponse{
		Name:     name,
		Letters:  tr.Letters(),
		FileName: sigil.FileName(name, "_Sigil", ".png"),
		Bindings: make([]TraceBinding, 0, len(tr)),
	}
	for _, b := range tr {
		pt, ok := l.Point(b.Letter, b.Ring, sigil.PreviewSigilRadii)
		if !ok {
			continue
		}
		resp.Bindings = append(resp.Bindings, TraceBinding{
			Letter: string(b.Letter),
			Ring:   b.Ring.String(),
			X:      pt.X,
			Y:      pt.Y,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) observe(format, name string, n int, start time.Time) {
	d := time.Since(start)
	s.renders.WithLabelValues(format).Inc()
	s.duration.WithLabelValues(format).Observe(d.Seconds())
	s.log.Debug("rendered", "format", format, "name", name, "bytes", n, "duration", d)
}

func (s *Server) fail(w http.ResponseWriter, format string, err error) {
	s.log.Error("render failed", "format", format, "error", err)
	writeJSONError(w, http.StatusInternalServerError, "render_error", "Failed to render sigil")
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, errorCode, message string) {
	writeJSON(w, status, ErrorResponse{Error: errorCode, Message: message})
}
