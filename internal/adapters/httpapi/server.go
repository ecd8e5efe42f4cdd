// Package httpapi exposes test runs over a JSON/plain-text HTTP API
// with Prometheus metrics.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

// Server hosts a test trunk over HTTP. Runs are serialized: the engine
// walks one tree at a time.
type Server struct {
	logger  *slog.Logger
	trunk   domain.Func
	cfg     *config.EngineConfig
	metrics *Metrics
	mu      sync.Mutex
}

// NewServer creates a server for the given trunk, registering metrics
// on reg.
func NewServer(trunk domain.Func, cfg *config.EngineConfig, logger *slog.Logger, reg prometheus.Registerer) *Server {
	return &Server{
		logger:  logger,
		trunk:   trunk,
		cfg:     cfg,
		metrics: NewMetrics(reg),
	}
}

// Handler builds the chi router for the server. The metrics endpoint
// serves the gatherer the server's registerer belongs to.
func (s *Server) Handler(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/runs", s.handleRun)
	r.Get("/tree", s.handleTree)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// runRequest is the POST /runs body.
type runRequest struct {
	Target string `json:"target"`
	Search bool   `json:"search"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(arbor.Version),
	})
}

// handleRun executes the requested subtree and returns the raw wire
// report as plain text.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var body runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		s.logger.Warn("run: invalid request body", "error", err)
		return
	}
	if body.Target == "" {
		body.Target = domain.RootTag
	}

	mode := domain.ModeExecute
	if body.Search {
		mode = domain.ModeSearch
	}
	s.serveReport(w, r, mode, body.Target)
}

// handleTree enumerates every path in the tree without executing any
// test.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.serveReport(w, r, domain.ModeSearch, domain.RootTag)
}

func (s *Server) serveReport(w http.ResponseWriter, r *http.Request, mode domain.Mode, target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transport := memory.New()
	engine := s.buildEngine(transport)

	var err error
	if mode == domain.ModeSearch {
		_, err = engine.Search(r.Context(), target, s.trunk)
	} else {
		_, err = engine.Run(r.Context(), target, s.trunk)
	}
	if err != nil {
		s.metrics.observeRun("error")
		http.Error(w, "run failed", http.StatusInternalServerError)
		s.logger.Error("run failed", "target", target, "error", err)
		return
	}

	body := transport.Report()

	status := "completed"
	if strings.Contains(body, "test path not found") {
		status = "not_found"
	}
	s.metrics.observeRun(status)

	s.logger.Info("run served", "target", target, "mode", mode.String(), "status", status, "bytes", len(body))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if status == "not_found" {
		w.WriteHeader(http.StatusNotFound)
	}
	w.Write([]byte(body))
}

// buildEngine assembles a fresh engine around a per-request capture
// transport. Engine state is not reusable across concurrent requests,
// so construction stays inside the run lock.
func (s *Server) buildEngine(transport *memory.Transport) *arbor.Engine {
	opts := []arbor.Option{
		arbor.WithLogger(s.logger),
		arbor.WithTransport(transport),
		arbor.WithLifecycleHooks(s.metrics.Hooks()),
	}
	if s.cfg != nil {
		if s.cfg.RootTag != "" {
			opts = append(opts, arbor.WithRootTag(s.cfg.RootTag))
		}
		if s.cfg.MaxDepth > 0 {
			opts = append(opts, arbor.WithMaxDepth(s.cfg.MaxDepth))
		}
		if s.cfg.PathCapacity > 0 {
			opts = append(opts, arbor.WithPathCapacity(s.cfg.PathCapacity))
		}
		if s.cfg.ReportCapacity > 0 {
			opts = append(opts, arbor.WithReportCapacity(s.cfg.ReportCapacity))
		}
	}
	return arbor.New(opts...)
}
