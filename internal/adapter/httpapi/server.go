// Package httpapi exposes the pipeline over HTTP: a one-shot analysis
// endpoint plus health, readiness, and metrics routes.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// Runner executes one analysis cycle and reports readiness.
type Runner interface {
	Run(ctx context.Context, sources map[string][]domain.RawInput, assets []domain.Asset) (domain.PipelineResult, error)
	CheckReadiness(ctx context.Context) error
}

// analyzeRequest is the POST /v1/analyze body. Assets may be omitted to use
// the registry the server was started with.
type analyzeRequest struct {
	Sources map[string][]domain.RawInput `json:"sources"`
	Assets  []domain.Asset               `json:"assets,omitempty"`
}

// Server serves the analysis API.
type Server struct {
	httpServer    *http.Server
	runner        Runner
	defaultAssets []domain.Asset
	logger        *slog.Logger
}

// NewServer creates an HTTP server with /v1/analyze, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, runner Runner, defaultAssets []domain.Asset, logger *slog.Logger) *Server {
	s := &Server{
		runner:        runner,
		defaultAssets: defaultAssets,
		logger:        logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/v1/analyze", s.handleAnalyze)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	assets := req.Assets
	if assets == nil {
		assets = s.defaultAssets
	}

	result, err := s.runner.Run(r.Context(), req.Sources, assets)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		s.logger.Error("analysis run failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.runner.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
