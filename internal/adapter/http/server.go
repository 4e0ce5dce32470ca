package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/couchcryptid/impact-effects-service/internal/observability"
	"github.com/couchcryptid/impact-effects-service/internal/service"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the simulation API plus health, readiness, and metrics
// endpoints, with permissive CORS on every route.
type Server struct {
	httpServer *http.Server
	svc        *service.Service
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer wires routes, CORS, and the operational endpoints.
func NewServer(addr string, svc *service.Service, allowedOrigins []string, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("POST /simulate", s.handleSimulate)
	mux.HandleFunc("POST /story", s.handleStory)
	mux.HandleFunc("POST /save", s.handleSave)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(svc))
	mux.Handle("GET /metrics", promhttp.Handler())
	// Bare OPTIONS (no preflight headers) bypasses the CORS middleware's
	// preflight path; answer with an empty body on every route.
	mux.HandleFunc("OPTIONS /", s.handleOptions)
	mux.HandleFunc("/", s.handleDiscovery)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      c.Handler(mux),
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

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// handleDiscovery answers unmatched routes with a fixed payload listing the
// available endpoints.
func (s *Server) handleDiscovery(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"service": "impact-effects",
		"endpoints": []string{
			"POST /simulate",
			"POST /story",
			"POST /save",
			"GET /healthz",
			"GET /readyz",
			"GET /metrics",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
