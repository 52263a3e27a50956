// Package api provides the HTTP chassis for the fishcast scoring service.
// It creates a chi router and enforces cross-cutting concerns (panic
// recovery, request correlation, logging, compression, observability) before
// requests reach the scoring handlers.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fishcast/internal/batch"
	"fishcast/internal/config"
	"fishcast/internal/engine"
	"fishcast/internal/observability"
	"fishcast/internal/species"
)

// Server encapsulates all dependencies for the scoring API, allowing for easy
// injection during testing.
type Server struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *species.Registry
	Engine   *engine.Engine
	Batch    *batch.Evaluator
	Metrics  *observability.Metrics
	Validate *validator.Validate

	router *chi.Mux
}

// NewServer initializes dependencies and prepares the router for route
// mounting. It performs a fail-fast check on critical dependencies.
func NewServer(cfg *config.Config, reg *species.Registry, logger *slog.Logger, metrics *observability.Metrics) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("api: config must not be nil")
	}
	if reg == nil {
		return nil, fmt.Errorf("api: species registry must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("api: logger must not be nil")
	}

	eng := engine.New(nil)
	s := &Server{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Engine:   eng,
		Batch:    &batch.Evaluator{Engine: eng, MaxParallel: cfg.Scoring.MaxParallel},
		Metrics:  metrics,
		Validate: validator.New(),
		router:   chi.NewRouter(),
	}
	return s, nil
}

// Handler returns the http.Handler for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// MountRoutes registers the global middleware chain and all endpoints.
//
// Middleware order matters: Recoverer is outermost so every panic is caught,
// RequestID runs before the logger so correlation IDs appear in logs, and
// compression wraps only the handlers so error paths stay uncompressed.
func (s *Server) MountRoutes() {
	s.router.Use(s.Recoverer)
	s.router.Use(RequestIDMiddleware)
	s.router.Use(SecurityHeadersMiddleware)
	s.router.Use(RequestLogger(s.Logger))
	s.router.Use(s.InFlightMiddleware)

	s.router.Route("/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return gzhttp.GzipHandler(next)
		})
		r.Post("/score", s.HandleScoreAll)
		r.Post("/score/{species}", s.HandleScoreSpecies)
		r.Get("/species", s.HandleListSpecies)
	})

	s.router.Get("/health", s.HandleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}
