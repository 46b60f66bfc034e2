// Package server exposes the liveness endpoint the hosting platform pings,
// plus health, version and Prometheus metrics routes.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/HypixelVerify_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port        int
	Version     string
	Environment string
	// Checks back /readyz; an empty map is always ready
	Checks map[string]HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route table; exported for tests
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/", HandleRoot())
	r.Get("/healthz", HandleHealthz())
	r.Get("/readyz", HandleReadyz(opts.Checks))
	r.Get("/version", HandleVersion(opts.Version, opts.Environment))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
