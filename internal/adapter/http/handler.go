package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check probes one dependency for readiness.
type Check func(ctx context.Context) error

// Handler serves the ops surface of the scheduler: liveness, readiness and
// Prometheus metrics. Routes are registered on a chi.Router.
type Handler struct {
	checks map[string]Check
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. checks are run
// by /readyz; gatherer backs /metrics.
func NewHandler(checks map[string]Check, gatherer prometheus.Gatherer, logger *slog.Logger) *Handler {
	h := &Handler{checks: checks, logger: logger}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
