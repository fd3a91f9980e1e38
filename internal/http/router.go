// Package http assembles the chi router and the middleware chain.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"certflow/pkg/platform/httputil"
	mwauth "certflow/pkg/platform/middleware/auth"
	"certflow/pkg/platform/middleware/device"
	"certflow/pkg/platform/middleware/metadata"
	"certflow/pkg/platform/middleware/requesttime"
)

// RouteRegistrar is implemented by each feature handler.
type RouteRegistrar interface {
	RegisterRoutes(chi.Router)
}

// HealthCheck probes one backing component.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Config carries everything the router needs.
type Config struct {
	Logger       *slog.Logger
	Validator    mwauth.TokenValidator
	Handlers     []RouteRegistrar
	HealthChecks []HealthCheck
}

// NewRouter builds the full route tree. Health and metrics endpoints are
// open; everything else requires a bearer token.
func NewRouter(cfg Config) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(metadata.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(device.Middleware)

	r.Get("/healthz", healthHandler(cfg.Logger, cfg.HealthChecks))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(mwauth.RequireAuth(cfg.Validator, cfg.Logger))
		for _, h := range cfg.Handlers {
			h.RegisterRoutes(r)
		}
	})

	return r
}

func healthHandler(logger *slog.Logger, checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		components := make(map[string]string, len(checks))
		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				logger.Warn("health check failed",
					slog.String("component", check.Name),
					slog.String("error", err.Error()))
				components[check.Name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			components[check.Name] = "ok"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(components) > 0 {
			body["components"] = components
		}
		httputil.WriteJSON(w, status, body)
	}
}
