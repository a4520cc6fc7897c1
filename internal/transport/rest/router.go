package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/approveit/internal/metrics"
	"github.com/heartmarshall/approveit/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// NewRouter wires the HTTP surface: probes, metrics, and the publish endpoint.
// Every route runs behind middleware.Standard; the publish route additionally
// resolves the actor via Auth.
func NewRouter(
	logger *slog.Logger,
	health *HealthHandler,
	publish *PublishHandler,
	tokens tokenValidator,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Standard(logger))

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.With(middleware.Auth(tokens)).Post("/v1/records/{recordID}/publish", publish.Publish)

	return r
}
