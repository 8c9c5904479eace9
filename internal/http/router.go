package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"team-form-service/internal/metrics"
)

// NewRouter registers the HTTP routes with logging, recovery, and CORS.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return LoggingMiddleware(logger, recorder, next)
	})
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/form", func(r chi.Router) {
		r.Get("/team", handler.TeamForm)
		r.Get("/matchup", handler.MatchupForm)
	})

	r.Route("/{sport}", func(r chi.Router) {
		r.Get("/schedule", handler.Schedule)
		r.Get("/projections", handler.Projections)
		r.Get("/slate", handler.Slate)
	})

	return r
}
