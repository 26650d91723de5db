package routes

import (
	"net/http"
	"time"

	"schiphol-live/flightboard/internal/api"
	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	handlers := api.NewHandlers(deps, upSince)

	// health check
	r.Get("/healthCheck", handlers.HealthCheckHandler())
	r.Handle("/metrics", promhttp.Handler())

	refreshLimiter := middleware.NewClientRateLimiter(deps.Config.RefreshRatePerSecond, deps.Config.RefreshRateBurst)
	RegisterAPIRoutes(r, handlers, refreshLimiter)

	return r
}
