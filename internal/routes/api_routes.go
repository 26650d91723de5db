package routes

import (
	"schiphol-live/flightboard/internal/api"
	"schiphol-live/flightboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, refreshLimiter *middleware.ClientRateLimiter) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/flights/{direction}", func(board chi.Router) {
			board.Get("/", handlers.GetBoard())
			board.With(refreshLimiter.Middleware).Post("/refresh", handlers.RefreshBoard())
		})
	})
}
