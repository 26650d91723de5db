package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"schiphol-live/flightboard/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports cache backend and board state.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func (h *Handlers) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		if redis := h.deps.Services.Redis; redis != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			status := entities.ServiceStatus{Status: "ok", Details: "Redis Connected"}
			if err := redis.Ping(ctx); err != nil {
				status = entities.ServiceStatus{Status: "down", Details: err.Error()}
			}
			services["redis"] = status
		} else {
			services["cache"] = entities.ServiceStatus{Status: "ok", Details: "In-memory cache"}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		boards := h.deps.Services.Boards.Health()
		if overallStatus == "ok" {
			for _, b := range boards {
				if b.LastError != "" {
					overallStatus = "degraded"
					break
				}
			}
		}

		resp := entities.HealthCheckResponse{
			Status:   overallStatus,
			Services: services,
			Boards:   boards,
			UpSince:  h.upSince,
			Uptime:   time.Since(h.upSince).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		if overallStatus == "down" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
