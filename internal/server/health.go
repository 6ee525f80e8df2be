package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/m1kellaa/SkinShopBot_Go/internal/database"
	"github.com/m1kellaa/SkinShopBot_Go/internal/stats"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready only when the database answers a ping
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadyzTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			slog.Error("Readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleStats exposes the shop summary for dashboards
func HandleStats(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := statsService.Summary(r.Context())
		if err != nil {
			slog.Error("Stats endpoint failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, HealthResponse{
				Status:  "error",
				Message: "failed to load stats",
			})
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
