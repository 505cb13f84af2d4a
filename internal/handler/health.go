package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/database"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
	checkDatabase           = "database"
)

// HealthResponse is returned by the probe endpoints. Checks lists each
// dependency probed by readiness with its outcome.
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz reports that the process is serving requests.
// @Summary Liveness check
// @Description Returns ok while the process is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz reports whether rolls can be served, which requires the
// database holding the catalog and player balances.
// @Summary Readiness check
// @Description Returns ok once the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		start := time.Now()
		err := dbPool.Ping(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed",
				"check", checkDatabase, "elapsed", elapsed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  healthStatusUnavailable,
				Message: "database connection failed",
				Checks:  map[string]string{checkDatabase: healthStatusUnavailable},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: healthStatusOK,
			Checks: map[string]string{checkDatabase: healthStatusOK},
		})
	}
}
