// filepath: internal/api/handlers/health_handler.go
package handlers

import (
	"net/http"
	"time"
)

// @Summary Health check
// @Description Liveness probe for the API server.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
