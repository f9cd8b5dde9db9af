package api

import (
	"net/http"

	"go.uber.org/zap"
)

// HealthResponse — ответ /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health проверяет доступность базы.
//
// @Summary      Health check
// @Tags         service
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Check(r.Context()); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
