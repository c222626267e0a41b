// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"
)

// @Summary Server info
// @Description Returns version and uptime information.
// @Tags system
// @Produce json
// @Success 200 {object} models.Info
// @Router /info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Info.GetInfo())
}
