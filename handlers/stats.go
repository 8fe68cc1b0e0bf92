package handlers

import (
	"log"
	"net/http"

	"github.com/samkiyya/SAM-Fleet/utils"
)

// GetFleetStats handles GET /api/vehicles/stats.
func (h *Handler) GetFleetStats(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("[STATS] list failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to compute fleet statistics")
		return
	}
	writeJSON(w, http.StatusOK, utils.Summarize(vehicles))
}
