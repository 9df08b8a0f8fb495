package handler

import "net/http"

// GET /api/products/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse{
		Success: true,
		Data:    h.service.Stats(r.Context()),
	})
}
