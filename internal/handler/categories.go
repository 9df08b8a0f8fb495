package handler

import "net/http"

// GET /api/products/categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Success: true,
		Data:    h.service.Categories(r.Context()),
	})
}
