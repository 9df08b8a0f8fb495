package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	defaultPage  = 1
)

// GET /api/products
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	// Bad query values fall back to the defaults; this endpoint never
	// rejects a request.
	page := defaultPage
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 1 {
			page = parsed
		}
	}

	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed >= 1 {
			limit = parsed
		}
	}

	products, pagination, source := h.service.Products(r.Context(), page, limit)

	writeJSON(w, http.StatusOK, ProductsResponse{
		Success:    true,
		Data:       products,
		Pagination: pagination,
		Source:     source,
	})
}
