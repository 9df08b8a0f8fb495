package handler

import "net/http"

const apiVersion = "1.0.0"

// GET / and /api
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MetaResponse{
		Message: "AHAT Affiliate Marketing API",
		Version: apiVersion,
		Status:  "running",
		Endpoints: map[string]string{
			"/api/products":            "Get all products",
			"/api/products/categories": "Get product categories",
			"/api/products/stats":      "Get statistics",
			"/health":                  "Health check",
		},
	})
}
