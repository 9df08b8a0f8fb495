package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sixsevendeals/affiliate-api/internal/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// NotFound mirrors the public API catch-all: a structured JSON body
// with a 200 status rather than a protocol-level 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NotFoundResponse{
		Error: "Not found",
		Path:  r.URL.Path,
	})
}
