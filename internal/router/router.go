package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sixsevendeals/affiliate-api/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Get("/", h.GetMeta)
	r.Get("/api", h.GetMeta)
	r.Get("/api/products", h.GetProducts)
	r.Get("/api/products/categories", h.GetCategories)
	r.Get("/api/products/stats", h.GetStats)
	r.Get("/health", healthCheck)
	r.NotFound(handler.NotFound)

	// Open CORS: the frontend is served from arbitrary origins.
	return cors.AllowAll().Handler(r)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy","service":"SixSevenDeals Affiliate API"}`))
}
