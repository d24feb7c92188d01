package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/middleware"
)

// Routes returns dashboard routes (admin-only)
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(middleware.RequireAdmin())

	r.Get("/summary", h.Summary)

	return r
}
