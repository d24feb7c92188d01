package authority

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/middleware"
)

// Routes returns authority account routes. Officer listing is open to any
// signed-in officer; account management is admin-only.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/officers", h.ListOfficers)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin())
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
