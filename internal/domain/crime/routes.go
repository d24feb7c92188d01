package crime

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/middleware"
)

// TypeRoutes returns crime type routes. Reads are open to any signed-in
// officer; writes are admin-only.
func (h *Handler) TypeRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.ListTypes)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin())
		r.Post("/", h.CreateType)
		r.Put("/{id}", h.UpdateType)
		r.Delete("/{id}", h.DeleteType)
	})

	return r
}

// CategoryRoutes returns crime category routes.
func (h *Handler) CategoryRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.ListCategories)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin())
		r.Post("/", h.CreateCategory)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})

	return r
}
