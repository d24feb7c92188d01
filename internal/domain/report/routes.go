package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/middleware"
)

// Routes returns report workflow routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	// Police-facing endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePolice())
		r.Get("/assigned", h.ListAssigned)
		r.Post("/{id}/police-status", h.UpdatePoliceStatus)
	})

	// Admin-facing endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin())
		r.Get("/", h.List)
		r.Get("/{id}/officers", h.EligibleOfficers)
		r.Post("/{id}/assign", h.Assign)
		r.Post("/{id}/auto-assign", h.AutoAssign)
		r.Post("/{id}/admin-status", h.UpdateAdminStatus)
	})

	// Shared detail view
	r.Get("/{id}", h.Get)

	return r
}
