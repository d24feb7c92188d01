package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns session routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public
	r.Post("/login", h.Login)

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})

	return r
}
