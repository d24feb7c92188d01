package session

import (
	"errors"
	"net/http"

	"github.com/crimewatch/portal-api/internal/middleware"
	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/response"
	"github.com/crimewatch/portal-api/internal/pkg/validator"
)

// Handler handles session HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login signs an admin or officer in through the backend
// POST /session/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, crimeapi.ErrUnauthorized):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, crimeapi.ErrTimeout):
			response.UpstreamTimeout(w, "The reporting service timed out")
		case errors.Is(err, crimeapi.ErrNetwork):
			response.UpstreamUnavailable(w, "The reporting service is unreachable")
		default:
			var httpErr *crimeapi.HTTPError
			if errors.As(err, &httpErr) {
				response.UpstreamError(w, httpErr.StatusCode, httpErr.Message)
				return
			}
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// Logout revokes the current session token
// POST /session/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID := middleware.GetTokenID(r.Context())
	if tokenID == "" {
		response.Unauthorized(w, "No active session")
		return
	}

	if err := h.service.Revoke(r.Context(), tokenID); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"message": "Signed out"})
}

// Me returns the authenticated session's identity
// GET /session/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	response.OK(w, MeResponse{
		OfficerID: middleware.GetOfficerID(r.Context()),
		Role:      middleware.GetRole(r.Context()),
	})
}
