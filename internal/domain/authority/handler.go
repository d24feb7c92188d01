package authority

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/response"
	"github.com/crimewatch/portal-api/internal/pkg/validator"
)

// Handler handles authority account HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates authority handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all authority accounts
// GET /authorities
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	authorities, err := h.service.List(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, authorities)
}

// ListOfficers returns POLICE accounts, optionally filtered by station
// GET /authorities/officers?stationId
func (h *Handler) ListOfficers(w http.ResponseWriter, r *http.Request) {
	stationID, _ := strconv.ParseInt(r.URL.Query().Get("stationId"), 10, 64)

	officers, err := h.service.ListOfficers(r.Context(), stationID)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, officers)
}

// Create registers an authority account
// POST /authorities
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreatePayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	authority, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.Created(w, authority)
}

// Update modifies an authority account
// PUT /authorities/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid authority ID")
		return
	}

	var payload UpdatePayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	authority, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, authority)
}

// Delete removes an authority account
// DELETE /authorities/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid authority ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.NoContent(w)
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crimeapi.ErrUnauthorized):
		response.AuthExpired(w)
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
}
