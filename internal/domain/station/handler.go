package station

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/response"
	"github.com/crimewatch/portal-api/internal/pkg/validator"
)

// Handler handles police station HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates station handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all police stations
// GET /stations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.service.List(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, stations)
}

// Create registers a police station
// POST /stations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload StationPayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	station, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.Created(w, station)
}

// Update modifies a police station
// PUT /stations/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid station ID")
		return
	}

	var payload StationPayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	station, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, station)
}

// Delete removes a police station
// DELETE /stations/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid station ID")
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
