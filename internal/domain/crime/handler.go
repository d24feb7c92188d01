package crime

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/response"
	"github.com/crimewatch/portal-api/internal/pkg/validator"
)

// Handler handles crime taxonomy HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates crime taxonomy handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListTypes returns all crime types
// GET /crimes
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListTypes(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, types)
}

// CreateType registers a crime type
// POST /crimes
func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var payload TypePayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	crimeType, err := h.service.CreateType(r.Context(), payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.Created(w, crimeType)
}

// UpdateType modifies a crime type
// PUT /crimes/{id}
func (h *Handler) UpdateType(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid crime type ID")
		return
	}

	var payload TypePayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	crimeType, err := h.service.UpdateType(r.Context(), id, payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, crimeType)
}

// DeleteType removes a crime type
// DELETE /crimes/{id}
func (h *Handler) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid crime type ID")
		return
	}

	if err := h.service.DeleteType(r.Context(), id); err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.NoContent(w)
}

// ListCategories returns all crime categories
// GET /crime-categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, categories)
}

// CreateCategory registers a crime category
// POST /crime-categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload CategoryPayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.Created(w, category)
}

// UpdateCategory modifies a crime category
// PUT /crime-categories/{id}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	var payload CategoryPayload
	if err := response.DecodeJSON(r.Body, &payload); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&payload); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, payload)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	response.OK(w, category)
}

// DeleteCategory removes a crime category
// DELETE /crime-categories/{id}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
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
