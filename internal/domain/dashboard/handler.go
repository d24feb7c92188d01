package dashboard

import (
	"errors"
	"net/http"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates dashboard handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary returns the dashboard aggregates
// GET /dashboard/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
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
		return
	}

	if summary.Categories == nil {
		response.OKWithWarning(w, summary, "Category breakdown is temporarily unavailable")
		return
	}
	response.OK(w, summary)
}
