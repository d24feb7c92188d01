package report

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crimewatch/portal-api/internal/middleware"
	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/response"
	"github.com/crimewatch/portal-api/internal/pkg/validator"
)

// Handler handles report workflow HTTP requests
type Handler struct {
	service       *Service
	maxProofBytes int64
}

// NewHandler creates report handler
func NewHandler(service *Service, maxProofBytes int64) *Handler {
	return &Handler{
		service:       service,
		maxProofBytes: maxProofBytes,
	}
}

// List returns a merged report page for the admin portal
// GET /reports?page&size&stationId
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := crimeapi.ListReportsParams{
		Page: queryInt(r, "page", 0),
		Size: queryInt(r, "size", 20),
	}
	if stationID, err := strconv.ParseInt(r.URL.Query().Get("stationId"), 10, 64); err == nil {
		params.StationID = stationID
	}

	views, totalPages, err := h.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WithMeta(w, views, response.Meta{
		Page:  params.Page,
		Limit: params.Size,
		Pages: totalPages,
	})
}

// ListAssigned returns the authenticated officer's merged report page
// GET /reports/assigned?page&size
func (h *Handler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	officerID := middleware.GetOfficerID(r.Context())
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)

	views, totalPages, err := h.service.ListAssigned(r.Context(), officerID, page, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WithMeta(w, views, response.Meta{
		Page:  page,
		Limit: size,
		Pages: totalPages,
	})
}

// Get returns the merged report detail
// GET /reports/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, view)
}

// EligibleOfficers returns the officers assignable to a report
// GET /reports/{id}/officers
func (h *Handler) EligibleOfficers(w http.ResponseWriter, r *http.Request) {
	officers, err := h.service.EligibleOfficers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, officers)
}

// Assign assigns a report to a specific officer
// POST /reports/{id}/assign
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignOfficerRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Assign(r.Context(), chi.URLParam(r, "id"), req.OfficerID, middleware.GetOfficerID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.StationMismatch {
		response.OKWithWarning(w, result, "Officer is not attached to the report's station")
		return
	}
	response.OK(w, result)
}

// AutoAssign delegates officer selection to the backend
// POST /reports/{id}/auto-assign
func (h *Handler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AutoAssign(r.Context(), chi.URLParam(r, "id"), middleware.GetOfficerID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.OK(w, result)
}

// UpdateAdminStatus applies an admin review transition
// POST /reports/{id}/admin-status
func (h *Handler) UpdateAdminStatus(w http.ResponseWriter, r *http.Request) {
	var req AdminStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	message, err := h.service.UpdateAdminStatus(
		r.Context(),
		chi.URLParam(r, "id"),
		AdminStatus(req.Status),
		req.RejectionReason,
		middleware.GetOfficerID(r.Context()),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if message == "" {
		message = "Status updated"
	}
	response.OK(w, map[string]string{"message": message})
}

// UpdatePoliceStatus applies a police transition with optional evidence
// POST /reports/{id}/police-status (multipart form)
func (h *Handler) UpdatePoliceStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxProofBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := PoliceStatusRequest{
		Status:   r.FormValue("status"),
		Feedback: r.FormValue("feedback"),
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	files, err := h.readProofFiles(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.service.UpdatePoliceStatus(
		r.Context(),
		chi.URLParam(r, "id"),
		PoliceStatus(req.Status),
		req.Feedback,
		middleware.GetOfficerID(r.Context()),
		files,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if result.EvidencePending || len(result.FailedFiles) > 0 {
		response.OKWithWarning(w, result, "Status updated but some evidence files failed to upload")
		return
	}
	response.OK(w, result)
}

func (h *Handler) readProofFiles(r *http.Request) ([]ProofFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var files []ProofFile
	for _, header := range r.MultipartForm.File["proof"] {
		if header.Size > h.maxProofBytes {
			return nil, errors.New("evidence file too large: " + header.Filename)
		}

		file, err := header.Open()
		if err != nil {
			return nil, errors.New("could not read evidence file: " + header.Filename)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, errors.New("could not read evidence file: " + header.Filename)
		}

		files = append(files, ProofFile{Name: header.Filename, Data: data})
	}
	return files, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return value
}

// writeServiceError maps workflow and backend errors onto the response
// envelope. Backend error messages pass through verbatim.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMLNotAccepted),
		errors.Is(err, ErrMissingRejectionReason),
		errors.Is(err, ErrMissingOfficer),
		errors.Is(err, ErrMissingFeedback),
		errors.Is(err, ErrMissingEvidence),
		errors.Is(err, ErrInvalidRecord):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrTerminalState),
		errors.Is(err, ErrIllegalTransition),
		errors.Is(err, ErrNotApprovedForPoliceAction):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrReportNotFound):
		response.NotFound(w, err.Error())
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
