package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

func TestWriteServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation failure is a bad request",
			err:        ErrMissingFeedback,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "illegal transition is a conflict",
			err:        fmt.Errorf("%w: VIEWED -> RESOLVED", ErrIllegalTransition),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "terminal state is a conflict",
			err:        ErrTerminalState,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "expired backend session",
			err:        crimeapi.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_EXPIRED",
		},
		{
			name:       "backend timeout",
			err:        fmt.Errorf("%w: deadline exceeded", crimeapi.ErrTimeout),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "UPSTREAM_TIMEOUT",
		},
		{
			name:       "backend unreachable",
			err:        fmt.Errorf("%w: connection refused", crimeapi.ErrNetwork),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_UNAVAILABLE",
		},
		{
			name:       "backend http error passes status through",
			err:        &crimeapi.HTTPError{StatusCode: http.StatusUnprocessableEntity, Message: "Officer is on leave"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "UPSTREAM_ERROR",
		},
		{
			name:       "unknown errors stay internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestWriteServiceErrorPassesBackendMessageVerbatim(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, &crimeapi.HTTPError{StatusCode: http.StatusBadRequest, Message: "Report already assigned to officer 9"})

	assert.Contains(t, rec.Body.String(), "Report already assigned to officer 9")
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for name, data := range files {
		part, err := writer.CreateFormFile("proof", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func newReportRouter(backend *fakeBackend) chi.Router {
	handler := NewHandler(NewService(backend, nil, nil), 10<<20)

	r := chi.NewRouter()
	r.Post("/{id}/police-status", handler.UpdatePoliceStatus)
	r.Post("/{id}/admin-status", handler.UpdateAdminStatus)
	return r
}

func TestUpdatePoliceStatusMultipart(t *testing.T) {
	backend := &fakeBackend{detail: detailWith(AdminAssigned, PoliceInProgress, MLAccepted)}
	router := newReportRouter(backend)

	body, contentType := multipartBody(t,
		map[string]string{"status": "ACTION_TAKEN", "feedback": "patrol dispatched"},
		map[string][]byte{"scene.txt": []byte("notes")},
	)

	req := httptest.NewRequest(http.MethodPost, "/RPT-001/police-status", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, backend.updatePoliceCalls)
	assert.Equal(t, []string{"scene.txt"}, backend.uploadedFiles)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Status        PoliceStatus `json:"status"`
			UploadedFiles []string     `json:"uploadedFiles"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, PoliceActionTaken, envelope.Data.Status)
}

func TestUpdatePoliceStatusRejectsUnknownStatus(t *testing.T) {
	backend := &fakeBackend{detail: detailWith(AdminAssigned, PoliceInProgress, MLAccepted)}
	router := newReportRouter(backend)

	body, contentType := multipartBody(t, map[string]string{"status": "ESCALATED"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/RPT-001/police-status", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, backend.updatePoliceCalls)
	assert.Equal(t, 0, backend.patchCalls)
}

func TestUpdateAdminStatusRejectionWithoutReason(t *testing.T) {
	backend := &fakeBackend{detail: detailWith(AdminPending, PoliceNotViewed, MLAccepted)}
	router := newReportRouter(backend)

	payload := bytes.NewBufferString(`{"status":"REJECTED"}`)
	req := httptest.NewRequest(http.MethodPost, "/RPT-001/admin-status", payload)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "reason")
}
