package crimeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 2*time.Second, "portal-test/1.0")
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"reports":[],"totalPages":0}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := WithToken(context.Background(), "token-abc")

	_, err := client.ListReports(ctx, ListReportsParams{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "portal-test/1.0", gotUA)
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{"token":"t","authority":{"id":1,"role":"ADMIN"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestClient401BecomesErrUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetReport(context.Background(), "RPT-001")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientNon2xxCarriesServerMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "json message body",
			body: `{"message":"Report not found"}`,
			want: "Report not found",
		},
		{
			name: "plain text body",
			body: "something broke",
			want: "something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.GetReport(context.Background(), "RPT-404")

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
			assert.Equal(t, tt.want, httpErr.Message)
		})
	}
}

func TestClientTimeoutClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, "")
	_, err := client.GetReportStats(context.Background())

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClientConnectionRefusedClassifiedAsNetwork(t *testing.T) {
	// Grab a port that nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	client := newTestClient(deadURL)
	_, err := client.ListStations(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestListAssignedReportsRetriesOnTimeout(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"reports":[],"totalPages":0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, "")
	_, err := client.ListAssignedReports(context.Background(), 7, 0, 20)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(3), attempts.Load(), "initial attempt plus two retries")
}

func TestListAssignedReportsNoRetryOnHTTPError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListAssignedReports(context.Background(), 7, 0, 20)

	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, int32(1), attempts.Load(), "server errors are not retried")
}

func TestListReportsQueryParameters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"reports":[],"totalPages":0}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListReports(context.Background(), ListReportsParams{Page: 2, Size: 50, StationID: 9})

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "size=50")
	assert.Contains(t, gotQuery, "stationId=9")
}

func TestUploadPoliceProofMultipart(t *testing.T) {
	var gotReportID, gotFilename, gotContent, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotReportID = r.FormValue("reportId")
		gotAuth = r.Header.Get("Authorization")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		gotFilename = header.Filename
		buf := make([]byte, header.Size)
		file.Read(buf)
		gotContent = string(buf)

		w.Write([]byte(`{"success":true,"fileUrl":"https://cdn.example/proof.jpg"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := WithToken(context.Background(), "token-xyz")

	resp, err := client.UploadPoliceProof(ctx, "RPT-001", "scene.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "RPT-001", gotReportID)
	assert.Equal(t, "scene.jpg", gotFilename)
	assert.Equal(t, "fake image bytes", gotContent)
	assert.Equal(t, "Bearer token-xyz", gotAuth)
}

func TestPatchReportStatusMethodAndPath(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.PatchReportStatus(context.Background(), "RPT-001", PatchStatusRequest{Status: "VIEWED", UpdatedByOfficerID: 7})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/reports/RPT-001/status", gotPath)
}
