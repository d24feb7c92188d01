package crimeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized means the backend rejected the bearer token (401).
	ErrUnauthorized = errors.New("crime api: unauthorized")
	// ErrTimeout means the request was aborted by deadline.
	ErrTimeout = errors.New("crime api: timeout")
	// ErrNetwork means the backend could not be reached.
	ErrNetwork = errors.New("crime api: network error")
)

// HTTPError is a non-2xx response from the crime API. Message carries the
// server-provided text verbatim so callers can surface it to the user.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("crime api: status=%d message=%s", e.StatusCode, e.Message)
}

// errorMessage extracts the server message from an error body. The backend
// returns either a JSON {"message": ...} object or plain text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
