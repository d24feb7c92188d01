package crimeapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadPoliceProof sends one evidence file as multipart form data to
// POST /api/reports/upload-police-proof.
func (c *Client) UploadPoliceProof(ctx context.Context, reportID, filename string, file io.Reader) (*UploadProofResponse, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("crime api request error: client is nil")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("crime api request error: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("crime api request error: %w", err)
	}
	if err := writer.WriteField("reportId", reportID); err != nil {
		return nil, fmt.Errorf("crime api request error: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("crime api request error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reports/upload-police-proof", &buf)
	if err != nil {
		return nil, fmt.Errorf("crime api request error: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	var result UploadProofResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
