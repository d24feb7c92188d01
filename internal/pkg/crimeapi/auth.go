package crimeapi

import (
	"context"
	"net/http"
)

// LoginRequest carries portal credentials to the backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Authority Authority `json:"authority"`
}

// Login exchanges credentials for a backend-issued session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/authority/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
