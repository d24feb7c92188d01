package session

import "github.com/crimewatch/portal-api/internal/pkg/crimeapi"

// LoginRequest carries portal sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the backend session token and signed-in profile.
type LoginResponse struct {
	Token     string             `json:"token"`
	Authority crimeapi.Authority `json:"authority"`
}

// MeResponse describes the authenticated session.
type MeResponse struct {
	OfficerID int64  `json:"officerId"`
	Role      string `json:"role"`
}
