package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/jwt"
	"github.com/crimewatch/portal-api/internal/pkg/response"
)

type contextKey string

const (
	OfficerIDKey contextKey = "officer_id"
	RoleKey      contextKey = "role"
	TokenIDKey   contextKey = "token_id"
)

// TokenRevocations reports whether a session token has been revoked (logout).
type TokenRevocations interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth returns middleware that validates the session JWT and propagates the
// raw bearer token to outbound crime API calls. The token is attached on
// every backend call, so the backend stays the sole authority on access.
func Auth(jwtService *jwt.Service, revocations TokenRevocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := jwtService.ValidateAccessToken(parts[1])
			if err != nil {
				if err == jwt.ErrExpiredToken {
					response.AuthExpired(w)
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(r.Context(), claims.ID)
				if err == nil && revoked {
					response.AuthExpired(w)
					return
				}
			}

			ctx := context.WithValue(r.Context(), OfficerIDKey, claims.OfficerID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			ctx = context.WithValue(ctx, TokenIDKey, claims.ID)
			ctx = crimeapi.WithToken(ctx, parts[1])

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOfficerID extracts the authenticated officer ID from context
func GetOfficerID(ctx context.Context) int64 {
	if id, ok := ctx.Value(OfficerIDKey).(int64); ok {
		return id
	}
	return 0
}

// GetRole extracts role from context
func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(RoleKey).(string); ok {
		return role
	}
	return ""
}

// GetTokenID extracts the session token ID from context
func GetTokenID(ctx context.Context) string {
	if id, ok := ctx.Value(TokenIDKey).(string); ok {
		return id
	}
	return ""
}

// RequireRole returns middleware that checks user role
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole := GetRole(r.Context())

			for _, role := range roles {
				if userRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Insufficient permissions")
		})
	}
}

// RequireAdmin returns middleware that requires the ADMIN role
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole("ADMIN")
}

// RequirePolice returns middleware that requires the POLICE role
func RequirePolice() func(http.Handler) http.Handler {
	return RequireRole("POLICE")
}
