package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

const revokedKeyPrefix = "session:revoked:"

// Backend is the slice of the crime API the session service depends on.
type Backend interface {
	Login(ctx context.Context, req crimeapi.LoginRequest) (*crimeapi.LoginResponse, error)
}

// Service manages portal sessions. Sign-in is delegated to the backend;
// sign-out is local, implemented as a token revocation list in Redis.
type Service struct {
	api   Backend
	redis *redis.Client
	ttl   time.Duration
}

// NewService creates the session service. redis may be nil; revocation is
// then disabled and logout becomes a client-side concern.
func NewService(api Backend, redisClient *redis.Client, tokenTTL time.Duration) *Service {
	return &Service{api: api, redis: redisClient, ttl: tokenTTL}
}

// Login exchanges credentials for a backend-issued session token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := s.api.Login(ctx, crimeapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: resp.Token, Authority: resp.Authority}, nil
}

// Revoke blacklists a session token until it would have expired anyway.
func (s *Service) Revoke(ctx context.Context, tokenID string) error {
	if s.redis == nil {
		log.Warn().Msg("Redis not configured, token revocation skipped")
		return nil
	}
	return s.redis.Set(ctx, revokedKeyPrefix+tokenID, "1", s.ttl).Err()
}

// IsRevoked reports whether a session token has been signed out.
// Implements middleware.TokenRevocations.
func (s *Service) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.redis == nil {
		return false, nil
	}
	n, err := s.redis.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
