package authority

import (
	"context"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

// Backend is the slice of the crime API the authority service depends on.
type Backend interface {
	ListAuthorities(ctx context.Context) ([]crimeapi.Authority, error)
	CreateAuthority(ctx context.Context, req crimeapi.AuthorityRequest) (*crimeapi.Authority, error)
	UpdateAuthority(ctx context.Context, id int64, req crimeapi.AuthorityRequest) (*crimeapi.Authority, error)
	DeleteAuthority(ctx context.Context, id int64) error
}

// Service manages admin and officer accounts through the backend.
type Service struct {
	api Backend
}

// NewService creates the authority service
func NewService(api Backend) *Service {
	return &Service{api: api}
}

// List returns all authority accounts.
func (s *Service) List(ctx context.Context) ([]crimeapi.Authority, error) {
	return s.api.ListAuthorities(ctx)
}

// ListOfficers returns only POLICE accounts, optionally narrowed to a
// station. Used to populate assignment pickers.
func (s *Service) ListOfficers(ctx context.Context, stationID int64) ([]crimeapi.Authority, error) {
	all, err := s.api.ListAuthorities(ctx)
	if err != nil {
		return nil, err
	}

	officers := make([]crimeapi.Authority, 0, len(all))
	for _, a := range all {
		if a.Role != "POLICE" {
			continue
		}
		if stationID != 0 && (a.StationID == nil || *a.StationID != stationID) {
			continue
		}
		officers = append(officers, a)
	}
	return officers, nil
}

// Create registers a new account.
func (s *Service) Create(ctx context.Context, payload CreatePayload) (*crimeapi.Authority, error) {
	return s.api.CreateAuthority(ctx, crimeapi.AuthorityRequest{
		Name:      payload.Name,
		Email:     payload.Email,
		Password:  payload.Password,
		StationID: payload.StationID,
		Role:      payload.Role,
	})
}

// Update modifies an existing account.
func (s *Service) Update(ctx context.Context, id int64, payload UpdatePayload) (*crimeapi.Authority, error) {
	return s.api.UpdateAuthority(ctx, id, crimeapi.AuthorityRequest{
		Name:      payload.Name,
		Email:     payload.Email,
		StationID: payload.StationID,
		Role:      payload.Role,
	})
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteAuthority(ctx, id)
}
