package station

import (
	"context"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

// Backend is the slice of the crime API the station service depends on.
type Backend interface {
	ListStations(ctx context.Context) ([]crimeapi.Station, error)
	CreateStation(ctx context.Context, req crimeapi.StationRequest) (*crimeapi.Station, error)
	UpdateStation(ctx context.Context, id int64, req crimeapi.StationRequest) (*crimeapi.Station, error)
	DeleteStation(ctx context.Context, id int64) error
}

// Service manages police station reference data through the backend.
type Service struct {
	api Backend
}

// NewService creates the station service
func NewService(api Backend) *Service {
	return &Service{api: api}
}

// List returns all police stations.
func (s *Service) List(ctx context.Context) ([]crimeapi.Station, error) {
	return s.api.ListStations(ctx)
}

// Create registers a new police station.
func (s *Service) Create(ctx context.Context, payload StationPayload) (*crimeapi.Station, error) {
	return s.api.CreateStation(ctx, crimeapi.StationRequest{
		Name:      payload.Name,
		Address:   payload.Address,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	})
}

// Update modifies an existing police station.
func (s *Service) Update(ctx context.Context, id int64, payload StationPayload) (*crimeapi.Station, error) {
	return s.api.UpdateStation(ctx, id, crimeapi.StationRequest{
		Name:      payload.Name,
		Address:   payload.Address,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	})
}

// Delete removes a police station. The backend refuses while officers are
// still attached; that refusal passes through verbatim.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteStation(ctx, id)
}
