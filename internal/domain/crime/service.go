package crime

import (
	"context"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

// Backend is the slice of the crime API the taxonomy service depends on.
type Backend interface {
	ListCrimeTypes(ctx context.Context) ([]crimeapi.CrimeType, error)
	CreateCrimeType(ctx context.Context, req crimeapi.CrimeTypeRequest) (*crimeapi.CrimeType, error)
	UpdateCrimeType(ctx context.Context, id int64, req crimeapi.CrimeTypeRequest) (*crimeapi.CrimeType, error)
	DeleteCrimeType(ctx context.Context, id int64) error
	ListCrimeCategories(ctx context.Context) ([]crimeapi.CrimeCategory, error)
	CreateCrimeCategory(ctx context.Context, req crimeapi.CrimeCategoryRequest) (*crimeapi.CrimeCategory, error)
	UpdateCrimeCategory(ctx context.Context, id int64, req crimeapi.CrimeCategoryRequest) (*crimeapi.CrimeCategory, error)
	DeleteCrimeCategory(ctx context.Context, id int64) error
}

// Service manages the crime taxonomy (types and categories) through the
// backend.
type Service struct {
	api Backend
}

// NewService creates the crime taxonomy service
func NewService(api Backend) *Service {
	return &Service{api: api}
}

// ListTypes returns all crime types.
func (s *Service) ListTypes(ctx context.Context) ([]crimeapi.CrimeType, error) {
	return s.api.ListCrimeTypes(ctx)
}

// CreateType registers a crime type under a category.
func (s *Service) CreateType(ctx context.Context, payload TypePayload) (*crimeapi.CrimeType, error) {
	return s.api.CreateCrimeType(ctx, crimeapi.CrimeTypeRequest{
		Name:       payload.Name,
		CategoryID: payload.CategoryID,
	})
}

// UpdateType modifies a crime type.
func (s *Service) UpdateType(ctx context.Context, id int64, payload TypePayload) (*crimeapi.CrimeType, error) {
	return s.api.UpdateCrimeType(ctx, id, crimeapi.CrimeTypeRequest{
		Name:       payload.Name,
		CategoryID: payload.CategoryID,
	})
}

// DeleteType removes a crime type.
func (s *Service) DeleteType(ctx context.Context, id int64) error {
	return s.api.DeleteCrimeType(ctx, id)
}

// ListCategories returns all crime categories.
func (s *Service) ListCategories(ctx context.Context) ([]crimeapi.CrimeCategory, error) {
	return s.api.ListCrimeCategories(ctx)
}

// CreateCategory registers a crime category.
func (s *Service) CreateCategory(ctx context.Context, payload CategoryPayload) (*crimeapi.CrimeCategory, error) {
	return s.api.CreateCrimeCategory(ctx, crimeapi.CrimeCategoryRequest{Name: payload.Name})
}

// UpdateCategory modifies a crime category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, payload CategoryPayload) (*crimeapi.CrimeCategory, error) {
	return s.api.UpdateCrimeCategory(ctx, id, crimeapi.CrimeCategoryRequest{Name: payload.Name})
}

// DeleteCategory removes a crime category. The backend refuses while crime
// types still reference it; that refusal passes through verbatim.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.api.DeleteCrimeCategory(ctx, id)
}
