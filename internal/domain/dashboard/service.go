package dashboard

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
)

// Backend is the slice of the crime API the dashboard service depends on.
type Backend interface {
	GetReportStats(ctx context.Context) (*crimeapi.ReportStats, error)
	GetCategoryStats(ctx context.Context) ([]crimeapi.CategoryStat, error)
}

// Summary aggregates the dashboard view.
type Summary struct {
	Reports    *crimeapi.ReportStats   `json:"reports"`
	Categories []crimeapi.CategoryStat `json:"categories,omitempty"`
}

// Service builds the dashboard from backend aggregates. Aggregate queries
// are slow on the backend side, so each fetch runs under its own deadline
// and is never retried.
type Service struct {
	api     Backend
	timeout time.Duration
}

// NewService creates the dashboard service
func NewService(api Backend, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{api: api, timeout: timeout}
}

// GetSummary returns the dashboard aggregates. The per-category breakdown
// is secondary: its failure degrades to an empty section rather than
// failing the whole dashboard.
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	statsCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.api.GetReportStats(statsCtx)
	if err != nil {
		return nil, err
	}

	catCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	categories, err := s.api.GetCategoryStats(catCtx)
	if err != nil {
		log.Warn().Err(err).Msg("Category stats fetch failed, serving partial dashboard")
		categories = nil
	}

	return &Summary{Reports: stats, Categories: categories}, nil
}
