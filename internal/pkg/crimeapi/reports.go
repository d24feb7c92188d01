package crimeapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// assignedReportsRetries is the number of extra attempts after a timed-out
// assigned-reports fetch. Other calls never retry.
const assignedReportsRetries = 2

// ListReportsParams filters the paginated report listing.
type ListReportsParams struct {
	Page      int
	Size      int
	StationID int64
	OfficerID int64
}

func (p ListReportsParams) query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("size", strconv.Itoa(p.Size))
	if p.StationID != 0 {
		q.Set("stationId", strconv.FormatInt(p.StationID, 10))
	}
	if p.OfficerID != 0 {
		q.Set("officerId", strconv.FormatInt(p.OfficerID, 10))
	}
	return q
}

// ListReports fetches one page of the relational report listing.
func (c *Client) ListReports(ctx context.Context, params ListReportsParams) (*ReportPage, error) {
	var page ReportPage
	if err := c.do(ctx, http.MethodGet, "/api/reports", params.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAssignedReports fetches the reports assigned to an officer. A
// timed-out fetch is retried up to two times; every other failure is final.
func (c *Client) ListAssignedReports(ctx context.Context, officerID int64, page, size int) (*ReportPage, error) {
	params := ListReportsParams{Page: page, Size: size, OfficerID: officerID}

	var result *ReportPage
	var err error
	for attempt := 0; attempt <= assignedReportsRetries; attempt++ {
		result, err = c.ListReports(ctx, params)
		if err == nil || !errors.Is(err, ErrTimeout) {
			return result, err
		}
	}
	return nil, err
}

// GetReportChain fetches all blockchain ledger entries.
func (c *Client) GetReportChain(ctx context.Context) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	if err := c.do(ctx, http.MethodGet, "/api/reports/chain", nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetReport fetches the full report detail.
func (c *Client) GetReport(ctx context.Context, reportID string) (*ReportDetail, error) {
	var detail ReportDetail
	if err := c.do(ctx, http.MethodGet, "/api/reports/"+url.PathEscape(reportID), nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AssignReport assigns a report to a specific officer.
func (c *Client) AssignReport(ctx context.Context, req AssignRequest) (*StatusUpdateResponse, error) {
	var resp StatusUpdateResponse
	if err := c.do(ctx, http.MethodPost, "/api/reports/assign", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AutoAssignReport delegates nearest-officer selection to the backend.
func (c *Client) AutoAssignReport(ctx context.Context, req AutoAssignRequest) (*AutoAssignResponse, error) {
	var resp AutoAssignResponse
	if err := c.do(ctx, http.MethodPost, "/api/reports/auto-assign", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAdminStatus mutates the admin review status.
func (c *Client) UpdateAdminStatus(ctx context.Context, req UpdateAdminStatusRequest) (*StatusUpdateResponse, error) {
	var resp StatusUpdateResponse
	if err := c.do(ctx, http.MethodPost, "/api/reports/update-admin-status", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateReviewStatus calls the legacy single-status endpoint. Kept for
// backends that have not migrated to update-admin-status.
func (c *Client) UpdateReviewStatus(ctx context.Context, req UpdateReviewStatusRequest) (*StatusUpdateResponse, error) {
	var resp StatusUpdateResponse
	if err := c.do(ctx, http.MethodPost, "/api/reports/update-review-status", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePoliceStatus mutates the police handling status.
func (c *Client) UpdatePoliceStatus(ctx context.Context, req UpdatePoliceStatusRequest) (*PoliceStatusResponse, error) {
	var resp PoliceStatusResponse
	if err := c.do(ctx, http.MethodPost, "/api/reports/update-police-status", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PatchReportStatus updates a report status through the PATCH endpoint.
func (c *Client) PatchReportStatus(ctx context.Context, reportID string, req PatchStatusRequest) error {
	return c.do(ctx, http.MethodPatch, "/api/reports/"+url.PathEscape(reportID)+"/status", nil, req, nil)
}

// GetReportStats fetches the dashboard report aggregate.
func (c *Client) GetReportStats(ctx context.Context) (*ReportStats, error) {
	var stats ReportStats
	if err := c.do(ctx, http.MethodGet, "/api/reports/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetCategoryStats fetches the dashboard per-category aggregate.
func (c *Client) GetCategoryStats(ctx context.Context) ([]CategoryStat, error) {
	var stats []CategoryStat
	if err := c.do(ctx, http.MethodGet, "/api/crime-categories/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
