package report

import (
	"bytes"
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/crimewatch/portal-api/internal/domain/assignment"
	"github.com/crimewatch/portal-api/internal/pkg/crimeapi"
	"github.com/crimewatch/portal-api/internal/pkg/imaging"
)

// Backend is the slice of the crime API the report service depends on.
type Backend interface {
	ListReports(ctx context.Context, params crimeapi.ListReportsParams) (*crimeapi.ReportPage, error)
	ListAssignedReports(ctx context.Context, officerID int64, page, size int) (*crimeapi.ReportPage, error)
	GetReportChain(ctx context.Context) ([]crimeapi.LedgerEntry, error)
	GetReport(ctx context.Context, reportID string) (*crimeapi.ReportDetail, error)
	AssignReport(ctx context.Context, req crimeapi.AssignRequest) (*crimeapi.StatusUpdateResponse, error)
	AutoAssignReport(ctx context.Context, req crimeapi.AutoAssignRequest) (*crimeapi.AutoAssignResponse, error)
	UpdateAdminStatus(ctx context.Context, req crimeapi.UpdateAdminStatusRequest) (*crimeapi.StatusUpdateResponse, error)
	UpdatePoliceStatus(ctx context.Context, req crimeapi.UpdatePoliceStatusRequest) (*crimeapi.PoliceStatusResponse, error)
	PatchReportStatus(ctx context.Context, reportID string, req crimeapi.PatchStatusRequest) error
	UploadPoliceProof(ctx context.Context, reportID, filename string, file io.Reader) (*crimeapi.UploadProofResponse, error)
	ListStations(ctx context.Context) ([]crimeapi.Station, error)
	ListAuthorities(ctx context.Context) ([]crimeapi.Authority, error)
}

// EvidenceStager parks evidence files that failed to reach the backend so
// the transition is not silently lossy.
type EvidenceStager interface {
	StageProof(ctx context.Context, reportID, filename string, data []byte) (string, error)
}

// Service orchestrates report workflow operations against the backend.
type Service struct {
	api    Backend
	stager EvidenceStager
	images *imaging.Processor
}

// NewService creates the report service. stager and images may be nil;
// staging and image normalization are then skipped.
func NewService(api Backend, stager EvidenceStager, images *imaging.Processor) *Service {
	return &Service{api: api, stager: stager, images: images}
}

// List returns one merged page of reports for the admin portal.
func (s *Service) List(ctx context.Context, params crimeapi.ListReportsParams) ([]*ReportView, int, error) {
	page, err := s.api.ListReports(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return s.mergePage(ctx, page)
}

// ListAssigned returns one merged page of an officer's assigned reports.
func (s *Service) ListAssigned(ctx context.Context, officerID int64, pageNum, size int) ([]*ReportView, int, error) {
	page, err := s.api.ListAssignedReports(ctx, officerID, pageNum, size)
	if err != nil {
		return nil, 0, err
	}
	return s.mergePage(ctx, page)
}

// mergePage reconciles a relational page with the ledger. A ledger fetch
// failure degrades to unverified content rather than failing the listing;
// the ledger is an optional source.
func (s *Service) mergePage(ctx context.Context, page *crimeapi.ReportPage) ([]*ReportView, int, error) {
	entries, err := s.api.GetReportChain(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Ledger fetch failed, serving unverified content")
		entries = nil
	}

	views := make([]*ReportView, 0, len(page.Reports))
	for _, record := range page.Reports {
		merged, err := Merge(record, entries)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping unmergeable report record")
			continue
		}
		views = append(views, &ReportView{Report: merged, Badges: BadgesFor(merged)})
	}
	return views, page.TotalPages, nil
}

// Get returns the merged report detail.
func (s *Service) Get(ctx context.Context, reportID string) (*DetailView, error) {
	detail, err := s.api.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	entries, err := s.api.GetReportChain(ctx)
	if err != nil {
		log.Warn().Err(err).Str("report_id", reportID).Msg("Ledger fetch failed, serving unverified content")
		entries = nil
	}

	merged, err := Merge(detail.ReportRecord, entries)
	if err != nil {
		return nil, err
	}

	view := &Detail{
		Report:             *merged,
		MLScore:            detail.MLScore,
		SHAPExplanation:    string(detail.SHAPExplanation),
		BlockchainTxID:     detail.BlockchainTxID,
		BlockchainVerified: detail.BlockchainVerified,
	}
	return &DetailView{Detail: view, Badges: BadgesFor(merged)}, nil
}

// EligibleOfficers returns the officers assignable to a report.
func (s *Service) EligibleOfficers(ctx context.Context, reportID string) ([]crimeapi.Authority, error) {
	detail, err := s.api.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	stations, err := s.api.ListStations(ctx)
	if err != nil {
		return nil, err
	}
	officers, err := s.api.ListAuthorities(ctx)
	if err != nil {
		return nil, err
	}
	return assignment.EligibleOfficers(detail.PoliceStation, stations, officers), nil
}

// Assign assigns a report to a specific officer. Station mismatch is a
// soft warning on the result, never a hard failure.
func (s *Service) Assign(ctx context.Context, reportID string, officerID, reviewedBy int64) (*AssignResult, error) {
	detail, err := s.api.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	payload := TransitionPayload{OfficerID: officerID}
	if err := ValidateAdminTransition(AdminStatus(detail.AdminStatus), MLStatus(detail.MLStatus), AdminAssigned, payload); err != nil {
		return nil, err
	}

	mismatch := false
	stations, stErr := s.api.ListStations(ctx)
	officers, ofErr := s.api.ListAuthorities(ctx)
	if stErr == nil && ofErr == nil {
		mismatch = !assignment.IsEligible(officerID, detail.PoliceStation, stations, officers)
	}
	if mismatch {
		log.Warn().
			Str("report_id", reportID).
			Int64("officer_id", officerID).
			Str("station", detail.PoliceStation).
			Msg("Manual assignment outside report station")
	}

	resp, err := s.api.AssignReport(ctx, crimeapi.AssignRequest{
		ReportID:     reportID,
		OfficerID:    officerID,
		ReviewStatus: string(AdminAssigned),
		ReviewedByID: reviewedBy,
	})
	if err != nil {
		return nil, err
	}

	return &AssignResult{OfficerID: officerID, StationMismatch: mismatch, Message: resp.Message}, nil
}

// AutoAssign delegates nearest-officer selection to the backend after
// gating the preconditions client-side: ML acceptance, non-terminal review
// state, and the presence of coordinates. No backend call is made when a
// precondition fails.
func (s *Service) AutoAssign(ctx context.Context, reportID string, reviewedBy int64) (*AssignResult, error) {
	detail, err := s.api.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if AdminStatus(detail.AdminStatus).Terminal() {
		return nil, ErrTerminalState
	}
	if MLStatus(detail.MLStatus) != MLAccepted {
		return nil, ErrMLNotAccepted
	}
	if err := assignment.CanAutoAssign(detail.Latitude, detail.Longitude); err != nil {
		return nil, err
	}

	resp, err := s.api.AutoAssignReport(ctx, crimeapi.AutoAssignRequest{
		ReportID:     reportID,
		ReviewStatus: string(AdminAssigned),
		ReviewedByID: reviewedBy,
	})
	if err != nil {
		return nil, err
	}

	return &AssignResult{OfficerID: resp.OfficerID}, nil
}

// UpdateAdminStatus validates and applies an admin review transition.
func (s *Service) UpdateAdminStatus(ctx context.Context, reportID string, next AdminStatus, rejectionReason string, reviewedBy int64) (string, error) {
	detail, err := s.api.GetReport(ctx, reportID)
	if err != nil {
		return "", err
	}

	payload := TransitionPayload{RejectionReason: rejectionReason}
	if err := ValidateAdminTransition(AdminStatus(detail.AdminStatus), MLStatus(detail.MLStatus), next, payload); err != nil {
		return "", err
	}

	resp, err := s.api.UpdateAdminStatus(ctx, crimeapi.UpdateAdminStatusRequest{
		ReportID:        reportID,
		AdminStatus:     string(next),
		ReviewedByID:    reviewedBy,
		RejectionReason: rejectionReason,
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdatePoliceStatus validates and applies a police handling transition.
//
// Feedback-bearing transitions (ACTION_TAKEN, RESOLVED) go through the
// update-police-status endpoint and then deliver evidence files one by
// one. A file that fails to upload does not revert the status change:
// it is staged for re-delivery when a stager is configured, and the
// result reports the partial outcome explicitly. Plain movements use the
// lighter PATCH status endpoint.
func (s *Service) UpdatePoliceStatus(ctx context.Context, reportID string, next PoliceStatus, feedback string, officerID int64, files []ProofFile) (*PoliceUpdateResult, error) {
	detail, err := s.api.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	evidenceCount := len(files)
	if detail.PoliceActionProof != "" {
		evidenceCount++
	}

	payload := TransitionPayload{Feedback: feedback, EvidenceCount: evidenceCount, OfficerID: officerID}
	if err := ValidatePoliceTransition(PoliceStatus(detail.PoliceStatus), AdminStatus(detail.AdminStatus), next, payload); err != nil {
		return nil, err
	}

	result := &PoliceUpdateResult{Status: next}

	if next.RequiresFeedback() {
		resp, err := s.api.UpdatePoliceStatus(ctx, crimeapi.UpdatePoliceStatusRequest{
			ReportID:     reportID,
			PoliceStatus: string(next),
			OfficerID:    officerID,
			Feedback:     feedback,
		})
		if err != nil {
			return nil, err
		}
		result.ActionTakenAt = resp.ActionTakenAt

		s.deliverProofs(ctx, reportID, files, result)
		return result, nil
	}

	err = s.api.PatchReportStatus(ctx, reportID, crimeapi.PatchStatusRequest{
		Status:             string(next),
		UpdatedByOfficerID: officerID,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// deliverProofs uploads evidence files after a successful status change.
// Failures never propagate as errors: the status change already happened,
// so each failed file is staged (when possible) and reported.
func (s *Service) deliverProofs(ctx context.Context, reportID string, files []ProofFile, result *PoliceUpdateResult) {
	for _, file := range files {
		data := s.normalizeProof(file)

		if _, err := s.api.UploadPoliceProof(ctx, reportID, file.Name, bytes.NewReader(data)); err != nil {
			log.Error().Err(err).
				Str("report_id", reportID).
				Str("file", file.Name).
				Msg("Evidence upload failed")

			if s.stager != nil {
				if key, stageErr := s.stager.StageProof(ctx, reportID, file.Name, data); stageErr == nil {
					result.StagedFiles = append(result.StagedFiles, key)
					result.EvidencePending = true
					continue
				} else {
					log.Error().Err(stageErr).Str("file", file.Name).Msg("Evidence staging failed")
				}
			}
			result.FailedFiles = append(result.FailedFiles, file.Name)
			continue
		}
		result.UploadedFiles = append(result.UploadedFiles, file.Name)
	}
}

// normalizeProof downsizes oversized evidence images before upload.
// Non-images and processor failures pass the original bytes through.
func (s *Service) normalizeProof(file ProofFile) []byte {
	if s.images == nil || !imaging.ValidateType(file.Name) {
		return file.Data
	}
	processed, err := s.images.Process(bytes.NewReader(file.Data))
	if err != nil {
		log.Warn().Err(err).Str("file", file.Name).Msg("Proof image normalization failed, uploading original")
		return file.Data
	}
	return processed
}
