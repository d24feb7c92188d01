package crimeapi

import (
	"encoding/json"
	"time"
)

// ReportRecord is a report row from the relational listing. It is
// authoritative for every status and assignment field.
type ReportRecord struct {
	ReportID          string    `json:"reportId"`
	CrimeTypeID       int64     `json:"crimeTypeId"`
	CategoryID        int64     `json:"categoryId"`
	Description       string    `json:"description"`
	TranslatedText    string    `json:"translatedText"`
	MLStatus          string    `json:"mlStatus"`
	AdminStatus       string    `json:"adminStatus"`
	PoliceStatus      string    `json:"policeStatus"`
	Urgency           string    `json:"urgency"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	PoliceStation     string    `json:"policeStation"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	AssignedOfficerID *int64    `json:"assignedOfficerId,omitempty"`
	RejectionReason   string    `json:"rejectionReason,omitempty"`
	PoliceFeedback    string    `json:"policeFeedback,omitempty"`
	PoliceActionProof string    `json:"policeActionProof,omitempty"`
	SubmittedAt       time.Time `json:"submittedAt"`
}

// ReportPage is one page of the relational listing.
type ReportPage struct {
	Reports    []ReportRecord `json:"reports"`
	TotalPages int            `json:"totalPages"`
}

// LedgerData is the originally submitted report content recorded on the
// blockchain ledger. It is authoritative for submission-time fields only.
type LedgerData struct {
	ReportID       string    `json:"reportId"`
	Description    string    `json:"description"`
	TranslatedText string    `json:"translatedText"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// LedgerEntry wraps a ledger record as returned by GET /api/reports/chain.
type LedgerEntry struct {
	Data LedgerData `json:"data"`
}

// ReportDetail is the full report view including ML and blockchain fields.
type ReportDetail struct {
	ReportRecord
	MLScore            float64         `json:"mlScore"`
	SHAPExplanation    json.RawMessage `json:"shapExplanation,omitempty"`
	BlockchainTxID     string          `json:"blockchainTxId,omitempty"`
	BlockchainVerified bool            `json:"blockchainVerified"`
}

// AssignRequest is the body of POST /api/reports/assign.
type AssignRequest struct {
	ReportID     string `json:"reportId"`
	OfficerID    int64  `json:"officerId"`
	ReviewStatus string `json:"reviewStatus"`
	ReviewedByID int64  `json:"reviewedById"`
}

// AutoAssignRequest is the body of POST /api/reports/auto-assign.
type AutoAssignRequest struct {
	ReportID     string `json:"reportId"`
	ReviewStatus string `json:"reviewStatus"`
	ReviewedByID int64  `json:"reviewedById"`
}

// AutoAssignResponse carries the officer picked by the backend.
type AutoAssignResponse struct {
	OfficerID int64 `json:"officerId"`
}

// UpdateAdminStatusRequest is the body of POST /api/reports/update-admin-status.
type UpdateAdminStatusRequest struct {
	ReportID        string `json:"reportId"`
	AdminStatus     string `json:"adminStatus"`
	ReviewedByID    int64  `json:"reviewedById"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// UpdateReviewStatusRequest is the legacy single-status update body.
type UpdateReviewStatusRequest struct {
	ReportID        string `json:"reportId"`
	ReviewStatus    string `json:"reviewStatus"`
	ReviewedByID    int64  `json:"reviewedById"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// StatusUpdateResponse is the generic status mutation acknowledgement.
type StatusUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpdatePoliceStatusRequest is the body of POST /api/reports/update-police-status.
type UpdatePoliceStatusRequest struct {
	ReportID     string `json:"reportId"`
	PoliceStatus string `json:"policeStatus"`
	OfficerID    int64  `json:"officerId"`
	Feedback     string `json:"feedback,omitempty"`
	ActionProof  string `json:"actionProof,omitempty"`
}

// PoliceStatusResponse acknowledges a police status mutation.
type PoliceStatusResponse struct {
	Success       bool   `json:"success"`
	ActionTakenAt string `json:"actionTakenAt,omitempty"`
}

// PatchStatusRequest is the body of PATCH /api/reports/{id}/status.
type PatchStatusRequest struct {
	Status             string `json:"status"`
	UpdatedByOfficerID int64  `json:"updatedByOfficerId"`
}

// UploadProofResponse acknowledges an evidence file upload.
type UploadProofResponse struct {
	Success bool   `json:"success"`
	FileURL string `json:"fileUrl,omitempty"`
}

// Station is a police station reference record.
type Station struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StationRequest creates or updates a station.
type StationRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Authority is an officer or admin account record.
type Authority struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StationID *int64 `json:"stationId,omitempty"`
	Role      string `json:"role"`
}

// AuthorityRequest creates or updates an authority. Password is only sent
// on create; the backend ignores it on update.
type AuthorityRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	StationID *int64 `json:"stationId,omitempty"`
	Role      string `json:"role"`
}

// CrimeType is a crime classification reference record.
type CrimeType struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
}

// CrimeTypeRequest creates or updates a crime type.
type CrimeTypeRequest struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
}

// CrimeCategory groups crime types.
type CrimeCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CrimeCategoryRequest creates or updates a crime category.
type CrimeCategoryRequest struct {
	Name string `json:"name"`
}

// ReportStats is the dashboard report aggregate.
type ReportStats struct {
	Total          int            `json:"total"`
	ByAdminStatus  map[string]int `json:"byAdminStatus"`
	ByPoliceStatus map[string]int `json:"byPoliceStatus"`
	ByUrgency      map[string]int `json:"byUrgency"`
}

// CategoryStat is the dashboard per-category aggregate.
type CategoryStat struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}
