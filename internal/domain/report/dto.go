package report

// AdminStatusRequest mutates the admin review status of a report.
type AdminStatusRequest struct {
	Status          string `json:"status" validate:"required,admin_status"`
	RejectionReason string `json:"rejectionReason,omitempty" validate:"max=1000"`
}

// AssignOfficerRequest assigns a report to a specific officer.
type AssignOfficerRequest struct {
	OfficerID int64 `json:"officerId" validate:"required"`
}

// PoliceStatusRequest mutates the police handling status. Evidence files
// ride alongside as multipart parts.
type PoliceStatusRequest struct {
	Status   string `json:"status" validate:"required,police_status"`
	Feedback string `json:"feedback,omitempty" validate:"max=2000"`
}

// ProofFile is one evidence artifact submitted with a police transition.
type ProofFile struct {
	Name string
	Data []byte
}

// ReportView is a merged report plus its presentation mappings.
type ReportView struct {
	*Report
	Badges Badges `json:"badges"`
}

// DetailView is a merged report detail plus its presentation mappings.
type DetailView struct {
	*Detail
	Badges Badges `json:"badges"`
}

// AssignResult acknowledges an assignment. StationMismatch flags a manual
// pick outside the report's station; it is a warning, not a failure.
type AssignResult struct {
	OfficerID       int64  `json:"officerId"`
	StationMismatch bool   `json:"stationMismatch,omitempty"`
	Message         string `json:"message,omitempty"`
}

// PoliceUpdateResult acknowledges a police transition. When some evidence
// files could not reach the backend the status change stands, the failures
// are listed, and EvidencePending marks staged files awaiting re-delivery.
type PoliceUpdateResult struct {
	Status          PoliceStatus `json:"status"`
	ActionTakenAt   string       `json:"actionTakenAt,omitempty"`
	EvidencePending bool         `json:"evidencePending,omitempty"`
	UploadedFiles   []string     `json:"uploadedFiles,omitempty"`
	StagedFiles     []string     `json:"stagedFiles,omitempty"`
	FailedFiles     []string     `json:"failedFiles,omitempty"`
}
