package report

import (
	"time"
)

// Report is the merged view model served to the portal: relational record
// fields reconciled with the blockchain ledger copy of the originally
// submitted content.
type Report struct {
	ReportID          string       `json:"reportId"`
	CrimeTypeID       int64        `json:"crimeTypeId"`
	CategoryID        int64        `json:"categoryId"`
	Description       string       `json:"description"`
	TranslatedText    string       `json:"translatedText,omitempty"`
	MLStatus          MLStatus     `json:"mlStatus"`
	AdminStatus       AdminStatus  `json:"adminStatus"`
	PoliceStatus      PoliceStatus `json:"policeStatus"`
	Urgency           Urgency      `json:"urgency"`
	Address           string       `json:"address"`
	City              string       `json:"city"`
	State             string       `json:"state"`
	PoliceStation     string       `json:"policeStation"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
	AssignedOfficerID *int64       `json:"assignedOfficerId,omitempty"`
	RejectionReason   string       `json:"rejectionReason,omitempty"`
	PoliceFeedback    string       `json:"policeFeedback,omitempty"`
	PoliceActionProof string       `json:"policeActionProof,omitempty"`
	SubmittedAt       time.Time    `json:"submittedAt"`

	// LedgerVerified is true when a matching ledger entry supplied the
	// submission-time content fields.
	LedgerVerified bool `json:"ledgerVerified"`
}

// HasLocation reports whether the report carries usable coordinates
func (r *Report) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Detail extends the merged report with ML scoring and blockchain fields
// from the detail endpoint.
type Detail struct {
	Report
	MLScore            float64 `json:"mlScore"`
	SHAPExplanation    string  `json:"shapExplanation,omitempty"`
	BlockchainTxID     string  `json:"blockchainTxId,omitempty"`
	BlockchainVerified bool    `json:"blockchainVerified"`
}

// Badges groups the presentation mappings for one report.
type Badges struct {
	ML      Badge `json:"ml"`
	Admin   Badge `json:"admin"`
	Police  Badge `json:"police"`
	Urgency Badge `json:"urgency"`
}

// BadgesFor computes the presentation mappings for a report
func BadgesFor(r *Report) Badges {
	return Badges{
		ML:      r.MLStatus.Badge(),
		Admin:   r.AdminStatus.Badge(),
		Police:  r.PoliceStatus.Badge(),
		Urgency: r.Urgency.Badge(),
	}
}
