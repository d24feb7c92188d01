package report

import "errors"

var (
	// Merge errors
	ErrInvalidRecord = errors.New("report record has no report id")

	// Admin transition errors
	ErrMLNotAccepted          = errors.New("report has not been accepted by ML review")
	ErrMissingRejectionReason = errors.New("rejection requires a reason")
	ErrTerminalState          = errors.New("report review is final")
	ErrMissingOfficer         = errors.New("assignment requires an officer")

	// Police transition errors
	ErrNotApprovedForPoliceAction = errors.New("report is not approved for police action")
	ErrIllegalTransition          = errors.New("illegal status transition")
	ErrMissingFeedback            = errors.New("status update requires feedback")
	ErrMissingEvidence            = errors.New("status update requires at least one evidence file")

	// Lookup errors
	ErrReportNotFound = errors.New("report not found")
)
