package report

import (
	"fmt"
	"strings"
)

// TransitionPayload carries the side data a status transition may require.
type TransitionPayload struct {
	OfficerID       int64
	RejectionReason string
	Feedback        string
	EvidenceCount   int
}

// policeEdges is the legal police transition adjacency. One step forward,
// one step back; CLOSED has no outgoing edges.
var policeEdges = map[PoliceStatus][]PoliceStatus{
	PoliceNotViewed:   {PoliceViewed},
	PoliceViewed:      {PoliceInProgress, PoliceNotViewed},
	PoliceInProgress:  {PoliceActionTaken, PoliceViewed},
	PoliceActionTaken: {PoliceResolved, PoliceInProgress},
	PoliceResolved:    {PoliceClosed, PoliceActionTaken},
	PoliceClosed:      {},
}

// ValidateAdminTransition decides whether an admin review transition is
// legal. It is a pure decision function: the caller persists the change.
//
// APPROVED, REJECTED and ASSIGNED all require ML acceptance. APPROVED and
// REJECTED are terminal; REJECTED must carry a reason; ASSIGNED must carry
// an officer.
func ValidateAdminTransition(current AdminStatus, ml MLStatus, next AdminStatus, payload TransitionPayload) error {
	if current.Terminal() {
		return ErrTerminalState
	}

	switch next {
	case AdminApproved:
		if ml != MLAccepted {
			return ErrMLNotAccepted
		}
	case AdminRejected:
		if ml != MLAccepted {
			return ErrMLNotAccepted
		}
		if strings.TrimSpace(payload.RejectionReason) == "" {
			return ErrMissingRejectionReason
		}
	case AdminAssigned:
		if ml != MLAccepted {
			return ErrMLNotAccepted
		}
		if payload.OfficerID == 0 {
			return ErrMissingOfficer
		}
	default:
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, next)
	}

	return nil
}

// ValidatePoliceTransition decides whether a police handling transition is
// legal. Police action is gated on admin approval or assignment; the edge
// must exist in the adjacency; ACTION_TAKEN requires feedback and RESOLVED
// requires feedback plus at least one evidence artifact.
func ValidatePoliceTransition(current PoliceStatus, admin AdminStatus, next PoliceStatus, payload TransitionPayload) error {
	if admin != AdminApproved && admin != AdminAssigned {
		return ErrNotApprovedForPoliceAction
	}

	if !policeEdgeAllowed(current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, next)
	}

	if next.RequiresFeedback() && strings.TrimSpace(payload.Feedback) == "" {
		return ErrMissingFeedback
	}
	if next.RequiresEvidence() && payload.EvidenceCount < 1 {
		return ErrMissingEvidence
	}

	return nil
}

func policeEdgeAllowed(current, next PoliceStatus) bool {
	for _, allowed := range policeEdges[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
