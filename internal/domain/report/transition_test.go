package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAdminTransition(t *testing.T) {
	tests := []struct {
		name    string
		current AdminStatus
		ml      MLStatus
		next    AdminStatus
		payload TransitionPayload
		wantErr error
	}{
		{
			name:    "pending to approved with ML acceptance",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminApproved,
		},
		{
			name:    "pending to rejected with reason",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminRejected,
			payload: TransitionPayload{RejectionReason: "duplicate report"},
		},
		{
			name:    "pending to assigned with officer",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminAssigned,
			payload: TransitionPayload{OfficerID: 7},
		},
		{
			name:    "assigned back to approved stays legal",
			current: AdminAssigned,
			ml:      MLAccepted,
			next:    AdminApproved,
		},
		{
			name:    "approve blocked without ML acceptance",
			current: AdminPending,
			ml:      MLPendingReview,
			next:    AdminApproved,
			wantErr: ErrMLNotAccepted,
		},
		{
			name:    "reject blocked without ML acceptance",
			current: AdminPending,
			ml:      MLRejected,
			next:    AdminRejected,
			payload: TransitionPayload{RejectionReason: "spam"},
			wantErr: ErrMLNotAccepted,
		},
		{
			name:    "assign blocked without ML acceptance",
			current: AdminPending,
			ml:      MLRejected,
			next:    AdminAssigned,
			payload: TransitionPayload{OfficerID: 7},
			wantErr: ErrMLNotAccepted,
		},
		{
			name:    "reject requires a reason",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminRejected,
			wantErr: ErrMissingRejectionReason,
		},
		{
			name:    "whitespace reason does not count",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminRejected,
			payload: TransitionPayload{RejectionReason: "   "},
			wantErr: ErrMissingRejectionReason,
		},
		{
			name:    "assign requires an officer",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminAssigned,
			wantErr: ErrMissingOfficer,
		},
		{
			name:    "approved is terminal",
			current: AdminApproved,
			ml:      MLAccepted,
			next:    AdminAssigned,
			payload: TransitionPayload{OfficerID: 7},
			wantErr: ErrTerminalState,
		},
		{
			name:    "rejected is terminal",
			current: AdminRejected,
			ml:      MLAccepted,
			next:    AdminApproved,
			wantErr: ErrTerminalState,
		},
		{
			name:    "moving back to pending is illegal",
			current: AdminAssigned,
			ml:      MLAccepted,
			next:    AdminPending,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "unknown target is illegal",
			current: AdminPending,
			ml:      MLAccepted,
			next:    AdminStatus("ESCALATED"),
			wantErr: ErrIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminTransition(tt.current, tt.ml, tt.next, tt.payload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePoliceTransition(t *testing.T) {
	tests := []struct {
		name    string
		current PoliceStatus
		admin   AdminStatus
		next    PoliceStatus
		payload TransitionPayload
		wantErr error
	}{
		{
			name:    "not viewed to viewed",
			current: PoliceNotViewed,
			admin:   AdminAssigned,
			next:    PoliceViewed,
		},
		{
			name:    "viewed to in progress",
			current: PoliceViewed,
			admin:   AdminApproved,
			next:    PoliceInProgress,
		},
		{
			name:    "viewed back to not viewed",
			current: PoliceViewed,
			admin:   AdminAssigned,
			next:    PoliceNotViewed,
		},
		{
			name:    "in progress to action taken with feedback",
			current: PoliceInProgress,
			admin:   AdminAssigned,
			next:    PoliceActionTaken,
			payload: TransitionPayload{Feedback: "patrol dispatched"},
		},
		{
			name:    "action taken to resolved with feedback and evidence",
			current: PoliceActionTaken,
			admin:   AdminAssigned,
			next:    PoliceResolved,
			payload: TransitionPayload{Feedback: "suspect detained", EvidenceCount: 1},
		},
		{
			name:    "resolved to closed",
			current: PoliceResolved,
			admin:   AdminAssigned,
			next:    PoliceClosed,
		},
		{
			name:    "resolved back to action taken",
			current: PoliceResolved,
			admin:   AdminAssigned,
			next:    PoliceActionTaken,
			payload: TransitionPayload{Feedback: "reopening for follow-up"},
		},
		{
			name:    "pending admin review blocks police action",
			current: PoliceNotViewed,
			admin:   AdminPending,
			next:    PoliceViewed,
			wantErr: ErrNotApprovedForPoliceAction,
		},
		{
			name:    "rejected report blocks police action",
			current: PoliceNotViewed,
			admin:   AdminRejected,
			next:    PoliceViewed,
			wantErr: ErrNotApprovedForPoliceAction,
		},
		{
			name:    "skipping a step is illegal",
			current: PoliceNotViewed,
			admin:   AdminAssigned,
			next:    PoliceInProgress,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "jumping straight to resolved is illegal",
			current: PoliceViewed,
			admin:   AdminAssigned,
			next:    PoliceResolved,
			payload: TransitionPayload{Feedback: "done", EvidenceCount: 1},
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "closed has no outgoing transitions",
			current: PoliceClosed,
			admin:   AdminAssigned,
			next:    PoliceResolved,
			payload: TransitionPayload{Feedback: "reopen", EvidenceCount: 1},
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "action taken requires feedback",
			current: PoliceInProgress,
			admin:   AdminAssigned,
			next:    PoliceActionTaken,
			wantErr: ErrMissingFeedback,
		},
		{
			name:    "whitespace feedback does not count",
			current: PoliceInProgress,
			admin:   AdminAssigned,
			next:    PoliceActionTaken,
			payload: TransitionPayload{Feedback: "  "},
			wantErr: ErrMissingFeedback,
		},
		{
			name:    "resolved requires evidence",
			current: PoliceActionTaken,
			admin:   AdminAssigned,
			next:    PoliceResolved,
			payload: TransitionPayload{Feedback: "case closed"},
			wantErr: ErrMissingEvidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePoliceTransition(tt.current, tt.admin, tt.next, tt.payload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPoliceStatusProperties(t *testing.T) {
	assert.True(t, PoliceClosed.Terminal())
	assert.False(t, PoliceResolved.Terminal())

	assert.True(t, PoliceActionTaken.RequiresFeedback())
	assert.True(t, PoliceResolved.RequiresFeedback())
	assert.False(t, PoliceInProgress.RequiresFeedback())

	assert.True(t, PoliceResolved.RequiresEvidence())
	assert.False(t, PoliceActionTaken.RequiresEvidence())
}
