package report

// MLStatus is the classification outcome from the external ML triage
// service. It is read-only to the portal.
type MLStatus string

const (
	MLAccepted      MLStatus = "ACCEPTED"
	MLRejected      MLStatus = "REJECTED"
	MLPendingReview MLStatus = "PENDING_REVIEW"
)

// Valid reports whether the value is a known ML status
func (s MLStatus) Valid() bool {
	switch s {
	case MLAccepted, MLRejected, MLPendingReview:
		return true
	}
	return false
}

// AdminStatus is the human review decision lifecycle.
type AdminStatus string

const (
	AdminPending  AdminStatus = "PENDING"
	AdminApproved AdminStatus = "APPROVED"
	AdminRejected AdminStatus = "REJECTED"
	AdminAssigned AdminStatus = "ASSIGNED"
)

// Valid reports whether the value is a known admin status
func (s AdminStatus) Valid() bool {
	switch s {
	case AdminPending, AdminApproved, AdminRejected, AdminAssigned:
		return true
	}
	return false
}

// Terminal reports whether no further admin transition is permitted
func (s AdminStatus) Terminal() bool {
	return s == AdminApproved || s == AdminRejected
}

// PoliceStatus is the operational handling lifecycle applied by the
// assigned officer.
type PoliceStatus string

const (
	PoliceNotViewed   PoliceStatus = "NOT_VIEWED"
	PoliceViewed      PoliceStatus = "VIEWED"
	PoliceInProgress  PoliceStatus = "IN_PROGRESS"
	PoliceActionTaken PoliceStatus = "ACTION_TAKEN"
	PoliceResolved    PoliceStatus = "RESOLVED"
	PoliceClosed      PoliceStatus = "CLOSED"
)

// Valid reports whether the value is a known police status
func (s PoliceStatus) Valid() bool {
	switch s {
	case PoliceNotViewed, PoliceViewed, PoliceInProgress, PoliceActionTaken, PoliceResolved, PoliceClosed:
		return true
	}
	return false
}

// Terminal reports whether no further police transition is permitted
func (s PoliceStatus) Terminal() bool {
	return s == PoliceClosed
}

// RequiresFeedback reports whether a transition into this status must
// carry officer feedback
func (s PoliceStatus) RequiresFeedback() bool {
	return s == PoliceActionTaken || s == PoliceResolved
}

// RequiresEvidence reports whether a transition into this status must
// carry at least one evidence artifact
func (s PoliceStatus) RequiresEvidence() bool {
	return s == PoliceResolved
}

// Urgency is the report priority level.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// Valid reports whether the value is a known urgency level
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Badge is the presentation mapping consumed by portal views. It replaces
// the per-page switch statements the old front end carried for every table.
type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

var mlBadges = map[MLStatus]Badge{
	MLAccepted:      {Label: "Accepted", Tone: "success"},
	MLRejected:      {Label: "Rejected", Tone: "danger"},
	MLPendingReview: {Label: "Pending Review", Tone: "warning"},
}

var adminBadges = map[AdminStatus]Badge{
	AdminPending:  {Label: "Pending", Tone: "warning"},
	AdminApproved: {Label: "Approved", Tone: "success"},
	AdminRejected: {Label: "Rejected", Tone: "danger"},
	AdminAssigned: {Label: "Assigned", Tone: "info"},
}

var policeBadges = map[PoliceStatus]Badge{
	PoliceNotViewed:   {Label: "Not Viewed", Tone: "neutral"},
	PoliceViewed:      {Label: "Viewed", Tone: "info"},
	PoliceInProgress:  {Label: "In Progress", Tone: "warning"},
	PoliceActionTaken: {Label: "Action Taken", Tone: "info"},
	PoliceResolved:    {Label: "Resolved", Tone: "success"},
	PoliceClosed:      {Label: "Closed", Tone: "neutral"},
}

var urgencyBadges = map[Urgency]Badge{
	UrgencyLow:      {Label: "Low", Tone: "neutral"},
	UrgencyMedium:   {Label: "Medium", Tone: "info"},
	UrgencyHigh:     {Label: "High", Tone: "warning"},
	UrgencyCritical: {Label: "Critical", Tone: "danger"},
}

func unknownBadge(value string) Badge {
	return Badge{Label: value, Tone: "neutral"}
}

// Badge returns the presentation mapping for an ML status
func (s MLStatus) Badge() Badge {
	if b, ok := mlBadges[s]; ok {
		return b
	}
	return unknownBadge(string(s))
}

// Badge returns the presentation mapping for an admin status
func (s AdminStatus) Badge() Badge {
	if b, ok := adminBadges[s]; ok {
		return b
	}
	return unknownBadge(string(s))
}

// Badge returns the presentation mapping for a police status
func (s PoliceStatus) Badge() Badge {
	if b, ok := policeBadges[s]; ok {
		return b
	}
	return unknownBadge(string(s))
}

// Badge returns the presentation mapping for an urgency level
func (u Urgency) Badge() Badge {
	if b, ok := urgencyBadges[u]; ok {
		return b
	}
	return unknownBadge(string(u))
}
