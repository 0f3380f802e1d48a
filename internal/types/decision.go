package types

// DecisionStatus is one of the three terminal outcomes of the decision policy.
type DecisionStatus string

// Decision statuses. There are no intermediate states.
const (
	StatusInterviewScheduled    DecisionStatus = "InterviewScheduled"
	StatusClarificationRequired DecisionStatus = "ClarificationRequired"
	StatusRejected              DecisionStatus = "Rejected"
)

// Rejection reason codes. Codes mirror the rubric table order; LOW_CONFIDENCE
// is used when the extraction confidence alone forces a rejection.
const (
	ReasonInsufficientExperience  = "INSUFFICIENT_EXPERIENCE"
	ReasonMissingCertification    = "MISSING_CERTIFICATION"
	ReasonAvailabilityUnconfirmed = "AVAILABILITY_UNCONFIRMED"
	ReasonLowConfidence           = "LOW_CONFIDENCE"
)

// Decision is the policy outcome for one application. ReasonCode is populated
// only when Status is Rejected. Rationale is narrative text attached after the
// decision is made; it is never an input to Status or ReasonCode.
type Decision struct {
	Status     DecisionStatus `json:"status"`
	ReasonCode string         `json:"reason_code,omitempty"`
	Rationale  string         `json:"rationale,omitempty"`
}
