package types

// Requirement labels used both as missing-item entries and as the source of
// rejection reason codes. Order is significant: it matches the rubric table
// and decides which reason code a rejection carries.
const (
	LabelExperience    = "Minimum 2 years experience"
	LabelCertification = "Required certification"
	LabelAvailability  = "Availability confirmation"
)

// ScoreResult is the output of the fit scoring engine. Score is an integer in
// [0,100] by construction; MissingItems lists the required criteria that did
// not earn points, in rubric table order.
type ScoreResult struct {
	Score        int      `json:"score"`
	MissingItems []string `json:"missing_items"`
}
