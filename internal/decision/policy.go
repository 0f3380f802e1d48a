// Package decision maps score results and extraction confidence to a
// screening decision. The mapping is a pure function of its inputs.
package decision

import (
	"github.com/jonathan/application-screener/internal/types"
)

// Policy thresholds.
const (
	// InterviewThreshold is the minimum score for scheduling an interview.
	InterviewThreshold = 75

	// ClarificationThreshold is the minimum score for requesting clarification.
	ClarificationThreshold = 40

	// MinConfidence is the extraction confidence below which an application
	// is rejected regardless of score.
	MinConfidence = 60
)

// reasonCodes maps rubric missing-item labels to decision reason codes.
var reasonCodes = map[string]string{
	types.LabelExperience:    types.ReasonInsufficientExperience,
	types.LabelCertification: types.ReasonMissingCertification,
	types.LabelAvailability:  types.ReasonAvailabilityUnconfirmed,
}

// Decide maps a score result and the extraction confidence to a decision.
// Rejections caused by a failing score carry the reason code of the first
// missing rubric item; rejections caused only by low confidence carry the
// low-confidence code.
func Decide(sr types.ScoreResult, confidence int) types.Decision {
	if confidence < MinConfidence {
		if sr.Score < ClarificationThreshold && len(sr.MissingItems) > 0 {
			return types.Decision{
				Status:     types.StatusRejected,
				ReasonCode: codeFor(sr.MissingItems[0]),
			}
		}
		return types.Decision{
			Status:     types.StatusRejected,
			ReasonCode: types.ReasonLowConfidence,
		}
	}

	switch {
	case sr.Score >= InterviewThreshold && len(sr.MissingItems) == 0:
		return types.Decision{Status: types.StatusInterviewScheduled}
	case sr.Score >= ClarificationThreshold:
		return types.Decision{Status: types.StatusClarificationRequired}
	default:
		d := types.Decision{Status: types.StatusRejected}
		if len(sr.MissingItems) > 0 {
			d.ReasonCode = codeFor(sr.MissingItems[0])
		}
		return d
	}
}

// AttachRationale returns a copy of the decision with the rationale text set.
// The rationale is descriptive only; it never feeds back into the decision.
func AttachRationale(d types.Decision, rationale string) types.Decision {
	d.Rationale = rationale
	return d
}

func codeFor(label string) string {
	return reasonCodes[label]
}
