package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/application-screener/internal/scoring"
	"github.com/jonathan/application-screener/internal/types"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		score      types.ScoreResult
		confidence int
		wantStatus types.DecisionStatus
		wantReason string
	}{
		{
			name:       "Strong candidate interviews",
			score:      types.ScoreResult{Score: 100, MissingItems: []string{}},
			confidence: 85,
			wantStatus: types.StatusInterviewScheduled,
		},
		{
			name:       "At interview threshold with nothing missing",
			score:      types.ScoreResult{Score: 75, MissingItems: []string{}},
			confidence: 80,
			wantStatus: types.StatusInterviewScheduled,
		},
		{
			name:       "High score but missing item falls to clarification",
			score:      types.ScoreResult{Score: 80, MissingItems: []string{types.LabelAvailability}},
			confidence: 80,
			wantStatus: types.StatusClarificationRequired,
		},
		{
			name:       "Mid score requests clarification",
			score:      types.ScoreResult{Score: 40, MissingItems: []string{types.LabelCertification, types.LabelAvailability}},
			confidence: 90,
			wantStatus: types.StatusClarificationRequired,
		},
		{
			name: "Low score rejects with first missing criterion",
			score: types.ScoreResult{Score: 0, MissingItems: []string{
				types.LabelExperience,
				types.LabelCertification,
				types.LabelAvailability,
			}},
			confidence: 80,
			wantStatus: types.StatusRejected,
			wantReason: types.ReasonInsufficientExperience,
		},
		{
			name:       "Certification first in missing list drives the code",
			score:      types.ScoreResult{Score: 20, MissingItems: []string{types.LabelCertification}},
			confidence: 70,
			wantStatus: types.StatusRejected,
			wantReason: types.ReasonMissingCertification,
		},
		{
			name:       "Low confidence rejects a passing score",
			score:      types.ScoreResult{Score: 90, MissingItems: []string{}},
			confidence: 50,
			wantStatus: types.StatusRejected,
			wantReason: types.ReasonLowConfidence,
		},
		{
			name:       "Low confidence with failing score keeps criterion code",
			score:      types.ScoreResult{Score: 0, MissingItems: []string{types.LabelExperience, types.LabelCertification, types.LabelAvailability}},
			confidence: 50,
			wantStatus: types.StatusRejected,
			wantReason: types.ReasonInsufficientExperience,
		},
		{
			name:       "Confidence at threshold is not low",
			score:      types.ScoreResult{Score: 75, MissingItems: []string{}},
			confidence: 60,
			wantStatus: types.StatusInterviewScheduled,
		},
		{
			name:       "Confidence just below threshold is low",
			score:      types.ScoreResult{Score: 75, MissingItems: []string{}},
			confidence: 59,
			wantStatus: types.StatusRejected,
			wantReason: types.ReasonLowConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.score, tt.confidence)
			assert.Equal(t, tt.wantStatus, d.Status)
			assert.Equal(t, tt.wantReason, d.ReasonCode)
			assert.Empty(t, d.Rationale, "Decide never sets a rationale")
		})
	}
}

// Walking the rubric from nothing to everything must never move the decision
// away from interview once reached.
func TestDecideMonotonicOverScore(t *testing.T) {
	rank := func(s types.DecisionStatus) int {
		switch s {
		case types.StatusRejected:
			return 0
		case types.StatusClarificationRequired:
			return 1
		default:
			return 2
		}
	}

	steps := []types.ExtractionResult{
		{Confidence: 90},
		{YearsExperience: 3, Confidence: 90},
		{YearsExperience: 3, HasRequiredCertification: true, Confidence: 90},
		{YearsExperience: 3, HasRequiredCertification: true, AvailabilityConfirmed: true, Confidence: 90},
	}

	prev := -1
	for _, r := range steps {
		d := Decide(scoring.Score(r), r.Confidence)
		assert.GreaterOrEqual(t, rank(d.Status), prev)
		prev = rank(d.Status)
	}
}

func TestAttachRationaleDoesNotMutate(t *testing.T) {
	original := types.Decision{Status: types.StatusRejected, ReasonCode: types.ReasonLowConfidence}
	annotated := AttachRationale(original, "model was unsure about certification evidence")

	assert.Equal(t, "model was unsure about certification evidence", annotated.Rationale)
	assert.Empty(t, original.Rationale)
	assert.Equal(t, original.Status, annotated.Status)
	assert.Equal(t, original.ReasonCode, annotated.ReasonCode)
}

func TestDecideDeterministic(t *testing.T) {
	sr := types.ScoreResult{Score: 70, MissingItems: []string{types.LabelAvailability}}
	first := Decide(sr, 88)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Decide(sr, 88))
	}
}
