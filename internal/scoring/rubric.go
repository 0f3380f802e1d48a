// Package scoring applies the deterministic fit rubric to extraction results.
package scoring

import (
	"github.com/jonathan/application-screener/internal/types"
)

// Rubric point values per criterion.
const (
	PointsExperience    = 40
	PointsCertification = 30
	PointsAvailability  = 20
	PointsConfidence    = 10

	// MinYearsExperience is the experience threshold for awarding points.
	MinYearsExperience = 2.0

	// ConfidenceBonusThreshold is the strict lower bound for the bonus.
	ConfidenceBonusThreshold = 70

	// MaxScore is the rubric ceiling.
	MaxScore = PointsExperience + PointsCertification + PointsAvailability + PointsConfidence
)

// criterion is one rubric row. Missing labels track the first three criteria
// only; the confidence bonus never produces a missing item.
type criterion struct {
	points  int
	label   string
	awarded func(types.ExtractionResult) bool
}

// criteria is evaluated in order, which fixes the order of MissingItems.
var criteria = []criterion{
	{
		points:  PointsExperience,
		label:   types.LabelExperience,
		awarded: func(r types.ExtractionResult) bool { return r.YearsExperience >= MinYearsExperience },
	},
	{
		points:  PointsCertification,
		label:   types.LabelCertification,
		awarded: func(r types.ExtractionResult) bool { return r.HasRequiredCertification },
	},
	{
		points:  PointsAvailability,
		label:   types.LabelAvailability,
		awarded: func(r types.ExtractionResult) bool { return r.AvailabilityConfirmed },
	},
	{
		points:  PointsConfidence,
		label:   "",
		awarded: func(r types.ExtractionResult) bool { return r.Confidence > ConfidenceBonusThreshold },
	},
}

// Score applies the rubric to one extraction result. The score is the sum of
// awarded points; MissingItems lists, in rubric order, the labels of the
// criteria that did not award points (the confidence bonus excepted).
func Score(result types.ExtractionResult) types.ScoreResult {
	sr := types.ScoreResult{MissingItems: []string{}}

	for _, c := range criteria {
		if c.awarded(result) {
			sr.Score += c.points
			continue
		}
		if c.label != "" {
			sr.MissingItems = append(sr.MissingItems, c.label)
		}
	}

	return sr
}
