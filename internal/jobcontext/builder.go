// Package jobcontext builds the per-posting evaluation context from a job
// description. Detection is deterministic keyword scanning; the external
// extraction collaborator is never involved at this stage.
package jobcontext

import (
	"regexp"
	"strings"

	"github.com/jonathan/application-screener/internal/normalize"
	"github.com/jonathan/application-screener/internal/types"
)

// Requirement categories recognized by the default patterns.
const (
	CategoryCertification = "certification"
	CategorySkill         = "skill"
	CategoryExperience    = "experience"
)

// Pattern describes one keyword pattern scanned against the job description.
type Pattern struct {
	Category string
	Token    string
	Re       *regexp.Regexp
}

// DefaultPatterns returns the built-in requirement patterns: common
// certifications, must-have skill phrases, and experience thresholds.
// Callers can pass their own set to Build for other job families.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{CategoryCertification, "osha", regexp.MustCompile(`(?i)\bosha\b`)},
		{CategoryCertification, "forklift", regexp.MustCompile(`(?i)\bforklift\s+(?:certification|certified|license)\b`)},
		{CategoryCertification, "cdl", regexp.MustCompile(`(?i)\bcdl\b`)},
		{CategoryCertification, "first aid", regexp.MustCompile(`(?i)\bfirst\s+aid\b`)},
		{CategoryCertification, "food handler", regexp.MustCompile(`(?i)\bfood\s+handler'?s?\b`)},
		{CategorySkill, "inventory management", regexp.MustCompile(`(?i)\binventory\s+management\b`)},
		{CategorySkill, "customer service", regexp.MustCompile(`(?i)\bcustomer\s+service\b`)},
		{CategorySkill, "warehouse operations", regexp.MustCompile(`(?i)\bwarehouse\s+operations?\b`)},
		{CategoryExperience, "years experience", regexp.MustCompile(`(?i)\b\d+\+?\s*(?:years?|yrs?)(?:\s+of)?\s+experience\b`)},
	}
}

// Build derives a JobContext from a job description. An empty or unmatched
// description yields an empty requirements schema, never an error: job-side
// defects must not block candidate evaluation. The version tag is the
// fingerprint of the description text, so any edit produces a new JDVersion.
func Build(jobID, locationID, descriptionText string, patterns []Pattern) types.JobContext {
	schema := types.RequirementsSchema{}
	text := strings.TrimSpace(descriptionText)

	if text != "" {
		for _, p := range patterns {
			loc := p.Re.FindStringIndex(text)
			if loc == nil {
				continue
			}
			schema.Tokens = append(schema.Tokens, types.RequirementToken{
				Category: p.Category,
				Token:    p.Token,
				Evidence: evidenceSnippet(text, loc),
			})
		}
	}

	return types.JobContext{
		JobID:              jobID,
		LocationID:         locationID,
		JobDescriptionText: descriptionText,
		Requirements:       schema,
		JDVersion:          normalize.Fingerprint(descriptionText),
		AuditEnabled:       true,
	}
}

// evidenceSnippet returns the matched text with a little surrounding context,
// capped so audit records stay small.
func evidenceSnippet(text string, loc []int) string {
	const margin = 20
	start := loc[0] - margin
	if start < 0 {
		start = 0
	}
	end := loc[1] + margin
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
