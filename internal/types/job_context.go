// Package types provides type definitions for the artifacts produced by the
// application-screening pipeline. Every type here is treated as immutable once
// constructed: stages communicate by value and never mutate upstream artifacts.
package types

// RequirementToken is a single requirement detected in a job description.
type RequirementToken struct {
	Category string `json:"category"`           // "certification", "skill", "experience"
	Token    string `json:"token"`              // matched token, lowercased
	Evidence string `json:"evidence,omitempty"` // snippet from the description that matched
}

// RequirementsSchema is the ordered set of requirement tokens detected from a
// job description. Categories without a match are simply absent.
type RequirementsSchema struct {
	Tokens []RequirementToken `json:"tokens"`
}

// HasCategory reports whether any token of the given category was detected.
func (s RequirementsSchema) HasCategory(category string) bool {
	for _, t := range s.Tokens {
		if t.Category == category {
			return true
		}
	}
	return false
}

// TokensFor returns the tokens detected for a category, preserving order.
func (s RequirementsSchema) TokensFor(category string) []string {
	var out []string
	for _, t := range s.Tokens {
		if t.Category == category {
			out = append(out, t.Token)
		}
	}
	return out
}

// JobContext is the per-posting evaluation context. It is built once from the
// job description and rebuilt whenever the description changes; JDVersion is
// derived from the description fingerprint so any edit yields a new version.
type JobContext struct {
	JobID              string             `json:"job_id"`
	LocationID         string             `json:"location_id"`
	JobDescriptionText string             `json:"job_description_text"`
	Requirements       RequirementsSchema `json:"requirements_schema"`
	JDVersion          string             `json:"jd_version"`
	AuditEnabled       bool               `json:"audit_enabled"`
}
