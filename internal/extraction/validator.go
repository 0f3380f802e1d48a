// Package extraction turns raw model responses into validated extraction
// results. The validator is total: any input string, however malformed,
// produces a usable ExtractionOutcome rather than an error.
package extraction

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/application-screener/internal/llm"
	"github.com/jonathan/application-screener/internal/schemas"
	"github.com/jonathan/application-screener/internal/types"
)

//go:embed extraction_result.schema.json
var resultSchema string

// defaultResult returns the conservative fallback used whenever a field (or
// the whole response) cannot be trusted.
func defaultResult() types.ExtractionResult {
	return types.ExtractionResult{
		YearsExperience:          0,
		HasRequiredCertification: false,
		EducationLevel:           "unknown",
		Skills:                   []string{},
		AvailabilityConfirmed:    false,
		Confidence:               0,
	}
}

// Sanitize converts a raw model response into an ExtractionOutcome. It strips
// code fences, locates the first balanced JSON object, and coerces each field
// individually, falling back to conservative defaults for anything missing or
// wrongly typed. It never returns an error.
func Sanitize(raw string) types.ExtractionOutcome {
	outcome := types.ExtractionOutcome{
		Result:      defaultResult(),
		RawResponse: raw,
	}

	cleaned := llm.CleanJSONBlock(raw)
	candidate := firstJSONObject(cleaned)
	if candidate == "" {
		outcome.Defaulted = true
		outcome.Reason = "no JSON object found in response"
		return outcome
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		outcome.Defaulted = true
		outcome.Reason = fmt.Sprintf("JSON parse failed: %v", err)
		return outcome
	}

	var notes []string

	if v, ok := asFloat(fields["years_experience"]); ok && v >= 0 {
		outcome.Result.YearsExperience = v
	} else {
		notes = append(notes, "years_experience defaulted")
	}

	if v, ok := fields["has_required_certification"].(bool); ok {
		outcome.Result.HasRequiredCertification = v
	} else {
		notes = append(notes, "has_required_certification defaulted")
	}

	if v, ok := fields["education_level"].(string); ok && strings.TrimSpace(v) != "" {
		outcome.Result.EducationLevel = strings.ToLower(strings.TrimSpace(v))
	} else {
		notes = append(notes, "education_level defaulted")
	}

	if items, ok := fields["skills"].([]any); ok {
		skills := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				skills = append(skills, strings.ToLower(strings.TrimSpace(s)))
			}
		}
		outcome.Result.Skills = skills
	} else {
		notes = append(notes, "skills defaulted")
	}

	if v, ok := fields["availability_confirmed"].(bool); ok {
		outcome.Result.AvailabilityConfirmed = v
	} else {
		notes = append(notes, "availability_confirmed defaulted")
	}

	if v, ok := asFloat(fields["confidence"]); ok {
		outcome.Result.Confidence = clampConfidence(int(v))
	} else {
		notes = append(notes, "confidence defaulted")
	}

	// Schema check is advisory: it informs the reason string but never
	// discards field values that coerced successfully.
	if err := schemas.ValidateJSONString(resultSchema, candidate); err != nil {
		notes = append(notes, "schema check failed")
	}

	if len(notes) > 0 {
		outcome.Defaulted = true
		outcome.Reason = strings.Join(notes, "; ")
	}

	return outcome
}

// firstJSONObject scans text for the first balanced top-level JSON object,
// respecting string literals and escapes. Returns "" if none exists.
func firstJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func clampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
