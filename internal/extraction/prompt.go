package extraction

import (
	"fmt"
	"strings"

	"github.com/jonathan/application-screener/internal/prompts"
	"github.com/jonathan/application-screener/internal/types"
)

// BuildPrompt renders the extraction prompt for one normalized application
// against its job context.
func BuildPrompt(app types.Application, normalized types.NormalizedApplication, jobCtx types.JobContext) string {
	template := prompts.MustGet("extraction.json", "extract-application")
	return prompts.Format(template, map[string]string{
		"JobID":            jobCtx.JobID,
		"Requirements":     formatRequirements(jobCtx.Requirements),
		"CanonicalText":    normalized.CanonicalText,
		"AvailabilityText": app.AvailabilityText,
	})
}

// formatRequirements renders the detected requirement tokens as a bullet list
// for prompt inclusion.
func formatRequirements(schema types.RequirementsSchema) string {
	if len(schema.Tokens) == 0 {
		return "- none detected"
	}

	var sb strings.Builder
	for _, tok := range schema.Tokens {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", tok.Category, tok.Token))
	}
	return strings.TrimRight(sb.String(), "\n")
}
