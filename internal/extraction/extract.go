package extraction

import (
	"context"
	"fmt"

	"github.com/jonathan/application-screener/internal/llm"
	"github.com/jonathan/application-screener/internal/types"
)

// Extractor produces an extraction outcome for one application. The outcome
// is always usable; transport failures surface as defaulted outcomes with an
// accompanying error for the caller to log.
type Extractor struct {
	capability llm.Capability
}

// NewExtractor creates an Extractor backed by the given LLM capability.
func NewExtractor(capability llm.Capability) *Extractor {
	return &Extractor{capability: capability}
}

// Extract calls the model and sanitizes whatever comes back. When the call
// itself fails after retries, the returned outcome carries conservative
// defaults and the error is returned alongside it for logging; the pipeline
// can proceed either way.
func (e *Extractor) Extract(ctx context.Context, app types.Application, normalized types.NormalizedApplication, jobCtx types.JobContext) (types.ExtractionOutcome, error) {
	prompt := BuildPrompt(app, normalized, jobCtx)

	raw, err := e.capability.GenerateJSON(ctx, prompt)
	if err != nil {
		outcome := types.ExtractionOutcome{
			Result:    defaultResult(),
			Defaulted: true,
			Reason:    fmt.Sprintf("model call failed: %v", err),
		}
		return outcome, fmt.Errorf("extraction for application %s: %w", app.ApplicationID, err)
	}

	return Sanitize(raw), nil
}
