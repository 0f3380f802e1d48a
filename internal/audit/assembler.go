// Package audit assembles the complete evaluation record for persistence.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/application-screener/internal/types"
)

// Assemble builds the audit record for one finished evaluation. Every
// intermediate artifact is captured as-is; the record is never consulted by
// the pipeline stages themselves.
func Assemble(
	executionID uuid.UUID,
	app types.Application,
	normalized types.NormalizedApplication,
	jobCtx types.JobContext,
	extraction types.ExtractionOutcome,
	score types.ScoreResult,
	dec types.Decision,
	startedAt time.Time,
	completedAt time.Time,
) types.AuditRecord {
	return types.AuditRecord{
		ExecutionID: executionID,
		Application: app,
		Normalized:  normalized,
		JobContext:  jobCtx,
		Extraction:  extraction,
		Score:       score,
		Decision:    dec,
		StartedAt:   startedAt.UTC(),
		CompletedAt: completedAt.UTC(),
	}
}
