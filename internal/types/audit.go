package types

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is the write-once unit of persistence and traceability. It
// preserves every intermediate artifact of an evaluation so a reviewer can
// reconstruct exactly why a decision was reached without re-running the
// pipeline.
type AuditRecord struct {
	ExecutionID uuid.UUID             `json:"execution_id"`
	Application Application           `json:"application"`
	Normalized  NormalizedApplication `json:"normalized_application"`
	JobContext  JobContext            `json:"job_context"`
	Extraction  ExtractionOutcome     `json:"extraction"`
	Score       ScoreResult           `json:"score"`
	Decision    Decision              `json:"decision"`
	StartedAt   time.Time             `json:"started_at"`
	CompletedAt time.Time             `json:"completed_at"`
}
