package db

import (
	"time"

	"github.com/google/uuid"
)

// Run status values.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run is one screening run row.
type Run struct {
	ExecutionID   uuid.UUID  `json:"execution_id"`
	ApplicationID string     `json:"application_id"`
	JobID         string     `json:"job_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
