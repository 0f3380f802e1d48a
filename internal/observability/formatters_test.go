package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/application-screener/internal/types"
)

func TestPrintJobContext(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	jobCtx := types.JobContext{
		JobID:      "job-42",
		LocationID: "loc-7",
		JDVersion:  "abc123def4567890",
		Requirements: types.RequirementsSchema{
			Tokens: []types.RequirementToken{
				{Category: "certification", Token: "forklift certification"},
				{Category: "skill", Token: "inventory management"},
			},
		},
	}

	p.PrintJobContext(jobCtx)
	output := buf.String()

	assert.Contains(t, output, "JOB CONTEXT")
	assert.Contains(t, output, "job-42")
	assert.Contains(t, output, "loc-7")
	assert.Contains(t, output, "forklift certification")
}

func TestPrintExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outcome := types.ExtractionOutcome{
		Result: types.ExtractionResult{
			YearsExperience:          3.5,
			HasRequiredCertification: true,
			EducationLevel:           "high school",
			Skills:                   []string{"forklift", "osha"},
			Confidence:               85,
		},
	}

	p.PrintExtraction(outcome)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTION")
	assert.Contains(t, output, "3.5")
	assert.Contains(t, output, "forklift, osha")
	assert.NotContains(t, output, "Degraded")
}

func TestPrintExtraction_Degraded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtraction(types.ExtractionOutcome{
		Defaulted: true,
		Reason:    "no JSON object found",
	})

	assert.Contains(t, buf.String(), "Degraded")
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(types.ScoreResult{
		Score:        40,
		MissingItems: []string{types.LabelCertification, types.LabelAvailability},
	})
	output := buf.String()

	assert.Contains(t, output, "FIT SCORE")
	assert.Contains(t, output, "40")
	assert.Contains(t, output, types.LabelCertification)
}

func TestPrintDecision(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDecision(types.Decision{
		Status:     types.StatusRejected,
		ReasonCode: types.ReasonLowConfidence,
		Rationale:  "confidence below threshold",
	})
	output := buf.String()

	assert.Contains(t, output, "DECISION")
	assert.Contains(t, output, string(types.StatusRejected))
	assert.Contains(t, output, types.ReasonLowConfidence)
}

func TestPrintAuditRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	now := time.Now()
	record := types.AuditRecord{
		ExecutionID: uuid.New(),
		Application: types.Application{ApplicationID: "app-1"},
		JobContext:  types.JobContext{JobID: "job-1"},
		Normalized:  types.NormalizedApplication{DedupeKey: "abc123def4567890"},
		Score:       types.ScoreResult{Score: 90},
		Decision:    types.Decision{Status: types.StatusInterviewScheduled},
		StartedAt:   now,
		CompletedAt: now.Add(time.Second),
	}

	p.PrintAuditRecord(record)
	output := buf.String()

	assert.Contains(t, output, "AUDIT RECORD")
	assert.Contains(t, output, "app-1")
	assert.Contains(t, output, "90")
}
