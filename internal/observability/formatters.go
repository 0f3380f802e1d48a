// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/application-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobContext outputs a human-readable summary of the built job context.
func (p *Printer) PrintJobContext(jobCtx types.JobContext) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:      %s\n", jobCtx.JobID))
	sb.WriteString(fmt.Sprintf("Location: %s\n", jobCtx.LocationID))
	sb.WriteString(fmt.Sprintf("Version:  %s\n", jobCtx.JDVersion))

	if len(jobCtx.Requirements.Tokens) > 0 {
		sb.WriteString("\nDetected requirements:\n")
		count := min(len(jobCtx.Requirements.Tokens), maxItemsToShow)
		for i := 0; i < count; i++ {
			tok := jobCtx.Requirements.Tokens[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", tok.Token, tok.Category))
		}
		if len(jobCtx.Requirements.Tokens) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jobCtx.Requirements.Tokens)-maxItemsToShow))
		}
	}

	p.printBox("JOB CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtraction outputs the sanitized extraction outcome.
func (p *Printer) PrintExtraction(outcome types.ExtractionOutcome) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Years experience:  %.1f\n", outcome.Result.YearsExperience))
	sb.WriteString(fmt.Sprintf("Certification:     %t\n", outcome.Result.HasRequiredCertification))
	sb.WriteString(fmt.Sprintf("Education:         %s\n", outcome.Result.EducationLevel))
	sb.WriteString(fmt.Sprintf("Availability:      %t\n", outcome.Result.AvailabilityConfirmed))
	sb.WriteString(fmt.Sprintf("Confidence:        %d\n", outcome.Result.Confidence))

	if len(outcome.Result.Skills) > 0 {
		count := min(len(outcome.Result.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills:            %s", strings.Join(outcome.Result.Skills[:count], ", ")))
		if len(outcome.Result.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" +%d more", len(outcome.Result.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if outcome.Defaulted {
		sb.WriteString(fmt.Sprintf("\nDegraded: %s\n", outcome.Reason))
	}

	p.printBox("EXTRACTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the rubric result.
func (p *Printer) PrintScore(sr types.ScoreResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d\n", sr.Score))
	if len(sr.MissingItems) > 0 {
		sb.WriteString("Missing:\n")
		for _, item := range sr.MissingItems {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}

	p.printBox("FIT SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs the screening decision.
func (p *Printer) PrintDecision(dec types.Decision) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status: %s\n", dec.Status))
	if dec.ReasonCode != "" {
		sb.WriteString(fmt.Sprintf("Reason: %s\n", dec.ReasonCode))
	}
	if dec.Rationale != "" {
		sb.WriteString(fmt.Sprintf("Why:    %s\n", dec.Rationale))
	}

	p.printBox("DECISION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAuditRecord outputs a compact summary of a persisted audit record.
func (p *Printer) PrintAuditRecord(record types.AuditRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Execution:   %s\n", record.ExecutionID))
	sb.WriteString(fmt.Sprintf("Application: %s\n", record.Application.ApplicationID))
	sb.WriteString(fmt.Sprintf("Job:         %s\n", record.JobContext.JobID))
	sb.WriteString(fmt.Sprintf("Dedupe key:  %s\n", record.Normalized.DedupeKey))
	sb.WriteString(fmt.Sprintf("Score:       %d\n", record.Score.Score))
	sb.WriteString(fmt.Sprintf("Decision:    %s\n", record.Decision.Status))
	sb.WriteString(fmt.Sprintf("Duration:    %s\n", record.CompletedAt.Sub(record.StartedAt).Round(0)))

	p.printBox("AUDIT RECORD", strings.TrimSuffix(sb.String(), "\n"))
}
