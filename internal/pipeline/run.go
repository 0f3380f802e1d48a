// Package pipeline provides the high-level orchestration for application
// screening: normalize, extract, score, decide, audit, dispatch.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/application-screener/internal/audit"
	"github.com/jonathan/application-screener/internal/db"
	"github.com/jonathan/application-screener/internal/decision"
	"github.com/jonathan/application-screener/internal/downstream"
	"github.com/jonathan/application-screener/internal/normalize"
	"github.com/jonathan/application-screener/internal/observability"
	"github.com/jonathan/application-screener/internal/scoring"
	"github.com/jonathan/application-screener/internal/types"
)

// DefaultBatchConcurrency bounds parallel evaluations in a batch.
const DefaultBatchConcurrency = 4

// Extractor produces an extraction outcome for one application. The concrete
// implementation calls the model; tests substitute deterministic fakes.
type Extractor interface {
	Extract(ctx context.Context, app types.Application, normalized types.NormalizedApplication, jobCtx types.JobContext) (types.ExtractionOutcome, error)
}

// auditStore is the subset of db.DB the pipeline persists through.
type auditStore interface {
	CreateRun(ctx context.Context, executionID uuid.UUID, applicationID, jobID string) error
	CompleteRun(ctx context.Context, executionID uuid.UUID, status string) error
	SaveAuditRecord(ctx context.Context, record types.AuditRecord) error
	Close()
}

// Options holds configuration for running the pipeline.
type Options struct {
	// DatabaseURL enables run and audit persistence when set. Persistence is
	// best effort: a failed write never fails the evaluation.
	DatabaseURL string
	Verbose     bool
	Concurrency int
}

// Pipeline evaluates applications against a job context.
type Pipeline struct {
	extractor  Extractor
	dispatcher *downstream.Dispatcher
	database   auditStore
	printer    *observability.Printer
	opts       Options
}

// New assembles a pipeline. When opts.DatabaseURL is set, the database is
// connected lazily on first use via Connect.
func New(extractor Extractor, opts Options) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		dispatcher: downstream.NewDispatcher(),
		printer:    observability.NewPrinter(os.Stdout),
		opts:       opts,
	}
}

// Connect opens the database connection if one is configured. Connection
// failures are reported but leave the pipeline usable without persistence.
func (p *Pipeline) Connect(ctx context.Context) error {
	if p.opts.DatabaseURL == "" {
		return nil
	}
	database, err := db.Connect(ctx, p.opts.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	p.database = database
	return nil
}

// Close releases the database connection if one was opened.
func (p *Pipeline) Close() {
	if p.database != nil {
		p.database.Close()
	}
}

// Evaluate runs the full screening pipeline for one application and returns
// the audit record of the evaluation. The record is complete even when the
// extraction collaborator misbehaves; only context cancellation aborts.
func (p *Pipeline) Evaluate(ctx context.Context, app types.Application, jobCtx types.JobContext) (types.AuditRecord, error) {
	startedAt := time.Now()
	executionID := uuid.New()

	if err := ctx.Err(); err != nil {
		return types.AuditRecord{}, err
	}

	normalized := normalize.Apply(app)
	if p.opts.Verbose {
		fmt.Printf("[VERBOSE] application %s normalized (dedupe key %s)\n", app.ApplicationID, normalized.DedupeKey)
	}

	// Runs and audit records share one gate so no run row is ever left
	// behind in 'running' when auditing is off for the job context.
	persist := p.database != nil && jobCtx.AuditEnabled
	if persist {
		if err := p.database.CreateRun(ctx, executionID, app.ApplicationID, jobCtx.JobID); err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return types.AuditRecord{}, err
	}

	outcome, err := p.extractor.Extract(ctx, app, normalized, jobCtx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return types.AuditRecord{}, ctxErr
		}
		// The extractor already substituted conservative defaults; the
		// evaluation continues and the failure lands in the audit trail.
		fmt.Printf("Warning: Extraction degraded for %s: %v\n", app.ApplicationID, err)
	}
	if p.opts.Verbose {
		p.printer.PrintExtraction(outcome)
	}

	if err := ctx.Err(); err != nil {
		return types.AuditRecord{}, err
	}

	scoreResult := scoring.Score(outcome.Result)
	dec := decision.Decide(scoreResult, outcome.Result.Confidence)
	dec = decision.AttachRationale(dec, buildRationale(scoreResult, outcome, dec))
	if p.opts.Verbose {
		p.printer.PrintScore(scoreResult)
		p.printer.PrintDecision(dec)
	}

	record := audit.Assemble(executionID, app, normalized, jobCtx, outcome, scoreResult, dec, startedAt, time.Now())

	if persist {
		if err := p.database.SaveAuditRecord(ctx, record); err != nil {
			fmt.Printf("Warning: Failed to save audit record: %v\n", err)
		}
		if err := p.database.CompleteRun(ctx, executionID, db.RunStatusCompleted); err != nil {
			fmt.Printf("Warning: Failed to complete database run: %v\n", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return types.AuditRecord{}, err
	}

	if err := p.dispatcher.Dispatch(ctx, record); err != nil {
		fmt.Printf("Warning: Downstream dispatch failed for %s: %v\n", app.ApplicationID, err)
	}

	return record, nil
}

// EvaluateBatch evaluates a slice of applications against one job context
// with bounded concurrency. Results keep the input order. The first hard
// failure cancels the remaining evaluations.
func (p *Pipeline) EvaluateBatch(ctx context.Context, apps []types.Application, jobCtx types.JobContext) ([]types.AuditRecord, error) {
	concurrency := p.opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	records := make([]types.AuditRecord, len(apps))
	for i, app := range apps {
		g.Go(func() error {
			record, err := p.Evaluate(gCtx, app, jobCtx)
			if err != nil {
				return fmt.Errorf("evaluation of %s failed: %w", app.ApplicationID, err)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// buildRationale composes the human-readable explanation attached to the
// decision. It describes the already-made decision and never influences it.
func buildRationale(sr types.ScoreResult, outcome types.ExtractionOutcome, dec types.Decision) string {
	parts := []string{
		fmt.Sprintf("score %d/%d", sr.Score, scoring.MaxScore),
		fmt.Sprintf("extraction confidence %d", outcome.Result.Confidence),
	}
	if len(sr.MissingItems) > 0 {
		parts = append(parts, "missing: "+strings.Join(sr.MissingItems, ", "))
	}
	if outcome.Defaulted {
		parts = append(parts, "extraction degraded ("+outcome.Reason+")")
	}
	if dec.ReasonCode != "" {
		parts = append(parts, "reason "+dec.ReasonCode)
	}
	return strings.Join(parts, "; ")
}
