package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/application-screener/internal/types"
)

// SaveAuditRecord stores the complete audit record as JSON, keyed by
// execution ID. Replays of the same execution overwrite in place, so the
// write is idempotent.
func (db *DB) SaveAuditRecord(ctx context.Context, record types.AuditRecord) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO audit_records (execution_id, application_id, job_id, status, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (execution_id) DO UPDATE SET
		   application_id = $2, job_id = $3, status = $4, content = $5, created_at = NOW()`,
		record.ExecutionID,
		record.Application.ApplicationID,
		record.Application.JobID,
		string(record.Decision.Status),
		jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit record %s: %w", record.ExecutionID, err)
	}
	return nil
}

// GetAuditRecord retrieves an audit record by execution ID. Returns
// (nil, nil) when no record exists.
func (db *DB) GetAuditRecord(ctx context.Context, executionID uuid.UUID) (*types.AuditRecord, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM audit_records WHERE execution_id = $1`,
		executionID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get audit record %s: %w", executionID, err)
	}

	var record types.AuditRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to decode audit record %s: %w", executionID, err)
	}
	return &record, nil
}

// ListRuns returns the most recent screening runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT execution_id, application_id, job_id, status, created_at, completed_at
		 FROM screening_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ExecutionID, &run.ApplicationID, &run.JobID, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}
