// Package db provides PostgreSQL persistence for screening runs and audit
// records.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new screening run record keyed by execution ID.
func (db *DB) CreateRun(ctx context.Context, executionID uuid.UUID, applicationID, jobID string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO screening_runs (execution_id, application_id, job_id, status)
		 VALUES ($1, $2, $3, 'running')`,
		executionID, applicationID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun marks a screening run as finished with the given status.
func (db *DB) CompleteRun(ctx context.Context, executionID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE screening_runs SET status = $1, completed_at = NOW() WHERE execution_id = $2`,
		status, executionID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}
