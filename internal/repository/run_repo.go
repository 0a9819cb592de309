package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/database"
	"github.com/Khaerul-jpg/Automation-Testing/internal/models"
)

// ErrRunNotFound is returned when no run has the requested id
var ErrRunNotFound = errors.New("run not found")

// RunRepository handles database operations for runs and their scenario results
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a new run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun inserts a new run
func (r *RunRepository) CreateRun(run *models.Run) error {
	query := `
		INSERT INTO runs (id, base_url, browser, status, total, failed, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.BaseURL,
		run.Browser,
		run.Status,
		run.Total,
		run.Failed,
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetRun retrieves a run by its id
func (r *RunRepository) GetRun(id string) (*models.Run, error) {
	query := `
		SELECT id, base_url, browser, status, total, failed, started_at, finished_at
		FROM runs
		WHERE id = $1
	`

	run := &models.Run{}
	var finishedAt sql.NullTime
	err := r.db.QueryRow(query, id).Scan(
		&run.ID,
		&run.BaseURL,
		&run.Browser,
		&run.Status,
		&run.Total,
		&run.Failed,
		&run.StartedAt,
		&finishedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}
	return run, nil
}

// UpdateRun stores the run's counters, status and finish time
func (r *RunRepository) UpdateRun(run *models.Run) error {
	query := `
		UPDATE runs
		SET status = $1, total = $2, failed = $3, finished_at = $4
		WHERE id = $5
	`

	var finishedAt sql.NullTime
	if !run.FinishedAt.IsZero() {
		finishedAt = sql.NullTime{Time: run.FinishedAt, Valid: true}
	}

	result, err := r.db.Exec(query, run.Status, run.Total, run.Failed, finishedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrRunNotFound
	}

	return nil
}

// CreateScenarioResult inserts one scenario outcome
func (r *RunRepository) CreateScenarioResult(result *models.ScenarioResult) error {
	query := `
		INSERT INTO scenario_results (id, run_id, feature, name, passed, error, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		result.ID,
		result.RunID,
		result.Feature,
		result.Name,
		result.Passed,
		result.Error,
		result.Duration.Milliseconds(),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to create scenario result: %w", err)
	}

	return nil
}

// ListScenarioResults returns the results of a run in insertion order
func (r *RunRepository) ListScenarioResults(runID string) ([]*models.ScenarioResult, error) {
	query := `
		SELECT id, run_id, feature, name, passed, error, duration_ms
		FROM scenario_results
		WHERE run_id = $1
		ORDER BY created_at, name
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario results: %w", err)
	}
	defer rows.Close()

	var results []*models.ScenarioResult
	for rows.Next() {
		result := &models.ScenarioResult{}
		var durationMs int64
		if err := rows.Scan(
			&result.ID,
			&result.RunID,
			&result.Feature,
			&result.Name,
			&result.Passed,
			&result.Error,
			&durationMs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scenario result: %w", err)
		}
		result.Duration = time.Duration(durationMs) * time.Millisecond
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scenario results: %w", err)
	}

	return results, nil
}
