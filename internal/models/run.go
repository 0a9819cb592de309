package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid run states
type RunStatus string

// Run statuses
const (
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// Run is one execution of the scenario set against a store deployment
type Run struct {
	ID         string
	BaseURL    string
	Browser    string
	Status     RunStatus
	Total      int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// ScenarioResult is the recorded outcome of one scenario within a run
type ScenarioResult struct {
	ID       string
	RunID    string
	Name     string
	Feature  string
	Passed   bool
	Error    string
	Duration time.Duration
}

// Domain errors
var (
	ErrInvalidBaseURL          = errors.New("run base URL cannot be empty")
	ErrInvalidScenarioName     = errors.New("scenario name cannot be empty")
	ErrInvalidStatusTransition = errors.New("invalid run status transition")
	ErrRunAlreadyFinished      = errors.New("run is already finished")
)

// NewRun creates a running run with validation
func NewRun(baseURL, browser string) (*Run, error) {
	if baseURL == "" {
		return nil, ErrInvalidBaseURL
	}
	if browser == "" {
		browser = "chromium"
	}

	return &Run{
		ID:        uuid.New().String(),
		BaseURL:   baseURL,
		Browser:   browser,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	}, nil
}

// NewScenarioResult creates a result belonging to run
func NewScenarioResult(run *Run, name, feature string, err error, duration time.Duration) (*ScenarioResult, error) {
	if name == "" {
		return nil, ErrInvalidScenarioName
	}

	result := &ScenarioResult{
		ID:       uuid.New().String(),
		RunID:    run.ID,
		Name:     name,
		Feature:  feature,
		Passed:   err == nil,
		Duration: duration,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result, nil
}

// Record counts a scenario outcome against the run
func (r *Run) Record(result *ScenarioResult) error {
	if !r.IsRunning() {
		return fmt.Errorf("%w: cannot record %q", ErrRunAlreadyFinished, result.Name)
	}
	r.Total++
	if !result.Passed {
		r.Failed++
	}
	return nil
}

// Finish moves the run to passed or failed depending on recorded outcomes
func (r *Run) Finish() error {
	if !r.IsRunning() {
		return fmt.Errorf("%w: cannot finish run with status %s", ErrInvalidStatusTransition, r.Status)
	}

	if r.Failed > 0 {
		r.Status = RunStatusFailed
	} else {
		r.Status = RunStatusPassed
	}
	r.FinishedAt = time.Now()
	return nil
}

// Abort fails a run that could not complete, whatever was recorded so far
func (r *Run) Abort() error {
	if !r.IsRunning() {
		return fmt.Errorf("%w: cannot abort run with status %s", ErrInvalidStatusTransition, r.Status)
	}

	r.Status = RunStatusFailed
	r.FinishedAt = time.Now()
	return nil
}

// IsRunning returns true while results can still be recorded
func (r *Run) IsRunning() bool {
	return r.Status == RunStatusRunning
}

// IsPassed returns true if the run finished without failures
func (r *Run) IsPassed() bool {
	return r.Status == RunStatusPassed
}

// Elapsed returns the wall time of a finished run, or the time so far
func (r *Run) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
