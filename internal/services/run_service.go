package services

import (
	"fmt"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/models"
)

// RunRepository defines the interface for run history persistence
type RunRepository interface {
	CreateRun(run *models.Run) error
	UpdateRun(run *models.Run) error
	CreateScenarioResult(result *models.ScenarioResult) error
}

// RunService records scenario runs
type RunService interface {
	StartRun(baseURL, browser string) (*models.Run, error)
	RecordResult(run *models.Run, name, feature string, err error, duration time.Duration) (*models.ScenarioResult, error)
	FinishRun(run *models.Run) error
	AbortRun(run *models.Run) error
}

// RunServiceImpl implements RunService
type RunServiceImpl struct {
	runRepo RunRepository
}

// NewRunService creates a new run service
func NewRunService(runRepo RunRepository) RunService {
	return &RunServiceImpl{
		runRepo: runRepo,
	}
}

// StartRun creates and persists a running run
func (s *RunServiceImpl) StartRun(baseURL, browser string) (*models.Run, error) {
	run, err := models.NewRun(baseURL, browser)
	if err != nil {
		return nil, fmt.Errorf("invalid run: %w", err)
	}

	if err := s.runRepo.CreateRun(run); err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}

	return run, nil
}

// RecordResult persists one scenario outcome and counts it against run.
// The run's counters are saved by FinishRun.
func (s *RunServiceImpl) RecordResult(run *models.Run, name, feature string, err error, duration time.Duration) (*models.ScenarioResult, error) {
	result, rerr := models.NewScenarioResult(run, name, feature, err, duration)
	if rerr != nil {
		return nil, fmt.Errorf("invalid scenario result: %w", rerr)
	}

	if err := run.Record(result); err != nil {
		return nil, err
	}

	if err := s.runRepo.CreateScenarioResult(result); err != nil {
		return nil, fmt.Errorf("failed to record scenario result: %w", err)
	}

	return result, nil
}

// FinishRun settles the run's status and saves it
func (s *RunServiceImpl) FinishRun(run *models.Run) error {
	if err := run.Finish(); err != nil {
		return err
	}

	if err := s.runRepo.UpdateRun(run); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	return nil
}

// AbortRun saves run as failed after the suite stopped with an error
func (s *RunServiceImpl) AbortRun(run *models.Run) error {
	if err := run.Abort(); err != nil {
		return err
	}

	if err := s.runRepo.UpdateRun(run); err != nil {
		return fmt.Errorf("failed to abort run: %w", err)
	}

	return nil
}
