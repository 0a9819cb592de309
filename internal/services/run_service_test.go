package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/models"
)

// MockRunRepository is a mock implementation of RunRepository for testing
type MockRunRepository struct {
	CreateRunFunc            func(*models.Run) error
	UpdateRunFunc            func(*models.Run) error
	CreateScenarioResultFunc func(*models.ScenarioResult) error

	mu      sync.Mutex
	results []*models.ScenarioResult
	updated []models.Run
}

func (m *MockRunRepository) CreateRun(run *models.Run) error {
	if m.CreateRunFunc != nil {
		return m.CreateRunFunc(run)
	}
	return nil
}

func (m *MockRunRepository) UpdateRun(run *models.Run) error {
	if m.UpdateRunFunc != nil {
		return m.UpdateRunFunc(run)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated = append(m.updated, *run)
	return nil
}

func (m *MockRunRepository) CreateScenarioResult(result *models.ScenarioResult) error {
	if m.CreateScenarioResultFunc != nil {
		return m.CreateScenarioResultFunc(result)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
	return nil
}

func TestRunService_StartRun(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		mockError error
		wantErr   bool
	}{
		{name: "successful start", baseURL: "https://www.saucedemo.com"},
		{name: "missing base url", baseURL: "", wantErr: true},
		{name: "repository error", baseURL: "https://www.saucedemo.com", mockError: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockRunRepository{
				CreateRunFunc: func(run *models.Run) error {
					if run.ID == "" {
						t.Error("Run ID should not be empty")
					}
					return tt.mockError
				},
			}
			service := NewRunService(mockRepo)

			run, err := service.StartRun(tt.baseURL, "webkit")

			if (err != nil) != tt.wantErr {
				t.Fatalf("StartRun() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if run != nil {
					t.Error("Expected run to be nil when error occurs")
				}
				return
			}
			if !run.IsRunning() || run.Browser != "webkit" {
				t.Errorf("Unexpected run %+v", run)
			}
		})
	}
}

func TestRunService_RecordAndFinish(t *testing.T) {
	mockRepo := &MockRunRepository{}
	service := NewRunService(mockRepo)

	run, err := service.StartRun("http://localhost:8080", "")
	if err != nil {
		t.Fatalf("StartRun() unexpected error = %v", err)
	}

	if _, err := service.RecordResult(run, "valid user reaches the inventory", "Login", nil, time.Second); err != nil {
		t.Fatalf("RecordResult() unexpected error = %v", err)
	}
	if _, err := service.RecordResult(run, "sorts by Name (A to Z)", "Inventory", errors.New("order mismatch"), time.Second); err != nil {
		t.Fatalf("RecordResult() unexpected error = %v", err)
	}
	if _, err := service.RecordResult(run, "", "Inventory", nil, 0); !errors.Is(err, models.ErrInvalidScenarioName) {
		t.Errorf("Expected ErrInvalidScenarioName, got %v", err)
	}

	if err := service.FinishRun(run); err != nil {
		t.Fatalf("FinishRun() unexpected error = %v", err)
	}

	if len(mockRepo.results) != 2 {
		t.Fatalf("Expected 2 stored results, got %d", len(mockRepo.results))
	}
	if len(mockRepo.updated) != 1 {
		t.Fatalf("Expected one run update, got %d", len(mockRepo.updated))
	}
	saved := mockRepo.updated[0]
	if saved.Status != models.RunStatusFailed || saved.Total != 2 || saved.Failed != 1 {
		t.Errorf("Expected failed run with 1 of 2 failures, got %s %d/%d", saved.Status, saved.Failed, saved.Total)
	}

	// a finished run takes no more results
	if _, err := service.RecordResult(run, "late", "Login", nil, 0); !errors.Is(err, models.ErrRunAlreadyFinished) {
		t.Errorf("Expected ErrRunAlreadyFinished, got %v", err)
	}
	if err := service.FinishRun(run); !errors.Is(err, models.ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestRunService_RecordResultRepositoryError(t *testing.T) {
	mockRepo := &MockRunRepository{
		CreateScenarioResultFunc: func(*models.ScenarioResult) error {
			return errors.New("database error")
		},
	}
	service := NewRunService(mockRepo)
	run, _ := service.StartRun("http://localhost:8080", "")

	if _, err := service.RecordResult(run, "logout returns to the login page", "Inventory", nil, 0); err == nil {
		t.Error("Expected error when repository fails")
	}
}

func TestRunService_AbortRun(t *testing.T) {
	mockRepo := &MockRunRepository{}
	service := NewRunService(mockRepo)
	run, _ := service.StartRun("http://localhost:8080", "")

	if err := service.AbortRun(run); err != nil {
		t.Fatalf("AbortRun() unexpected error = %v", err)
	}

	if len(mockRepo.updated) != 1 {
		t.Fatalf("Expected one run update, got %d", len(mockRepo.updated))
	}
	if mockRepo.updated[0].Status != models.RunStatusFailed {
		t.Errorf("Expected status %s, got %s", models.RunStatusFailed, mockRepo.updated[0].Status)
	}

	if err := service.AbortRun(run); !errors.Is(err, models.ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestRunService_AbortRunRepositoryError(t *testing.T) {
	mockRepo := &MockRunRepository{
		UpdateRunFunc: func(*models.Run) error { return errors.New("database error") },
	}
	service := NewRunService(mockRepo)
	run, _ := service.StartRun("http://localhost:8080", "")

	if err := service.AbortRun(run); err == nil {
		t.Error("Expected error when repository fails")
	}
}
