package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewRun(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		browser     string
		wantBrowser string
		wantErr     error
	}{
		{
			name:        "valid run",
			baseURL:     "https://www.saucedemo.com",
			browser:     "firefox",
			wantBrowser: "firefox",
		},
		{
			name:        "browser defaults to chromium",
			baseURL:     "http://localhost:8080",
			browser:     "",
			wantBrowser: "chromium",
		},
		{
			name:    "empty base URL",
			baseURL: "",
			browser: "chromium",
			wantErr: ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := NewRun(tt.baseURL, tt.browser)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("NewRun() error = %v, wantErr %v", err, tt.wantErr)
				}
				if run != nil {
					t.Error("Expected run to be nil when error occurs")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewRun() unexpected error = %v", err)
			}
			if run.ID == "" {
				t.Error("Run ID should not be empty")
			}
			if run.Status != RunStatusRunning {
				t.Errorf("Expected status %s, got %s", RunStatusRunning, run.Status)
			}
			if run.Browser != tt.wantBrowser {
				t.Errorf("Expected browser %s, got %s", tt.wantBrowser, run.Browser)
			}
			if run.StartedAt.IsZero() {
				t.Error("StartedAt should be set")
			}
		})
	}
}

func TestNewScenarioResult(t *testing.T) {
	run, _ := NewRun("http://localhost:8080", "chromium")

	passed, err := NewScenarioResult(run, "valid login", "Login", nil, time.Second)
	if err != nil {
		t.Fatalf("NewScenarioResult() unexpected error = %v", err)
	}
	if !passed.Passed || passed.Error != "" {
		t.Errorf("Expected passing result, got %+v", passed)
	}
	if passed.RunID != run.ID {
		t.Errorf("Expected run id %s, got %s", run.ID, passed.RunID)
	}

	failed, err := NewScenarioResult(run, "locked user", "Login", errors.New("banner missing"), time.Second)
	if err != nil {
		t.Fatalf("NewScenarioResult() unexpected error = %v", err)
	}
	if failed.Passed || failed.Error != "banner missing" {
		t.Errorf("Expected failing result, got %+v", failed)
	}

	if _, err := NewScenarioResult(run, "", "Login", nil, 0); err != ErrInvalidScenarioName {
		t.Errorf("Expected ErrInvalidScenarioName, got %v", err)
	}
}

func TestRun_Finish(t *testing.T) {
	tests := []struct {
		name       string
		outcomes   []error
		wantStatus RunStatus
	}{
		{
			name:       "all passed",
			outcomes:   []error{nil, nil},
			wantStatus: RunStatusPassed,
		},
		{
			name:       "one failure fails the run",
			outcomes:   []error{nil, errors.New("boom")},
			wantStatus: RunStatusFailed,
		},
		{
			name:       "empty run passes",
			outcomes:   nil,
			wantStatus: RunStatusPassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, _ := NewRun("http://localhost:8080", "chromium")
			for i, outcome := range tt.outcomes {
				result, _ := NewScenarioResult(run, "scenario", "Feature", outcome, time.Duration(i))
				if err := run.Record(result); err != nil {
					t.Fatalf("Record() unexpected error = %v", err)
				}
			}

			if err := run.Finish(); err != nil {
				t.Fatalf("Finish() unexpected error = %v", err)
			}
			if run.Status != tt.wantStatus {
				t.Errorf("Expected status %s, got %s", tt.wantStatus, run.Status)
			}
			if run.Total != len(tt.outcomes) {
				t.Errorf("Expected total %d, got %d", len(tt.outcomes), run.Total)
			}
			if run.FinishedAt.IsZero() {
				t.Error("FinishedAt should be set")
			}
		})
	}
}

func TestRun_FinishedRunRejectsChanges(t *testing.T) {
	run, _ := NewRun("http://localhost:8080", "chromium")
	if err := run.Finish(); err != nil {
		t.Fatalf("Finish() unexpected error = %v", err)
	}

	if err := run.Finish(); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
	}

	result, _ := NewScenarioResult(run, "late", "Login", nil, 0)
	if err := run.Record(result); !errors.Is(err, ErrRunAlreadyFinished) {
		t.Errorf("Expected ErrRunAlreadyFinished, got %v", err)
	}
	if run.Total != 0 {
		t.Errorf("Expected total 0, got %d", run.Total)
	}
}

func TestRun_Abort(t *testing.T) {
	run, _ := NewRun("http://localhost:8080", "chromium")
	if err := run.Abort(); err != nil {
		t.Fatalf("Abort() unexpected error = %v", err)
	}

	// nothing recorded, still not a passing run
	if run.Status != RunStatusFailed {
		t.Errorf("Expected status %s, got %s", RunStatusFailed, run.Status)
	}
	if run.IsPassed() {
		t.Error("Expected aborted run to not be passed")
	}
	if run.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set")
	}
	if run.Elapsed() != run.FinishedAt.Sub(run.StartedAt) {
		t.Errorf("Expected elapsed %v, got %v", run.FinishedAt.Sub(run.StartedAt), run.Elapsed())
	}

	if err := run.Abort(); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestProduct_FormattedPrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{2999, "$29.99"},
		{999, "$9.99"},
		{700, "$7.00"},
		{5, "$0.05"},
	}

	for _, tt := range tests {
		p, err := NewProduct("id", "name", "", tt.cents)
		if err != nil {
			t.Fatalf("NewProduct() unexpected error = %v", err)
		}
		if got := p.FormattedPrice(); got != tt.want {
			t.Errorf("FormattedPrice(%d) = %s, want %s", tt.cents, got, tt.want)
		}
	}
}

func TestNewProduct_Validation(t *testing.T) {
	if _, err := NewProduct("", "name", "", 100); err == nil {
		t.Error("Expected error for empty id")
	}
	if _, err := NewProduct("id", "", "", 100); err == nil {
		t.Error("Expected error for empty name")
	}
	if _, err := NewProduct("id", "name", "", 0); err != ErrInvalidPrice {
		t.Errorf("Expected ErrInvalidPrice, got %v", err)
	}
}
