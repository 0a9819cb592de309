package cli

import (
	"errors"
	"log"
	"sync"

	"github.com/Khaerul-jpg/Automation-Testing/internal/models"
	"github.com/Khaerul-jpg/Automation-Testing/internal/scenario"
	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
)

// HistoryReporter records every finished scenario as part of one run.
// Storage failures are logged and reported by Close; they never fail a
// scenario.
type HistoryReporter struct {
	service services.RunService

	mu   sync.Mutex
	run  *models.Run
	errs []error
}

var _ scenario.Reporter = (*HistoryReporter)(nil)

// NewHistoryReporter starts a run for baseURL
func NewHistoryReporter(service services.RunService, baseURL, browser string) (*HistoryReporter, error) {
	run, err := service.StartRun(baseURL, browser)
	if err != nil {
		return nil, err
	}
	log.Printf("Recording run %s", run.ID)

	return &HistoryReporter{
		service: service,
		run:     run,
	}, nil
}

func (h *HistoryReporter) ScenarioStarted(scenario.Scenario) {}

func (h *HistoryReporter) ScenarioFinished(r scenario.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.service.RecordResult(h.run, r.Name, r.Feature, r.Err, r.Duration); err != nil {
		log.Printf("Warning: could not record %s: %v", r.ID, err)
		h.errs = append(h.errs, err)
	}
}

// Close settles the run and returns any recording errors. A non-nil runErr
// means the suite stopped early, so the run is saved as failed.
func (h *HistoryReporter) Close(runErr error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if runErr != nil {
		err = h.service.AbortRun(h.run)
	} else {
		err = h.service.FinishRun(h.run)
	}
	if err != nil {
		h.errs = append(h.errs, err)
		return errors.Join(h.errs...)
	}

	if h.run.IsPassed() {
		log.Printf("Run %s passed: %d scenarios in %v", h.run.ID, h.run.Total, h.run.Elapsed())
	} else {
		log.Printf("Run %s failed: %d of %d scenarios failed in %v", h.run.ID, h.run.Failed, h.run.Total, h.run.Elapsed())
		if runErr != nil {
			log.Printf("Run %s stopped: %v", h.run.ID, runErr)
		}
	}
	return errors.Join(h.errs...)
}

// Run returns a snapshot of the recorded run
func (h *HistoryReporter) Run() models.Run {
	h.mu.Lock()
	defer h.mu.Unlock()
	return *h.run
}

// executeRecorded runs the suite with history attached and settles the run
// from the suite's outcome
func executeRecorded(history *HistoryReporter, execute func(reporters ...scenario.Reporter) error) error {
	err := execute(history)
	if cerr := history.Close(err); cerr != nil {
		log.Printf("Warning: run history incomplete: %v", cerr)
	}
	return err
}
