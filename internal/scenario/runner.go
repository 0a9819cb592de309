package scenario

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
	"github.com/Khaerul-jpg/Automation-Testing/internal/pages"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// PageSource hands out fresh pages. release must be called exactly when the
// scenario is done with the page; calling it again is harmless.
type PageSource interface {
	NewPage() (page driver.Page, release func(), err error)
}

// Runner executes scenarios independently of one another
type Runner struct {
	Pages    PageSource
	Fixtures *testdata.Fixtures
	Timeouts pages.Timeouts
	// Parallel bounds concurrently running scenarios, values below 1 mean 1
	Parallel int
	Reporter Reporter
	// ScreenshotDir receives a screenshot of every failed scenario when set
	ScreenshotDir string
}

// Run executes scenarios and returns their results in input order. Once ctx
// is done, scenarios not yet started fail with the context error.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) Results {
	limit := r.Parallel
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	results := make([]Result, len(scenarios))
	for i, s := range scenarios {
		g.Go(func() error {
			results[i] = r.runOne(ctx, s)
			return nil
		})
	}
	_ = g.Wait()

	return newResults(results)
}

func (r *Runner) reporter() Reporter {
	if r.Reporter == nil {
		return nullReporter{}
	}
	return r.Reporter
}

func (r *Runner) runOne(ctx context.Context, s Scenario) (result Result) {
	result = Result{ID: s.ID(), Name: s.Name, Feature: s.Feature}

	if err := ctx.Err(); err != nil {
		result.Err = fmt.Errorf("not started: %w", err)
		r.reporter().ScenarioFinished(result)
		return result
	}

	r.reporter().ScenarioStarted(s)
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		r.reporter().ScenarioFinished(result)
	}()

	page, release, err := r.Pages.NewPage()
	if err != nil {
		result.Err = fmt.Errorf("open page: %w", err)
		return result
	}
	defer release()

	result.Err = r.execute(page, s)
	if result.Err != nil {
		r.screenshot(page, s)
	}
	return result
}

func (r *Runner) execute(page driver.Page, s Scenario) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("scenario panicked: %v", rec)
		}
	}()

	c := NewContext(page, r.Fixtures, r.Timeouts)
	if err := c.Setup(); err != nil {
		return err
	}
	if s.Run == nil {
		return nil
	}
	return s.Run(c)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (r *Runner) screenshot(page driver.Page, s Scenario) {
	if r.ScreenshotDir == "" {
		return
	}
	shooter, ok := page.(driver.Screenshotter)
	if !ok {
		return
	}

	name := fmt.Sprintf("%s_%d.png", unsafeFileChars.ReplaceAllString(s.ID(), "_"), time.Now().Unix())
	path := filepath.Join(r.ScreenshotDir, name)
	if err := shooter.Screenshot(path); err != nil {
		log.Printf("Warning: screenshot of %s failed: %v", s.ID(), err)
	}
}
