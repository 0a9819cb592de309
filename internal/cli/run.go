package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/config"
	"github.com/Khaerul-jpg/Automation-Testing/internal/database"
	"github.com/Khaerul-jpg/Automation-Testing/internal/driver"
	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
	"github.com/Khaerul-jpg/Automation-Testing/internal/scenario"
	"github.com/Khaerul-jpg/Automation-Testing/internal/scenarios"
	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// ErrScenariosFailed is returned when at least one scenario failed
var ErrScenariosFailed = errors.New("scenarios failed")

// RunOptions configures one run of the scenario set
type RunOptions struct {
	Harness *config.HarnessConfig
	// Server configures the local replica when Harness.Local is set
	Server config.ServerConfig
	// Filter keeps scenarios whose ID matches this regular expression
	Filter string
	// Postgres enables run history when set
	Postgres *config.PostgresConfig
	// Install downloads the browser before launching it
	Install bool
	Out     io.Writer
}

// RunSuite optionally serves the replica, launches the browser, and runs the
// selected scenarios. History is opened only once the browser is up.
func RunSuite(ctx context.Context, opts RunOptions) error {
	selected, err := scenario.Filter(scenarios.All(), opts.Filter)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no scenario matches %q", opts.Filter)
	}

	harness := *opts.Harness
	if harness.Local {
		deps, err := BuildServerDependencies(opts.Server)
		if err != nil {
			return err
		}
		listener, server, err := StartServer(deps)
		if err != nil {
			return err
		}
		defer listener.Close()
		defer StopServer(server, 5*time.Second)
		harness.BaseURL = LocalURL(listener)
	}

	launcher, err := driver.Launch(driver.LaunchOptions{
		Browser:  harness.Browser,
		Headless: harness.Headless,
		SlowMo:   harness.SlowMo,
		Install:  opts.Install,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := launcher.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	execute := func(reporters ...scenario.Reporter) error {
		_, err := Execute(ctx, launcher, &harness, selected, opts.Out, reporters...)
		return err
	}
	if opts.Postgres == nil {
		return execute()
	}

	history, closeDB, err := openHistory(opts.Postgres, harness.BaseURL, harness.Browser)
	if err != nil {
		return err
	}
	defer closeDB()
	return executeRecorded(history, execute)
}

// Execute runs scenarios on pages from source, prints progress and a summary
// to out, and returns ErrScenariosFailed if any scenario failed
func Execute(ctx context.Context, source scenario.PageSource, harness *config.HarnessConfig, selected []scenario.Scenario, out io.Writer, reporters ...scenario.Reporter) (scenario.Results, error) {
	if out == nil {
		out = os.Stdout
	}

	fixtures, err := testdata.New(harness.BaseURL)
	if err != nil {
		return scenario.Results{}, err
	}
	if err := fixtures.Validate(); err != nil {
		return scenario.Results{}, err
	}

	if harness.ScreenshotDir != "" {
		if err := os.MkdirAll(harness.ScreenshotDir, 0o755); err != nil {
			return scenario.Results{}, fmt.Errorf("could not create screenshot directory: %w", err)
		}
	}

	runner := &scenario.Runner{
		Pages:         source,
		Fixtures:      fixtures,
		Timeouts:      harness.Timeouts,
		Parallel:      harness.Parallel,
		Reporter:      append(scenario.MultiReporter{scenario.NewConsoleReporter(out)}, reporters...),
		ScreenshotDir: harness.ScreenshotDir,
	}

	log.Printf("Running %d scenarios against %s", len(selected), harness.BaseURL)
	results := runner.Run(ctx, selected)
	scenario.PrintResults(out, results)

	if !results.OK() {
		return results, fmt.Errorf("%w: %d of %d", ErrScenariosFailed, len(results.Failures), len(results.Tests))
	}
	return results, nil
}

func openHistory(pgConfig *config.PostgresConfig, baseURL, browser string) (*HistoryReporter, func(), error) {
	if err := database.Connect(pgConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closeDB := func() {
		if err := database.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}

	if err := database.RunMigrations(); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	runService := services.NewRunService(repository.NewRunRepository())
	history, err := NewHistoryReporter(runService, baseURL, browser)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return history, closeDB, nil
}

// ListScenarios prints the IDs of the scenarios matching filter
func ListScenarios(out io.Writer, filter string) error {
	selected, err := scenario.Filter(scenarios.All(), filter)
	if err != nil {
		return err
	}
	for _, s := range selected {
		fmt.Fprintln(out, s.ID())
	}
	return nil
}
