package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/Khaerul-jpg/Automation-Testing/internal/cli"
	"github.com/Khaerul-jpg/Automation-Testing/internal/config"
)

var version = "0.1.0"

// harnessFromFlags loads the harness configuration from the environment and
// applies the flags given on the command line
func harnessFromFlags(c *cli.Context) (*config.HarnessConfig, error) {
	harness, err := config.LoadHarnessConfig(os.Getenv)
	if err != nil {
		return nil, err
	}

	if c.IsSet("base-url") {
		harness.BaseURL = c.String("base-url")
	}
	if c.IsSet("browser") {
		harness.Browser = c.String("browser")
	}
	if c.IsSet("headless") {
		harness.Headless = c.Bool("headless")
	}
	if c.IsSet("parallel") {
		if c.Int("parallel") < 1 {
			return nil, fmt.Errorf("invalid --parallel: must be at least 1")
		}
		harness.Parallel = c.Int("parallel")
	}
	if c.IsSet("local") {
		harness.Local = c.Bool("local")
	}
	if c.IsSet("screenshots") {
		harness.ScreenshotDir = c.String("screenshots")
	}
	return harness, nil
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the scenario set in a browser",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "store under test"},
			&cli.StringFlag{Name: "browser", Usage: "chromium, firefox or webkit"},
			&cli.BoolFlag{Name: "headless", Usage: "hide the browser window"},
			&cli.IntFlag{Name: "parallel", Usage: "scenarios running at once"},
			&cli.BoolFlag{Name: "local", Usage: "serve the store replica and test it"},
			&cli.StringFlag{Name: "screenshots", Usage: "directory for screenshots of failed scenarios"},
			&cli.StringFlag{Name: "filter", Usage: "regular expression on Feature/Name"},
			&cli.BoolFlag{Name: "record", Usage: "record the run in PostgreSQL", EnvVars: []string{"RECORD_RUNS"}},
			&cli.BoolFlag{Name: "install", Usage: "install the browser before running"},
		},
		Action: func(c *cli.Context) error {
			harness, err := harnessFromFlags(c)
			if err != nil {
				return err
			}

			opts := internalcli.RunOptions{
				Harness: harness,
				Server:  config.LoadServerConfig(os.Getenv),
				Filter:  c.String("filter"),
				Install: c.Bool("install"),
				Out:     c.App.Writer,
			}
			// the replica is only ever reached through its listener address
			opts.Server.Port = "0"

			if c.Bool("record") {
				pgConfig, err := config.LoadPostgresConfig(os.Getenv)
				if err != nil {
					return fmt.Errorf("missing required PostgreSQL configuration: %w", err)
				}
				opts.Postgres = pgConfig
			}

			return internalcli.RunSuite(c.Context, opts)
		},
	}
}

// ListCommand returns the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the scenarios",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filter", Usage: "regular expression on Feature/Name"},
		},
		Action: func(c *cli.Context) error {
			return internalcli.ListScenarios(c.App.Writer, c.String("filter"))
		},
	}
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the store replica",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "port to listen on"},
		},
		Action: func(c *cli.Context) error {
			serverConfig := config.LoadServerConfig(os.Getenv)
			if c.IsSet("port") {
				serverConfig.Port = c.String("port")
			}

			deps, err := internalcli.BuildServerDependencies(serverConfig)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "saucedemo",
		Usage:   "SauceDemo end-to-end test harness",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			ListCommand(),
			ServeCommand(),
		},
	}

	if code := exitStatus(log.Default(), app.Run(os.Args)); code != 0 {
		os.Exit(code)
	}
}

// exitStatus logs err once and returns the process exit status. Failed
// scenarios are already listed in the run summary, so they are not logged.
func exitStatus(logger *log.Logger, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, internalcli.ErrScenariosFailed) {
		logger.Print(err)
	}
	return 1
}
