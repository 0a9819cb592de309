package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/pages"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// Browsers playwright can launch
var browsers = map[string]bool{"chromium": true, "firefox": true, "webkit": true}

// HarnessConfig holds configuration for running the scenario set
type HarnessConfig struct {
	BaseURL       string
	Browser       string
	Headless      bool
	SlowMo        time.Duration
	Parallel      int
	ScreenshotDir string
	Timeouts      pages.Timeouts
	// Local serves the store replica and points BaseURL at it
	Local bool
}

// LoadHarnessConfig loads harness configuration from environment variables.
// Unset variables keep their defaults; malformed ones are errors.
func LoadHarnessConfig(getenv func(string) string) (*HarnessConfig, error) {
	config := &HarnessConfig{
		BaseURL:       getenv("BASE_URL"),
		Browser:       getenv("BROWSER"),
		Headless:      true,
		Parallel:      1,
		ScreenshotDir: getenv("SCREENSHOT_DIR"),
		Timeouts:      pages.DefaultTimeouts(),
	}

	if config.BaseURL == "" {
		config.BaseURL = testdata.DefaultBaseURL
	}
	if _, err := testdata.NewURLs(config.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid BASE_URL: %w", err)
	}

	if config.Browser == "" {
		config.Browser = "chromium"
	}
	if !browsers[config.Browser] {
		return nil, fmt.Errorf("invalid BROWSER %q", config.Browser)
	}

	var err error
	if config.Headless, err = boolVar(getenv, "HEADLESS", config.Headless); err != nil {
		return nil, err
	}
	if config.Local, err = boolVar(getenv, "E2E_LOCAL", false); err != nil {
		return nil, err
	}
	if config.Parallel, err = intVar(getenv, "PARALLEL", config.Parallel); err != nil {
		return nil, err
	}
	if config.Parallel < 1 {
		return nil, fmt.Errorf("invalid PARALLEL: must be at least 1")
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"SLOW_MO_MS", &config.SlowMo},
		{"ERROR_TIMEOUT_MS", &config.Timeouts.Error},
		{"PROBE_TIMEOUT_MS", &config.Timeouts.Probe},
		{"URL_TIMEOUT_MS", &config.Timeouts.URL},
		{"MARKER_TIMEOUT_MS", &config.Timeouts.Marker},
	}
	for _, d := range durations {
		if *d.dst, err = millisVar(getenv, d.name, *d.dst); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func boolVar(getenv func(string) string, name string, def bool) (bool, error) {
	raw := getenv(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func intVar(getenv func(string) string, name string, def int) (int, error) {
	raw := getenv(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func millisVar(getenv func(string) string, name string, def time.Duration) (time.Duration, error) {
	if getenv(name) == "" {
		return def, nil
	}
	ms, err := intVar(getenv, name, 0)
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", name)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
