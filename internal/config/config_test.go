package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaerul-jpg/Automation-Testing/internal/pages"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLoadHarnessConfig_Defaults(t *testing.T) {
	config, err := LoadHarnessConfig(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, testdata.DefaultBaseURL, config.BaseURL)
	assert.Equal(t, "chromium", config.Browser)
	assert.True(t, config.Headless)
	assert.False(t, config.Local)
	assert.Equal(t, 1, config.Parallel)
	assert.Zero(t, config.SlowMo)
	assert.Equal(t, pages.DefaultTimeouts(), config.Timeouts)
}

func TestLoadHarnessConfig_Overrides(t *testing.T) {
	config, err := LoadHarnessConfig(envOf(map[string]string{
		"BASE_URL":         "http://localhost:9000",
		"BROWSER":          "firefox",
		"HEADLESS":         "false",
		"E2E_LOCAL":        "1",
		"PARALLEL":         "4",
		"SLOW_MO_MS":       "250",
		"ERROR_TIMEOUT_MS": "1000",
		"PROBE_TIMEOUT_MS": "0",
		"SCREENSHOT_DIR":   "shots",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", config.BaseURL)
	assert.Equal(t, "firefox", config.Browser)
	assert.False(t, config.Headless)
	assert.True(t, config.Local)
	assert.Equal(t, 4, config.Parallel)
	assert.Equal(t, 250*time.Millisecond, config.SlowMo)
	assert.Equal(t, time.Second, config.Timeouts.Error)
	assert.Zero(t, config.Timeouts.Probe)
	assert.Equal(t, pages.DefaultTimeouts().URL, config.Timeouts.URL)
	assert.Equal(t, "shots", config.ScreenshotDir)
}

func TestLoadHarnessConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad base url", map[string]string{"BASE_URL": "ftp://example.com"}, "invalid BASE_URL"},
		{"unknown browser", map[string]string{"BROWSER": "lynx"}, "invalid BROWSER"},
		{"bad headless", map[string]string{"HEADLESS": "maybe"}, "invalid HEADLESS"},
		{"zero parallel", map[string]string{"PARALLEL": "0"}, "invalid PARALLEL"},
		{"non numeric parallel", map[string]string{"PARALLEL": "many"}, "invalid PARALLEL"},
		{"negative timeout", map[string]string{"URL_TIMEOUT_MS": "-5"}, "invalid URL_TIMEOUT_MS"},
		{"minus one timeout", map[string]string{"ERROR_TIMEOUT_MS": "-1"}, "invalid ERROR_TIMEOUT_MS: must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadHarnessConfig(envOf(tt.env))
			assert.Nil(t, config)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	assert.Equal(t, ServerConfig{Port: "8080", TemplateDir: "templates"}, LoadServerConfig(envOf(nil)))
	assert.Equal(t, ServerConfig{Port: "9090", TemplateDir: "/srv/templates"},
		LoadServerConfig(envOf(map[string]string{"PORT": "9090", "TEMPLATE_DIR": "/srv/templates"})))
}

func TestLoadPostgresConfig(t *testing.T) {
	full := map[string]string{
		"POSTGRES_USER":     "user",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "runs",
		"POSTGRES_HOSTNAME": "db",
	}

	config, err := LoadPostgresConfig(envOf(full))
	require.NoError(t, err)
	assert.Equal(t, "host=db user=user password=secret dbname=runs sslmode=disable", config.ConnectionString())

	for key := range full {
		t.Run("missing "+key, func(t *testing.T) {
			env := make(map[string]string)
			for k, v := range full {
				if k != key {
					env[k] = v
				}
			}
			_, err := LoadPostgresConfig(envOf(env))
			assert.EqualError(t, err, key+" is required")
		})
	}
}
