package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/safehours/internal/metrics"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "activities", cfg.Storage.Key)
	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, metrics.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, metrics.SpanPositional, cfg.MetricOptions().Span)
	assert.True(t, cfg.UI.AnimationsEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  backend: badger
  path: /tmp/safehours-badger
logging:
  level: debug
  format: json
thresholds:
  max_flight_hours: 6
  min_rest_hours: 12
metrics:
  span: chronological
ui:
  animations: false
  reduce_motion: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/safehours-badger", cfg.Storage.Path)
	assert.Equal(t, "activities", cfg.Storage.Key)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 6.0, cfg.Thresholds.MaxFlightHours)
	assert.Equal(t, 12.0, cfg.Thresholds.MinRestHours)
	assert.Equal(t, 16, cfg.Thresholds.MaxConsecutiveDays)
	assert.Equal(t, 16.0, cfg.Thresholds.MaxDutyDay)
	assert.Equal(t, metrics.SpanChronological, cfg.MetricOptions().Span)
	assert.False(t, cfg.UI.AnimationsEnabled())
	assert.True(t, cfg.UI.ReduceMotion)
}

func TestParse_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg, err := Parse([]byte("storage:\n  path: ~/logs/safehours.db\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "safehours.db"), cfg.Storage.Path)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":           "storage: [",
		"unknown backend":    "storage:\n  backend: postgres\n",
		"negative threshold": "thresholds:\n  max_duty_day: -1\n",
		"unknown span":       "metrics:\n  span: sideways\n",
		"bad log level":      "logging:\n  level: loud\n",
		"bad log format":     "logging:\n  format: xml\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParse_BackendCaseInsensitive(t *testing.T) {
	cfg, err := Parse([]byte("storage:\n  backend: Memory\n"))
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}
