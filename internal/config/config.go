package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/safehours/internal/db"
	"github.com/balkashynov/safehours/internal/logging"
	"github.com/balkashynov/safehours/internal/metrics"
	"github.com/balkashynov/safehours/internal/store"
)

const (
	defaultBackend   = db.BackendSQLite
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultLogOutput = "stderr"
	defaultSpan      = "positional"
)

// Config represents the complete application configuration
type Config struct {
	Storage    StorageConfig      `yaml:"storage"`
	Logging    logging.Config     `yaml:"logging"`
	Thresholds metrics.Thresholds `yaml:"thresholds"`
	Metrics    MetricsConfig      `yaml:"metrics"`
	UI         UIConfig           `yaml:"ui"`
}

// StorageConfig selects where the activity log is persisted
type StorageConfig struct {
	// Backend is one of sqlite, badger or memory
	Backend string `yaml:"backend"`

	// Path is the database file (sqlite) or directory (badger).
	// Empty means the backend's default under ~/.safehours.
	Path string `yaml:"path"`

	// Key names the slot holding the log
	Key string `yaml:"key"`
}

// MetricsConfig tunes metric derivation
type MetricsConfig struct {
	// Span is positional (first/last record in log order) or chronological
	Span string `yaml:"span"`
}

// UIConfig holds dashboard settings
type UIConfig struct {
	Animations   *bool `yaml:"animations"`
	ReduceMotion bool  `yaml:"reduce_motion"`
}

// AnimationsEnabled reports whether the dashboard may animate alerts
func (u UIConfig) AnimationsEnabled() bool {
	return u.Animations == nil || *u.Animations
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// DefaultPath returns ~/.safehours/config.yaml
func DefaultPath() (string, error) {
	return db.DefaultPath("config.yaml")
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, applies defaults and validates it
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	c.Storage.Backend = strings.ToLower(c.Storage.Backend)
	if c.Storage.Key == "" {
		c.Storage.Key = store.DefaultKey
	}
	c.Storage.Path = expandHome(c.Storage.Path)

	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
	c.Logging.Output = expandHome(c.Logging.Output)

	th := metrics.DefaultThresholds()
	if c.Thresholds.MaxFlightHours == 0 {
		c.Thresholds.MaxFlightHours = th.MaxFlightHours
	}
	if c.Thresholds.MinRestHours == 0 {
		c.Thresholds.MinRestHours = th.MinRestHours
	}
	if c.Thresholds.MaxConsecutiveDays == 0 {
		c.Thresholds.MaxConsecutiveDays = th.MaxConsecutiveDays
	}
	if c.Thresholds.MaxDutyDay == 0 {
		c.Thresholds.MaxDutyDay = th.MaxDutyDay
	}

	if c.Metrics.Span == "" {
		c.Metrics.Span = defaultSpan
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case db.BackendSQLite, db.BackendBadger, db.BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be sqlite, badger or memory, got %q", c.Storage.Backend)
	}

	if c.Thresholds.MaxFlightHours < 0 || c.Thresholds.MinRestHours < 0 ||
		c.Thresholds.MaxConsecutiveDays < 0 || c.Thresholds.MaxDutyDay < 0 {
		return errors.New("thresholds must not be negative")
	}

	if _, err := metrics.ParseSpan(c.Metrics.Span); err != nil {
		return fmt.Errorf("metrics.span: %w", err)
	}

	return c.Logging.Validate()
}

// MetricOptions converts the metrics section into calculator options.
// Validate has already rejected unknown span values.
func (c *Config) MetricOptions() metrics.Options {
	span, _ := metrics.ParseSpan(c.Metrics.Span)
	return metrics.Options{Span: span}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
