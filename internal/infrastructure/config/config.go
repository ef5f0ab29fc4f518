package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration.
type Config struct {
	Logging LogConfig
	Metrics MetricsConfig
	Math    MathConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds Prometheus collector configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"mathcompat"`
}

// MathConfig holds defaults applied by the tool layer.
type MathConfig struct {
	DefaultBins    int `envconfig:"MATH_DEFAULT_BINS" default:"10"`
	MaxRangePoints int `envconfig:"MATH_MAX_RANGE_POINTS" default:"100000"`
	MaxBins        int `envconfig:"MATH_MAX_BINS" default:"10000"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "mathcompat",
		},
		Math: MathConfig{
			DefaultBins:    10,
			MaxRangePoints: 100000,
			MaxBins:        10000,
		},
	}
}

// Validate checks values envconfig cannot express as tags.
func (c *Config) Validate() error {
	if c.Math.DefaultBins < 1 {
		return fmt.Errorf("invalid config: MATH_DEFAULT_BINS must be >= 1, got %d", c.Math.DefaultBins)
	}
	if c.Math.MaxBins < c.Math.DefaultBins {
		return fmt.Errorf("invalid config: MATH_MAX_BINS must be >= MATH_DEFAULT_BINS (%d), got %d", c.Math.DefaultBins, c.Math.MaxBins)
	}
	if c.Math.MaxRangePoints < 1 {
		return fmt.Errorf("invalid config: MATH_MAX_RANGE_POINTS must be >= 1, got %d", c.Math.MaxRangePoints)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("invalid config: METRICS_NAMESPACE must not be empty when metrics are enabled")
	}
	return nil
}
