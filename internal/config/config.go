// Package config holds the tunable settings of the analysis, populated from
// environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all analysis settings. The year floor and percentile are the
// two business-rule tunables; changing the year floor from 1996 mixes
// recording regimes and should be documented wherever it is done.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// YearFloor is the first year of the observation window. 1996 is the
	// first year the full 48-category recording regime was in effect.
	YearFloor int `envconfig:"ANALYSIS_YEAR_FLOOR" default:"1996"`

	// Percentile bounds category reconciliation to labels above this
	// quantile of aggregate impact.
	Percentile float64 `envconfig:"ANALYSIS_PERCENTILE" default:"0.90"`

	// TopN is how many groups each ranking table keeps.
	TopN int `envconfig:"ANALYSIS_TOP_N" default:"10"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would make the analysis meaningless.
func (c *Config) Validate() error {
	if c.Percentile <= 0 || c.Percentile >= 1 {
		return errors.New("ANALYSIS_PERCENTILE must be between 0 and 1 exclusive")
	}
	if c.YearFloor < 1950 {
		return errors.New("ANALYSIS_YEAR_FLOOR predates the dataset")
	}
	if c.TopN <= 0 {
		return errors.New("ANALYSIS_TOP_N must be positive")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.New("LOG_FORMAT must be \"text\" or \"json\"")
	}
	return nil
}
