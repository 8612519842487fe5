// Package cli provides CLI-specific logic including configuration and
// assessment file loading.
package cli

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
	"github.com/toyinlola/flightrisk/pkg/scorer"
)

// DefaultConfigPath is read when no --config flag is given.
const DefaultConfigPath = ".flightrisk.yml"

// validate is shared by config and assessment validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config represents the .flightrisk.yml configuration file.
type Config struct {
	Version  string         `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Output   OutputConfig   `yaml:"output"`
}

// DefaultsConfig holds the scenario and threat used when neither the
// assessment file nor a flag picks one.
type DefaultsConfig struct {
	Scenario interfaces.Scenario    `yaml:"scenario" validate:"oneof=S1 S2 S3 S4"`
	Threat   interfaces.ThreatLevel `yaml:"threat" validate:"oneof=C1 C2 C3 C4 C5"`
}

// ScoringConfig tunes the pipeline.
type ScoringConfig struct {
	ClampConfidence        *bool           `yaml:"clamp_confidence"`
	LegacyScenarioFallback bool            `yaml:"legacy_scenario_fallback"`
	LegacyFuzzification    bool            `yaml:"legacy_fuzzification"`
	Thresholds             ThresholdConfig `yaml:"thresholds"`
}

// IsClampEnabled reports whether confidence clamping is on.
// Returns true by default if not explicitly set.
func (s ScoringConfig) IsClampEnabled() bool {
	if s.ClampConfidence == nil {
		return true
	}
	return *s.ClampConfidence
}

// ThresholdConfig holds the conclusion thresholds. They must be strictly
// decreasing and inside [0,1].
type ThresholdConfig struct {
	High         float64 `yaml:"high" validate:"lte=1,gtfield=AboveAverage"`
	AboveAverage float64 `yaml:"above_average" validate:"gtfield=Average"`
	Average      float64 `yaml:"average" validate:"gtfield=Low"`
	Low          float64 `yaml:"low" validate:"gte=0"`
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format          string `yaml:"format" validate:"oneof=terminal json markdown"`
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// LoadConfig reads and parses a .flightrisk.yml configuration file.
// If path is empty, it looks for .flightrisk.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := validate.Struct(cfg); err != nil {
		return nil, goerr.Wrap(err, "invalid config", goerr.V("path", path))
	}
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the documented
// .flightrisk.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Defaults.Scenario == "" {
		cfg.Defaults.Scenario = interfaces.ScenarioAverage
	}
	if cfg.Defaults.Threat == "" {
		cfg.Defaults.Threat = interfaces.ThreatMedium
	}
	if cfg.Scoring.Thresholds == (ThresholdConfig{}) {
		t := scorer.DefaultThresholds()
		cfg.Scoring.Thresholds = ThresholdConfig{
			High:         t.High,
			AboveAverage: t.AboveAverage,
			Average:      t.Average,
			Low:          t.Low,
		}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}

// CalculatorOptions translates the scoring section into calculator options.
func (c *Config) CalculatorOptions() []scorer.Option {
	t := c.Scoring.Thresholds
	opts := []scorer.Option{
		scorer.WithConfidenceClamp(c.Scoring.IsClampEnabled()),
		scorer.WithThresholds(scorer.Thresholds{
			High:         t.High,
			AboveAverage: t.AboveAverage,
			Average:      t.Average,
			Low:          t.Low,
		}),
	}
	if c.Scoring.LegacyScenarioFallback {
		opts = append(opts, scorer.WithLegacyScenarioFallback())
	}
	if c.Scoring.LegacyFuzzification {
		opts = append(opts, scorer.WithLegacyFuzzification())
	}
	return opts
}
