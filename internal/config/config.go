// Package config holds the deployment-tunable settings: sensor models and
// credentials, plus the scoring policy caps. Policy values are handed to
// the scoring engine explicitly so formulas never read ambient state.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"provenant/internal/scoring"
)

// SensorConfig configures the Gemini-backed sensor gateway.
type SensorConfig struct {
	APIKey string `yaml:"api_key"`
	// ReasoningModel runs the hybrid, audit, quality, audio-perception and
	// forensic-match calls.
	ReasoningModel string `yaml:"reasoning_model"`
	// LedgerModel runs the music ledger parse, a text-only task that does
	// not need the multimodal model.
	LedgerModel string `yaml:"ledger_model"`
	Timeout     string `yaml:"timeout"`
}

// PolicyConfig carries the named policy constants. They are configuration,
// not computed values; deployments retune caps without touching formulas.
type PolicyConfig struct {
	EthicalCap      float64 `yaml:"ethical_cap"`
	ArtifactOnlyCap float64 `yaml:"artifact_only_cap"`
	ModelPolicy     string  `yaml:"model_policy"`
}

type Config struct {
	Sensor SensorConfig `yaml:"sensor"`
	Policy PolicyConfig `yaml:"policy"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Sensor: SensorConfig{
			ReasoningModel: "gemini-3-pro-preview",
			LedgerModel:    "gemini-2.5-flash",
			Timeout:        "120s",
		},
		Policy: PolicyConfig{
			EthicalCap:      75,
			ArtifactOnlyCap: 75,
			ModelPolicy:     "PPM-HAS v0.5-consenso",
		},
	}
}

// Load reads an optional YAML config file over the defaults, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Sensor.APIKey = key
	}

	return cfg, nil
}

// SensorTimeout parses the configured timeout, defaulting to two minutes.
func (c Config) SensorTimeout() time.Duration {
	d, err := time.ParseDuration(c.Sensor.Timeout)
	if err != nil || d <= 0 {
		return 2 * time.Minute
	}
	return d
}

// ScoringPolicy converts the configured caps for the scoring engine.
func (c Config) ScoringPolicy() scoring.Policy {
	return scoring.Policy{
		EthicalCap:      c.Policy.EthicalCap,
		ArtifactOnlyCap: c.Policy.ArtifactOnlyCap,
	}
}
