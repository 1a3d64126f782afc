package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mbellows/gigbook/internal/model"
)

const (
	// userConfigFile is the user configuration file inside the data dir.
	userConfigFile = "config.yaml"

	// Default configuration values
	DefaultCurrency      = "$"
	DefaultStatusProfile = "simple"
	DefaultParserModel   = "llama3.2"
	DefaultParserURL     = "http://localhost:11434"
	DefaultParserTimeout = 15000
)

// ParserConfig configures the free-text gig parser. Parsing is
// disabled unless explicitly enabled.
type ParserConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Config represents user configuration from config.yaml.
// The file is user-managed and never written by gigbook.
type Config struct {
	// TaxRate is the default tax percentage applied to new gigs.
	TaxRate float64 `yaml:"tax_rate"`

	// Currency is the symbol used when rendering amounts.
	Currency string `yaml:"currency"`

	// StatusProfile selects the closed status set: "simple" or "lifecycle".
	StatusProfile string `yaml:"status_profile"`

	// Parser configures the free-text gig parser backend.
	Parser ParserConfig `yaml:"parser"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		TaxRate:       0,
		Currency:      DefaultCurrency,
		StatusProfile: DefaultStatusProfile,
		Parser: ParserConfig{
			Enabled:   false,
			Endpoint:  DefaultParserURL,
			Model:     DefaultParserModel,
			TimeoutMs: DefaultParserTimeout,
		},
	}
}

// LoadConfig loads config.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// Profile returns the configured status profile, falling back to the
// simple set for unknown values.
func (c *Config) Profile() model.StatusProfile {
	if c.StatusProfile == string(model.ProfileLifecycle) {
		return model.ProfileLifecycle
	}
	return model.ProfileSimple
}
