package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings of the addressbook binary.
type Config struct {
	// Environment selects the logger setup (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Demo controls the scripted walkthrough printed by the demo command.
	Demo struct {
		// Verbose logs every book mutation at info level while the demo runs, so
		// the events show up under the production logger too.
		Verbose bool `env:"DEMO_VERBOSE" env-default:"false" yaml:"verbose"`
	} `yaml:"demo"`
}

// Load reads the yaml config at configPath, applying environment overrides.
// An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
