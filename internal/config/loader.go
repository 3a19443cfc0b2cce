package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration from a YAML file overlaid with environment
// variables (ENV wins, then YAML, then env-default tags). The file path comes
// from CONFIG_PATH; when unset, "./config.yaml" is tried and silently skipped
// if absent, in which case ENV and defaults alone must produce a valid config.
func Load() (*Config, error) {
	path, pathSet := os.LookupEnv("CONFIG_PATH")
	if !pathSet {
		path = defaultConfigPath
	}

	var cfg Config
	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case pathSet:
		// An explicitly requested file must exist.
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: stat %s: %w", path, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
