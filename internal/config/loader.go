package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the configuration file read when ELEPHANT_CONFIG is unset.
const DefaultPath = "./elephant-config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file path comes from ELEPHANT_CONFIG and falls back to DefaultPath.
// A missing default file is not an error: configuration then comes from
// ENV + defaults only. A missing explicit file is.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("ELEPHANT_CONFIG")
	if !explicit || path == "" {
		path, explicit = DefaultPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
