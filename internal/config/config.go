package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration.
type Config struct {
	// WorldPath optionally points at a yaml world definition that
	// replaces the embedded temple.
	WorldPath string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	path := os.Getenv("TEMPLE_WORLD")
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("TEMPLE_WORLD: %w", err)
		}
	}

	return &Config{
		WorldPath: path,
	}, nil
}
