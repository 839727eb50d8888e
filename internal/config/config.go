// Package config provides configuration for the gicbank commands. Values
// come from environment variables, with an optional .env file loaded
// first.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	// Port is the listen port for the HTTP facade.
	Port int
	// SeedFile is an optional YAML demo-data file applied at startup.
	SeedFile string
	// Debug enables debug-level logging.
	Debug bool
}

// Load loads configuration from environment variables. It loads .env from
// the current directory if available; a custom .env path can be given.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Ignore a missing default .env.
		_ = godotenv.Load()
	}

	port, err := parseIntEnv("GICBANK_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid GICBANK_PORT: %w", err)
	}

	return &Config{
		Port:     port,
		SeedFile: os.Getenv("GICBANK_SEED_FILE"),
		Debug:    os.Getenv("GICBANK_DEBUG") == "true",
	}, nil
}

// parseIntEnv parses an int from an environment variable, returning
// defaultValue if the variable is not set.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}
	return parsed, nil
}
