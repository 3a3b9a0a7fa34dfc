package config

import (
	"os"
	"strconv"
)

// Config holds the HTTP service settings read from the environment.
type Config struct {
	Port        string
	OutputDir   string
	MaxSamples  int
	Development bool
}

// Load reads the configuration, falling back to defaults for unset or
// malformed values.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		OutputDir:   getEnv("PHASELINE_OUTPUT_DIR", "graphs"),
		MaxSamples:  getEnvInt("PHASELINE_MAX_SAMPLES", 1_000_000),
		Development: getEnvBool("PHASELINE_DEV", false),
	}
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
