// Package common provides shared utilities for Compass
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Compass
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Datasets    DatasetsConfig `toml:"datasets"`
	Gap         GapConfig      `toml:"gap"`
	Web         WebConfig      `toml:"web"`
	Logging     LoggingConfig  `toml:"logging"`
	Limits      LimitsConfig   `toml:"limits"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatasetsConfig holds the location of the role dataset files.
type DatasetsConfig struct {
	Path string `toml:"path"`
}

// GapConfig holds the external curriculum gap-analysis service configuration.
// An empty BaseURL disables the forwarding endpoint.
type GapConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *GapConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// WebConfig holds static UI hosting configuration. An empty Dir disables
// static file serving.
type WebConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// LimitsConfig holds request rate limiting configuration.
type LimitsConfig struct {
	RatePerSecond float64 `toml:"rate_per_second"`
	Burst         int     `toml:"burst"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Datasets: DatasetsConfig{
			Path: "data/datasets",
		},
		Gap: GapConfig{
			Timeout: "30s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Limits: LimitsConfig{
			RatePerSecond: 50,
			Burst:         100,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("COMPASS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("COMPASS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("COMPASS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("COMPASS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("COMPASS_DATASETS_PATH"); path != "" {
		config.Datasets.Path = path
	}

	if url := os.Getenv("COMPASS_GAP_URL"); url != "" {
		config.Gap.BaseURL = url
	}

	if dir := os.Getenv("COMPASS_WEB_DIR"); dir != "" {
		config.Web.Dir = dir
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
