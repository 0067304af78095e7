// Package config provides 12-factor configuration for the calculator
// service. Values load from environment variables with sensible defaults;
// an optional TOML or YAML file (CALCD_CONFIG) overlays the environment
// for deployments that prefer files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Engine    EngineConfig    `toml:"engine" yaml:"engine"`
	Logging   LogConfig       `toml:"logging" yaml:"logging"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000" toml:"port" yaml:"port"`
	Host string `envconfig:"HOST" default:"0.0.0.0" toml:"host" yaml:"host"`
}

// EngineConfig holds the numerical tolerances shared by every routine.
type EngineConfig struct {
	// Tolerance is the convergence and error-acceptance threshold.
	Tolerance float64 `envconfig:"ENGINE_TOL" default:"1e-15" toml:"tolerance" yaml:"tolerance"`
	// Step is the differential step for the differentiation routines.
	Step float64 `envconfig:"ENGINE_STEP" default:"1e-12" toml:"step" yaml:"step"`
	// MaxIterations caps Newton-Raphson iteration counts.
	MaxIterations int `envconfig:"ENGINE_MAX_ITER" default:"1000000" toml:"max_iterations" yaml:"max_iterations"`
	// MaxDepth caps adaptive quadrature recursion.
	MaxDepth int `envconfig:"ENGINE_MAX_DEPTH" default:"50" toml:"max_depth" yaml:"max_depth"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" toml:"level" yaml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" toml:"development" yaml:"development"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" toml:"requests_per_second" yaml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" toml:"burst" yaml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" toml:"enabled" yaml:"enabled"`
}

// Load loads configuration from the environment, then overlays the file
// named by CALCD_CONFIG when set.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if path := os.Getenv("CALCD_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration or falls back to defaults on error.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Engine: EngineConfig{
			Tolerance:     1e-15,
			Step:          1e-12,
			MaxIterations: 1_000_000,
			MaxDepth:      50,
		},
		Logging: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}

// loadFile overlays cfg with values from a TOML or YAML file, chosen by
// extension.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format: %s", path)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Engine.Tolerance <= 0 {
		return fmt.Errorf("engine tolerance must be positive, got %g", c.Engine.Tolerance)
	}
	if c.Engine.Step <= 0 {
		return fmt.Errorf("engine step must be positive, got %g", c.Engine.Step)
	}
	if c.Engine.MaxIterations <= 0 {
		return fmt.Errorf("engine max iterations must be positive, got %d", c.Engine.MaxIterations)
	}
	if c.Engine.MaxDepth <= 0 {
		return fmt.Errorf("engine max depth must be positive, got %d", c.Engine.MaxDepth)
	}
	return nil
}
