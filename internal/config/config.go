// Package config loads swatchbook settings from a YAML file, the environment
// and an optional .env file. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatchbook/internal/colour"
	"github.com/jmylchreest/swatchbook/internal/security"
)

// Environment variable names.
const (
	EnvServiceURL   = "SWATCHBOOK_SERVICE_URL"
	EnvTimeout      = "SWATCHBOOK_TIMEOUT"
	EnvLogLevel     = "SWATCHBOOK_LOG_LEVEL"
	EnvDefaultAlpha = "SWATCHBOOK_DEFAULT_ALPHA"
	EnvNoColor      = "SWATCHBOOK_NO_COLOR"
	EnvConfigFile   = "SWATCHBOOK_CONFIG"
)

// Defaults.
const (
	DefaultServiceURL = "http://localhost:8000"
	DefaultTimeout    = 10 * time.Second
	DefaultLogLevel   = "info"
)

// Config holds runtime settings.
type Config struct {
	ServiceURL   string        `yaml:"service_url"`
	Timeout      time.Duration `yaml:"timeout"`
	LogLevel     string        `yaml:"log_level"`
	DefaultAlpha float64       `yaml:"default_alpha"`
	NoColor      bool          `yaml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServiceURL:   DefaultServiceURL,
		Timeout:      DefaultTimeout,
		LogLevel:     DefaultLogLevel,
		DefaultAlpha: colour.DefaultAlpha,
	}
}

// Load builds a Config from defaults, then the YAML file named by path (or by
// SWATCHBOOK_CONFIG when path is empty), then the environment. A .env file in
// the working directory is loaded into the environment first if present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvServiceURL); v != "" {
		c.ServiceURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvDefaultAlpha); v != "" {
		a, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDefaultAlpha, err)
		}
		c.DefaultAlpha = a
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvNoColor, err)
		}
		c.NoColor = b
	}
	return nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if err := security.ValidateServiceURL(c.ServiceURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.DefaultAlpha < 0 || c.DefaultAlpha > 1 {
		return fmt.Errorf("default alpha must be within [0,1], got %v", c.DefaultAlpha)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
