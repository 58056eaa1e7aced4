package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the viewer settings. File values are overridden by
// POKEDEX_* environment variables.
type Config struct {
	BaseURL        string `toml:"base_url" env:"POKEDEX_BASE_URL"`
	PageSize       int    `toml:"page_size" env:"POKEDEX_PAGE_SIZE"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"POKEDEX_TIMEOUT_SECONDS"`
	Concurrency    int    `toml:"concurrency" env:"POKEDEX_CONCURRENCY"`
	LogFile        string `toml:"log_file" env:"POKEDEX_LOG_FILE"`
	LogLevel       string `toml:"log_level" env:"POKEDEX_LOG_LEVEL"`
}

const (
	defaultConfigPath     = "~/.config/pokedex/config.toml"
	defaultBaseURL        = "https://pokeapi.co/api/v2"
	defaultPageSize       = 52
	defaultTimeoutSeconds = 10
	defaultLogFile        = "~/.local/share/pokedex/pokedex.log"
	defaultLogLevel       = "info"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:        defaultBaseURL,
		PageSize:       defaultPageSize,
		TimeoutSeconds: defaultTimeoutSeconds,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load reads the config file at path (the default location when empty),
// applies environment overrides and fills in defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}

	switch {
	case c.PageSize == 0:
		c.PageSize = defaultPageSize
	case c.PageSize < 0:
		return Config{}, fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}

	switch {
	case c.TimeoutSeconds == 0:
		c.TimeoutSeconds = defaultTimeoutSeconds
	case c.TimeoutSeconds < 0:
		return Config{}, fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}

	if c.Concurrency < 0 {
		return Config{}, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)
	return c, nil
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
