// Package config loads runtime settings from an optional .env file and the
// environment. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ssoma/internal/datefmt"
	"ssoma/internal/logging"
)

// DefaultAPIURL is the base address of the company API.
const DefaultAPIURL = "http://localhost:8083/api/v1"

// Environment variables read by Load.
const (
	EnvAPIURL   = "SSOMA_API_URL"
	EnvLogLevel = "SSOMA_LOG_LEVEL"
	EnvLocale   = "SSOMA_LOCALE"
	EnvTimeout  = "SSOMA_TIMEOUT"
)

type Config struct {
	APIURL   string
	LogLevel string
	Locale   string

	// Timeout bounds each HTTP request. Zero means no limit.
	Timeout time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		LogLevel: "info",
		Locale:   datefmt.DefaultLocale,
	}
}

// Load reads envFile into the process environment (a missing file is not
// an error, and variables already set win) and then builds a Config from
// the environment on top of Default.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	cfg := Default()
	cfg.APIURL = getenv(EnvAPIURL, cfg.APIURL)
	cfg.LogLevel = getenv(EnvLogLevel, cfg.LogLevel)
	cfg.Locale = getenv(EnvLocale, cfg.Locale)
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("config: API URL is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := datefmt.New(c.Locale, nil); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: negative timeout %s", c.Timeout)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
