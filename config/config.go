// Package config resolves the module's settings from the environment.
// Configuration problems never break the envelope guarantee: a missing
// API key surfaces later as an error envelope, and malformed values fall
// back to defaults with the error reported for logging.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultLocation = "Wellington"
	DefaultTimeout  = 10 * time.Second
)

// Config holds the resolved settings.
type Config struct {
	APIKey   string        // WEATHER_API_KEY; empty means the fetch cannot run
	Location string        // WEATHER_LOCATION, overridden by the first CLI argument
	BaseURL  string        // WEATHER_API_BASE_URL; empty selects the provider default
	Timeout  time.Duration // WEATHER_TIMEOUT
	LogLevel slog.Level    // LOG_LEVEL
}

// Load reads settings from the environment. The returned Config is
// always usable; err reports the first malformed value that was replaced
// by its default so the caller can log a warning.
func Load() (Config, error) {
	cfg := Config{
		APIKey:   strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
		Location: strings.TrimSpace(os.Getenv("WEATHER_LOCATION")),
		BaseURL:  strings.TrimSpace(os.Getenv("WEATHER_API_BASE_URL")),
		Timeout:  DefaultTimeout,
		LogLevel: slog.LevelInfo,
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}

	var firstErr error

	if raw := strings.TrimSpace(os.Getenv("WEATHER_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			firstErr = fmt.Errorf("invalid WEATHER_TIMEOUT %q, using %s", raw, DefaultTimeout)
		} else {
			cfg.Timeout = timeout
		}
	}

	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		level, err := parseLogLevel(raw)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
		} else {
			cfg.LogLevel = level
		}
	}

	return cfg, firstErr
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
