// Package logging builds the module's diagnostic logger. Everything goes
// to stderr: stdout carries exactly one JSON envelope for the bar and
// nothing else may touch it.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tinted slog logger writing to stderr at the given level.
func New(level slog.Level) *slog.Logger {
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h).With("app", "waybar-weather")
}
