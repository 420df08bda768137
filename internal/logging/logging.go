// Package logging configures the process-wide golog logger and hands out
// component loggers with a bracketed prefix.
package logging

import (
	"io"
	"strings"

	"github.com/kataras/golog"
	"github.com/mattn/go-colorable"
)

// Supported level names
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = LevelInfo

// Setup directs the default logger to a color-capable stdout and applies level.
func Setup(level string) {
	golog.SetOutput(colorable.NewColorableStdout())
	golog.SetLevel(NormalizeLevel(level))
	golog.SetTimeFormat("2006/01/02 15:04:05")
}

// NormalizeLevel lowercases level and falls back to DefaultLevel
func NormalizeLevel(level string) string {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l
	case "warning":
		return LevelWarn
	default:
		return DefaultLevel
	}
}

// For returns a logger for a component, e.g. For("batch") logs as "[batch] ...".
// It shares the default logger's level and output.
func For(component string) *golog.Logger {
	return golog.Default.Clone().SetPrefix("[" + component + "] ")
}

// Discard returns a logger that writes nothing, for tests
func Discard() *golog.Logger {
	return golog.New().SetOutput(io.Discard)
}
