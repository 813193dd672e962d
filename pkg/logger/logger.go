// Package logger provides the process-wide diagnostic logger.
// Check output goes to stdout through pkg/output; this logger writes
// diagnostics to stderr and stays quiet unless --verbose is set.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Level  slog.Level
	Format string
	Output io.Writer
}

func DefaultConfig() *Config {
	return &Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

var (
	mu      sync.Mutex
	current *slog.Logger
)

// Init replaces the process logger. It may be called more than once.
func Init(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	mu.Lock()
	current = slog.New(handler)
	mu.Unlock()
}

// L returns the process logger, initializing it with defaults on first use.
func L() *slog.Logger {
	mu.Lock()
	l := current
	mu.Unlock()
	if l == nil {
		Init(DefaultConfig())
		return L()
	}
	return l
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }
