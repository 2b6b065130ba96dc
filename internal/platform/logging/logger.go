// Package logging provides structured logging using Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lifestore/lifestore-api/internal/platform/config"
)

// Config holds logging configuration.
type Config struct {
	Level   string // debug, info, warn, error
	Format  string // json, text, pretty
	Service string // service name for default attrs
	Version string // service version for default attrs

	// File enables an additional rolling JSON file sink.
	File config.LogFileConfig
}

// New creates a new configured slog.Logger.
// The console sink honors Format; when the file sink is enabled, log records
// additionally go to a size-rotated JSON file. Both sinks redact secrets.
func New(cfg Config) *slog.Logger {
	handler := consoleHandler(cfg, os.Stdout)

	if cfg.File.Enabled {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		handler = NewMultiHandler(handler, jsonHandler(cfg, fileWriter))
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

// NewWithWriter creates a new configured slog.Logger with a custom writer and
// no file sink.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(consoleHandler(cfg, w)).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

// consoleHandler builds the primary sink handler for the configured format.
func consoleHandler(cfg Config, w io.Writer) slog.Handler {
	switch strings.ToLower(cfg.Format) {
	case "text":
		return slog.NewTextHandler(w, handlerOptions(cfg))

	case "pretty":
		// Human-readable colored output for local development
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmLevel(cfg.Level),
			ReportTimestamp: true,
		})

	default:
		return jsonHandler(cfg, w)
	}
}

func jsonHandler(cfg Config, w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, handlerOptions(cfg))
}

// handlerOptions returns slog handler options with secret redaction applied.
func handlerOptions(cfg Config) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: NewReplaceAttr(),
	}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// charmLevel converts a string log level to a charmbracelet log level.
func charmLevel(level string) charmlog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
