package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface for chainctx. This allows
// users to provide their own logger implementation or use the built-in
// adapters. Args follow the slog key/value convention.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// ChainLogger wraps slog.Logger adding contextual cloning helpers and domain
// convenience methods. It should be cheap to copy via With* methods.
type ChainLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
	runID     string
}

// LoggerConfig configures construction of a ChainLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
	RunID     string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// NewLogger builds a ChainLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *ChainLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return &ChainLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component, runID: cfg.RunID}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent sets the logical component (assembler, chain, model, etc.).
func (l *ChainLogger) WithComponent(c string) *ChainLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithRun attaches a chain run identifier.
func (l *ChainLogger) WithRun(runID string) *ChainLogger {
	nl := *l
	nl.runID = runID
	return &nl
}

// Debug logs at debug level.
func (l *ChainLogger) Debug(msg string, args ...any) {
	if l.level > LogLevelDebug {
		return
	}
	l.logWith(slog.LevelDebug, msg, args...)
}

// Info logs at info level.
func (l *ChainLogger) Info(msg string, args ...any) {
	if l.level > LogLevelInfo {
		return
	}
	l.logWith(slog.LevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *ChainLogger) Warn(msg string, args ...any) {
	if l.level > LogLevelWarn {
		return
	}
	l.logWith(slog.LevelWarn, msg, args...)
}

// Error logs at error level.
func (l *ChainLogger) Error(msg string, args ...any) {
	l.logWith(slog.LevelError, msg, args...)
}

func (l *ChainLogger) logWith(level slog.Level, msg string, args ...any) {
	base := l.logger
	if l.component != "" {
		base = base.With("component", l.component)
	}
	if l.runID != "" {
		base = base.With("run_id", l.runID)
	}
	base.Log(context.Background(), level, msg, args...)
}

// LogModelCall records model call latency, token usage and success.
func (l *ChainLogger) LogModelCall(model string, promptTokens int, dur time.Duration, success bool, err error) {
	args := []any{"model", model, "prompt_tokens", promptTokens, "duration", dur, "success", success}
	if err != nil {
		args = append(args, "error", err.Error())
		l.Error("Model call failed", args...)
		return
	}
	l.Info("Model call completed", args...)
}

// LogCompaction records a compaction decision for one response.
func (l *ChainLogger) LogCompaction(index int, tier string, budget, estimated int, truncated, summarized bool) {
	l.Debug("Response compacted",
		"index", index,
		"tier", tier,
		"budget_tokens", budget,
		"estimated_tokens", estimated,
		"truncated", truncated,
		"summarized", summarized,
	)
}

// LogChainRun records aggregate chain run metrics.
func (l *ChainLogger) LogChainRun(steps int, dur time.Duration, success bool, err error) {
	args := []any{"step_count", steps, "duration", dur, "success", success}
	if err != nil {
		args = append(args, "error", err.Error())
		l.Error("Chain run failed", args...)
		return
	}
	l.Info("Chain run completed", args...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging
// is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
