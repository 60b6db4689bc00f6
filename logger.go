package bitnn

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitnn-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLayer adds the layer geometry to the logger.
func (l *Logger) WithLayer(inputs, outputs int) *Logger {
	return &Logger{
		Logger: l.Logger.With("inputs", inputs, "outputs", outputs),
	}
}

// LogForward logs a forward pass.
func (l *Logger) LogForward(parallelism int, err error) {
	if err != nil {
		l.Error("forward pass failed",
			"parallelism", parallelism,
			"error", err,
		)
	} else {
		l.Debug("forward pass completed",
			"parallelism", parallelism,
		)
	}
}

// LogBackward logs a backward pass.
func (l *Logger) LogBackward(parallelism int, err error) {
	if err != nil {
		l.Error("backward pass failed",
			"parallelism", parallelism,
			"error", err,
		)
	} else {
		l.Debug("backward pass completed",
			"parallelism", parallelism,
		)
	}
}

// LogUpdate logs a weight update.
func (l *Logger) LogUpdate(scale int, err error) {
	if err != nil {
		l.Error("weight update failed",
			"scale", scale,
			"error", err,
		)
	} else {
		l.Debug("weight update completed",
			"scale", scale,
		)
	}
}

// LogPerturb logs a stochastic perturbation pass.
func (l *Logger) LogPerturb(rate float64, err error) {
	if err != nil {
		l.Error("perturbation failed",
			"rate", rate,
			"error", err,
		)
	} else {
		l.Debug("perturbation completed",
			"rate", rate,
		)
	}
}
