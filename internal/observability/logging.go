// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// RunLogger provides structured logging for scheduling runs.
type RunLogger struct {
	component string
	logger    *Logger
}

// NewRunLogger creates a RunLogger for the given component.
func NewRunLogger(component string) *RunLogger {
	return &RunLogger{
		component: component,
		logger:    GlobalLogger,
	}
}

// LogRunStart logs the beginning of a calendar generation run.
func (l *RunLogger) LogRunStart(ctx context.Context, runID string, weekNumber, postsPerWeek int) {
	l.logger.InfoContext(ctx, "generation run started",
		slog.String("component", l.component),
		slog.String("run_id", runID),
		slog.Int("week_number", weekNumber),
		slog.Int("posts_per_week", postsPerWeek),
	)
}

// LogRunEnd logs the completion of a run with its realized volumes.
func (l *RunLogger) LogRunEnd(ctx context.Context, runID string, posts, comments, dropped int) {
	l.logger.InfoContext(ctx, "generation run completed",
		slog.String("component", l.component),
		slog.String("run_id", runID),
		slog.Int("posts", posts),
		slog.Int("comments", comments),
		slog.Int("dropped_slots", dropped),
	)
}

// LogRunError logs a failed run.
func (l *RunLogger) LogRunError(ctx context.Context, runID string, err error) {
	l.logger.ErrorContext(ctx, "generation run failed",
		slog.String("component", l.component),
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
	)
}
