// Package log wires slog to a charmbracelet handler and carries
// loggers through contexts so request-scoped fields follow the call.
package log

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

func NewHandler(name string, level log.Level) slog.Handler {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          name,
		Level:           level,
	})
}

func New(name string) *slog.Logger {
	return slog.New(NewHandler(name, log.InfoLevel))
}

// NewFromString builds a logger from a level name ("DEBUG", "INFO",
// "WARN", "ERROR"); unknown names fall back to INFO.
func NewFromString(name, level string) *slog.Logger {
	l, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		l = log.InfoLevel
	}
	return slog.New(NewHandler(name, l))
}

type ctxKey struct{}

// IntoContext adds a logger to a context. Use FromContext to
// pull the logger out.
func IntoContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns a logger from a context.Context;
// if the passed context carries none, we return the default slog
// logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if v := ctx.Value(ctxKey{}); v != nil {
			return v.(*slog.Logger)
		}
	}
	return slog.Default()
}
