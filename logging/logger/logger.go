// Package logger provides the process-wide structured logger.
//
// The logger is logrus-backed and context-aware: every entry carries the
// request trace id when one is present in the context. Fields are passed as
// alternating key/value pairs:
//
//	log := logger.StdLogger()
//	log.Info(ctx, "user created", "id", id)
package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aigram-labs/aigram/config"
	"github.com/aigram-labs/aigram/ctxutil"
)

// Logger wraps a logrus logger with context-aware key/value methods.
type Logger struct {
	log *logrus.Logger
}

var std = &Logger{log: logrus.StandardLogger()}

// StdLogger returns the shared process logger.
func StdLogger() *Logger {
	return std
}

// New configures the shared logger from config and returns a cleanup function
// that flushes and closes any log file.
func New(cfg *config.Logger) (func(), error) {
	cleanup := func() {}
	if cfg == nil {
		return cleanup, nil
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	std.log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		std.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		std.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch cfg.Output {
	case "stderr":
		std.log.SetOutput(os.Stderr)
	case "file":
		if cfg.OutputFile == "" {
			return cleanup, fmt.Errorf("logger output is file but output_file is empty")
		}
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cleanup, fmt.Errorf("failed to open log file: %w", err)
		}
		std.log.SetOutput(f)
		cleanup = func() { _ = f.Close() }
	default:
		std.log.SetOutput(os.Stdout)
	}

	return cleanup, nil
}

// Debug logs a message at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Debug(msg)
}

// Info logs a message at info level.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Info(msg)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Warn(msg)
}

// Error logs a message at error level.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.entry(ctx, kv).Error(msg)
}

// entry builds a logrus entry from key/value pairs and the context trace id.
// A trailing key without a value is recorded under "EXTRA".
func (l *Logger) entry(ctx context.Context, kv []any) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	if len(kv)%2 != 0 {
		fields["EXTRA"] = kv[len(kv)-1]
	}
	if ctx != nil {
		if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
			fields[ctxutil.TraceIDKey] = traceID
		}
	}
	return l.log.WithFields(fields)
}
