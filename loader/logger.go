package loader

import (
	"context"
	"log/slog"
)

// Logger is the interface that openapi2jsonschema uses for structured logging.
//
// The interface is designed to be minimal yet compatible with popular logging
// libraries including log/slog, zap, and zerolog. It uses variadic key-value
// pairs for structured attributes, following the same convention as log/slog.
//
// Implementations should treat attrs as alternating key-value pairs:
//
//	logger.Debug("processing type", "kind", "Pod", "version", "v1")
//
// Keys should be strings, and values can be any type that the underlying
// logger can serialize.
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger:
//
//	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	l := loader.New()
//	l.Logger = loader.NewSlogAdapter(slog.New(handler))
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every log.
	// This is useful for adding context that applies to multiple log calls.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

// Ensure NopLogger implements Logger at compile time.
var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (a *SlogAdapter) Debug(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, argsToAttrs(attrs)...)
}

// Info implements Logger.
func (a *SlogAdapter) Info(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, argsToAttrs(attrs)...)
}

// Warn implements Logger.
func (a *SlogAdapter) Warn(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, argsToAttrs(attrs)...)
}

// Error implements Logger.
func (a *SlogAdapter) Error(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, msg, argsToAttrs(attrs)...)
}

// With implements Logger.
func (a *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: a.logger.With(attrs...)}
}

// Ensure SlogAdapter implements Logger at compile time.
var _ Logger = (*SlogAdapter)(nil)

// argsToAttrs converts alternating key-value pairs to slog.Attr values.
// A trailing key without a value is recorded with a "!MISSING" placeholder.
func argsToAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		if i+1 < len(args) {
			attrs = append(attrs, slog.Any(key, args[i+1]))
		} else {
			attrs = append(attrs, slog.String(key, "!MISSING"))
		}
	}
	return attrs
}
