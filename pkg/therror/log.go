package therror

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Logger delivers constructed errors to a logging backend at a severity
// level. Implementations must be safe for concurrent use.
type Logger interface {
	Log(ctx context.Context, level Level, err *Error)
}

// The process-wide default logger is a mutable reference read on every
// [Error.Log] call, guarded by a read-mostly lock: reassignment may race
// with error construction on other goroutines.
var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   Logger = NewSlogLogger(nil)
)

// SetDefaultLogger replaces the process-wide logger used by [Error.Log]
// when the context carries no override. Passing nil restores the
// slog-backed default. Safe for concurrent use.
func SetDefaultLogger(l Logger) {
	if l == nil {
		l = NewSlogLogger(nil)
	}
	defaultLoggerMu.Lock()
	defaultLogger = l
	defaultLoggerMu.Unlock()
}

// DefaultLogger returns the process-wide logger.
func DefaultLogger() Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// loggerKey is the context key carrying a request-scoped logger override.
type loggerKey struct{}

// WithLogger returns a context carrying a request-scoped logger override.
// [Error.Log] prefers it over the process-wide default, which supports
// per-request loggers enriched with correlation fields.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// LoggerFromContext returns the logger override carried by ctx, if any.
func LoggerFromContext(ctx context.Context) (Logger, bool) {
	l, ok := ctx.Value(loggerKey{}).(Logger)
	return l, ok
}

// Log emits the error at the type's configured level. The logger is
// resolved on every call (the context override when present, the
// process-wide default otherwise) and is never cached on the instance.
// When ctx carries a recording span, the error is attached to it as well.
// A nil instance logs nothing.
func (e *Error) Log(ctx context.Context) {
	if e == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	level := e.Level()
	recordSpan(ctx, level, e)

	logger, ok := LoggerFromContext(ctx)
	if !ok {
		logger = DefaultLogger()
	}
	logger.Log(ctx, level, e)
}

// recordSpan attaches the error to the active span: recorded as a span
// error at error and fatal levels, added as a plain event below.
func recordSpan(ctx context.Context, level Level, e *Error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("error.name", e.Name()),
		attribute.String("error.level", level.String()),
	}
	if code, ok := e.StatusCode(); ok {
		attrs = append(attrs, attribute.Int("error.status_code", code))
	}

	if level == LevelError || level == LevelFatal {
		span.RecordError(e, trace.WithAttributes(attrs...))
		span.SetStatus(codes.Error, e.Error())
		return
	}
	span.AddEvent("error.logged", trace.WithAttributes(attrs...))
}

// SlogLogger is the slog-backed [Logger] used as the process-wide default.
type SlogLogger struct {
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger creates a logger writing through the given [*slog.Logger].
// Passing nil resolves [slog.Default] at log time, so later calls to
// slog.SetDefault are honored.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// Log writes a single record: the rendered message at the mapped slog
// level, with identity, status, cause, property, and trace attributes.
func (s *SlogLogger) Log(ctx context.Context, level Level, err *Error) {
	if err == nil {
		return
	}

	l := s.logger
	if l == nil {
		l = slog.Default()
	}

	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs, slog.String("error_name", err.Name()))
	if ns := err.Namespace(); ns != "" {
		attrs = append(attrs, slog.String("error_namespace", ns))
	}
	if code, ok := err.StatusCode(); ok {
		attrs = append(attrs, slog.Int("status_code", code))
	}
	if cause := err.Cause(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	if props := err.Properties(); len(props) > 0 {
		attrs = append(attrs, slog.Any("properties", props))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
	}

	l.LogAttrs(ctx, level.Slog(), err.Message(), attrs...)
}
