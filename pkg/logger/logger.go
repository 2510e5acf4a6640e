// Package logger provides a zap-based application logger.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a logging severity.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn extracts a trace id from a context; it returns "" when there is none.
type TraceIDFn func(ctx context.Context) string

// Logger writes JSON log lines tagged with the service name and, when
// available, the trace id of the request context.
type Logger struct {
	z       *zap.SugaredLogger
	traceID TraceIDFn
}

// New creates a logger writing to w at the given minimum level.
func New(w io.Writer, level Level, service string, traceID TraceIDFn) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.MessageKey = "msg"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(zap.String("service", service))
	return &Logger{z: z.Sugar(), traceID: traceID}
}

// ParseLevel maps "debug", "info", "warn" or "error" to a Level, defaulting to info.
func ParseLevel(s string) Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return LevelInfo
	}
	return l
}

// Debug logs at debug level. keyvals alternate keys and values.
func (l *Logger) Debug(ctx context.Context, msg string, keyvals ...any) {
	l.z.Debugw(msg, l.withTrace(ctx, keyvals)...)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, keyvals ...any) {
	l.z.Infow(msg, l.withTrace(ctx, keyvals)...)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, keyvals ...any) {
	l.z.Warnw(msg, l.withTrace(ctx, keyvals)...)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, keyvals ...any) {
	l.z.Errorw(msg, l.withTrace(ctx, keyvals)...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) withTrace(ctx context.Context, keyvals []any) []any {
	if ctx == nil || l.traceID == nil {
		return keyvals
	}
	if id := l.traceID(ctx); id != "" {
		return append(keyvals, "trace_id", id)
	}
	return keyvals
}
