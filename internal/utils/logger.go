package utils

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type requestIDKey struct{}

// WithRequestID stores the request id so services can tag their log lines.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, strings.TrimSpace(requestID))
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// LogEvent prints a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(ctx context.Context, module, action, message string, attrs ...any) {
	args := append([]any{
		"module", strings.ToUpper(module),
		"action", action,
		"request_id", RequestID(ctx),
	}, attrs...)
	slog.InfoContext(ctx, message, args...)
}

// LogError is LogEvent at error level.
func LogError(ctx context.Context, module, action string, err error, attrs ...any) {
	args := append([]any{
		"module", strings.ToUpper(module),
		"action", action,
		"request_id", RequestID(ctx),
		"err", err,
	}, attrs...)
	slog.ErrorContext(ctx, "operation failed", args...)
}
