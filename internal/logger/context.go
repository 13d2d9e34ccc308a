package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// IntoContext stores the logger in the context.
func IntoContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in the context, falling back
// to the global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return GetLogger()
}

// WithRequestID attaches a request id field to the context logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return IntoContext(ctx, FromContext(ctx).With("request_id", requestID))
}

// WithUserID attaches a user id field to the context logger.
func WithUserID(ctx context.Context, userID string) context.Context {
	return IntoContext(ctx, FromContext(ctx).With("user_id", userID))
}

func CtxDebug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs the message with an attached error field.
func CtxWithError(ctx context.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	FromContext(ctx).Error(msg, args...)
}
