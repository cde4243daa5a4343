package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
	ctxLoggerKey
	ctxTimeKey
)

// CtxRequestID returns the request ID of ctx. When ctx has none, a new ID is
// generated and returned with a context carrying it.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := RequestIDFrom(ctx); ok {
		return id, ctx
	}

	id := types.NewRequestID()
	return id, context.WithValue(ctx, ctxRequestIDKey, id)
}

// RequestIDFrom returns the request ID of ctx without generating one.
func RequestIDFrom(ctx context.Context) (types.RequestID, bool) {
	id, ok := ctx.Value(ctxRequestIDKey).(types.RequestID)
	return id, ok
}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

// From returns the logger of ctx or the default logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type TimeFunc func() time.Time

// CtxTime returns now by the time function of ctx, or time.Now if not set.
// Tests set a fixed clock to make CreatedAt of deployments predictable.
func CtxTime(ctx context.Context) time.Time {
	if fn, ok := ctx.Value(ctxTimeKey).(TimeFunc); ok {
		return fn()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, fn TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey, fn)
}
