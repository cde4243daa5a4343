package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError logs err and sends it to Sentry with its goerr values and the
// request ID of ctx. A canceled context is logged as a warning only.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn(msg, "error", err)
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if id, ok := logging.RequestIDFrom(ctx); ok {
			scope.SetTag("request_id", string(id))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logger.Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
