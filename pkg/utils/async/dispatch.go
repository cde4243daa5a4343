package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ghbox/pkg/utils/errutil"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine. The handler receives a
// background context that keeps the logger, request ID and time function of
// ctx but is not canceled with it. Returned errors are passed to
// errutil.HandleError and panics are recovered and logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			errutil.HandleError(newCtx, "error in async handler", err)
		}
	}()
}
