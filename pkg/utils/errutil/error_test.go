package errutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/errutil"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newCtx() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logging.With(context.Background(), logger), &buf
}

func TestHandleError(t *testing.T) {
	t.Run("logs error with values", func(t *testing.T) {
		ctx, buf := newCtx()
		_, ctx = logging.CtxRequestID(ctx)
		err := goerr.Wrap(types.ErrFileFetch, "failed", goerr.V("path", "c.txt"))

		errutil.HandleError(ctx, "deploy failed", err)
		gt.True(t, strings.Contains(buf.String(), "level=ERROR"))
		gt.True(t, strings.Contains(buf.String(), "deploy failed"))
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		ctx, buf := newCtx()
		errutil.HandleError(ctx, "nothing", nil)
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("canceled context is a warning", func(t *testing.T) {
		ctx, buf := newCtx()
		errutil.HandleError(ctx, "lookup aborted", goerr.Wrap(context.Canceled, "aborted"))
		gt.True(t, strings.Contains(buf.String(), "level=WARN"))
		gt.False(t, strings.Contains(buf.String(), "level=ERROR"))
	})
}
