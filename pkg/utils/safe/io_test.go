package safe_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/ghbox/pkg/utils/safe"
	"github.com/m-mizutani/gt"
)

type closer struct {
	err    error
	closed bool
}

func (x *closer) Close() error {
	x.closed = true
	return x.err
}

func newCtx() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return logging.With(context.Background(), logger), &buf
}

func TestClose(t *testing.T) {
	t.Run("closes without log", func(t *testing.T) {
		ctx, buf := newCtx()
		c := &closer{}
		safe.Close(ctx, c)
		gt.True(t, c.closed)
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("nil closer", func(t *testing.T) {
		ctx, buf := newCtx()
		safe.Close(ctx, nil)
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("failure is logged", func(t *testing.T) {
		ctx, buf := newCtx()
		safe.Close(ctx, &closer{err: io.ErrUnexpectedEOF})
		gt.True(t, strings.Contains(buf.String(), "failed to close resource"))
	})

	t.Run("EOF is ignored", func(t *testing.T) {
		ctx, buf := newCtx()
		safe.Close(ctx, &closer{err: io.EOF})
		gt.V(t, buf.Len()).Equal(0)
	})
}

func TestRollback(t *testing.T) {
	ctx, buf := newCtx()
	safe.Rollback(ctx, nil)
	gt.V(t, buf.Len()).Equal(0)
}
