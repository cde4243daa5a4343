package safe

import (
	"context"
	"database/sql"
	"errors"
	"io"

	"github.com/m-mizutani/ghbox/pkg/utils/logging"
)

// Close closes c and logs a failure with the logger of ctx. A nil closer and
// io.EOF are ignored.
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("failed to close resource", "error", err)
	}
}

// Rollback rolls back tx unless it is already committed.
func Rollback(ctx context.Context, tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.From(ctx).Warn("failed to rollback transaction", "error", err)
	}
}
