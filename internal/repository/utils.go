package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error.
// Rolling back an already-committed transaction is expected and silent.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
