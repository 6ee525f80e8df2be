package repository

import (
	"context"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Ledger defines the interface for the append-only transaction log
type Ledger interface {
	InsertTransaction(ctx context.Context, tx domain.Transaction) error
	// ListPurchases returns purchase records for a user, newest first.
	ListPurchases(ctx context.Context, userID int64) ([]domain.Transaction, error)
}
