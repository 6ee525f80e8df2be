package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Shop defines the interface for purchase persistence
type Shop interface {
	BeginPurchase(ctx context.Context) (PurchaseTx, error)
}

// PurchaseTx defines the interface for a single-purchase transaction.
// All reads take row locks so the checked balance and stock cannot move
// under the transaction before commit.
type PurchaseTx interface {
	Tx
	// GetUserForUpdate returns domain.ErrUserNotFound when no row exists.
	GetUserForUpdate(ctx context.Context, userID int64) (*domain.User, error)
	// GetSkinForUpdate returns domain.ErrItemNotFound when no row exists.
	GetSkinForUpdate(ctx context.Context, skinID int64) (*domain.Skin, error)
	// InsertInventoryEntry attempts to create the ownership row. Returns
	// false without error when the user already owns the skin.
	InsertInventoryEntry(ctx context.Context, userID, skinID int64) (bool, error)
	DecrementSkinQuantity(ctx context.Context, skinID int64) error
	DebitUserBalance(ctx context.Context, userID int64, amount decimal.Decimal) error
	InsertTransaction(ctx context.Context, tx domain.Transaction) error
}
