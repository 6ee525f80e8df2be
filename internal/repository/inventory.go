package repository

import (
	"context"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	// ListOwned returns inventory entries joined with live skin data,
	// newest purchase first.
	ListOwned(ctx context.Context, userID int64) ([]domain.OwnedSkin, error)
	// HasEntry reports whether the user owns the skin.
	HasEntry(ctx context.Context, userID, skinID int64) (bool, error)
	// DeleteEntry removes the ownership row. Returns false without error
	// when no row exists. The skin's catalog quantity is never touched:
	// withdrawal is a permanent sink.
	DeleteEntry(ctx context.Context, userID, skinID int64) (bool, error)
}
