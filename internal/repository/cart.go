package repository

import (
	"context"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Cart defines the interface for cart persistence
type Cart interface {
	// AddEntry inserts a (user, skin) pair. Returns false without error when
	// the pair already exists.
	AddEntry(ctx context.Context, userID, skinID int64) (bool, error)
	// RemoveEntry deletes the pair if present. Idempotent.
	RemoveEntry(ctx context.Context, userID, skinID int64) error
	Clear(ctx context.Context, userID int64) error
	// ListItems returns cart entries joined with live skin data.
	ListItems(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Count(ctx context.Context, userID int64) (int, error)
}
