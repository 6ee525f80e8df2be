package repository

import (
	"context"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Catalog defines the interface for skin catalog persistence
type Catalog interface {
	// ListAvailable returns skins with quantity > 0 ordered by rarity rank
	// then ascending price.
	ListAvailable(ctx context.Context) ([]domain.Skin, error)
	// Search filters ListAvailable by a case-insensitive substring match on
	// name or description. An empty result is not an error.
	Search(ctx context.Context, term string) ([]domain.Skin, error)
	// GetSkin returns domain.ErrItemNotFound when no row exists.
	GetSkin(ctx context.Context, skinID int64) (*domain.Skin, error)
	InsertSkin(ctx context.Context, skin domain.Skin) (domain.Skin, error)
	// DeleteSkin hard-deletes the row. Outstanding inventory and cart
	// references are left dangling; admin operations are trusted.
	DeleteSkin(ctx context.Context, skinID int64) error
}
