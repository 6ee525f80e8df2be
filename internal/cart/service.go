package cart

import (
	"context"
	"fmt"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// Service defines the interface for cart operations.
//
// The cart holds no stock: adding a skin does not reserve a unit, so a cart
// entry can go stale before checkout. Checkout revalidates everything.
type Service interface {
	Add(ctx context.Context, userID, skinID int64) error
	// Remove is idempotent; removing an absent entry is not an error.
	Remove(ctx context.Context, userID, skinID int64) error
	Clear(ctx context.Context, userID int64) error
	List(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type service struct {
	carts   repository.Cart
	catalog repository.Catalog
}

// NewService creates a new cart service
func NewService(carts repository.Cart, catalog repository.Catalog) Service {
	return &service{carts: carts, catalog: catalog}
}

func (s *service) Add(ctx context.Context, userID, skinID int64) error {
	log := logger.FromContext(ctx)

	skin, err := s.catalog.GetSkin(ctx, skinID)
	if err != nil {
		return err
	}
	if !skin.Available() {
		return fmt.Errorf("%w: %s", domain.ErrItemUnavailable, skin.Name)
	}

	added, err := s.carts.AddEntry(ctx, userID, skinID)
	if err != nil {
		log.Error("Failed to add cart entry", "error", err, "user_id", userID, "skin_id", skinID)
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	if !added {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyInCart, skin.Name)
	}

	log.Info("Skin added to cart", "user_id", userID, "skin_id", skinID, "skin", skin.Name)
	return nil
}

func (s *service) Remove(ctx context.Context, userID, skinID int64) error {
	return s.carts.RemoveEntry(ctx, userID, skinID)
}

func (s *service) Clear(ctx context.Context, userID int64) error {
	return s.carts.Clear(ctx, userID)
}

func (s *service) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.carts.ListItems(ctx, userID)
}

func (s *service) Count(ctx context.Context, userID int64) (int, error) {
	return s.carts.Count(ctx, userID)
}
