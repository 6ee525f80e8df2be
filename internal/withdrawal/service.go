package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/metrics"
	"github.com/m1kellaa/SkinShopBot_Go/internal/notify"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// Service defines the interface for the withdrawal workflow. Fulfillment is
// manual: the operator trades the skin to the user off-platform, so a
// withdrawn skin leaves the system entirely and catalog stock is never
// restored.
type Service interface {
	// Request validates ownership and returns the skin for the hand-off
	// instructions. No state changes.
	Request(ctx context.Context, userID, skinID int64) (*domain.Skin, error)
	// Confirm removes the skin from the user's inventory and notifies the
	// operator. Returns domain.ErrNotOwned when there is nothing to remove.
	// A skin that has since been hard-deleted from the catalog can still be
	// withdrawn; the returned record then carries a placeholder name.
	Confirm(ctx context.Context, userID, skinID int64) (*domain.Skin, error)
}

type service struct {
	inventory repository.Inventory
	catalog   repository.Catalog
	users     repository.User
	notifier  notify.Notifier
}

// NewService creates a new withdrawal service
func NewService(inventory repository.Inventory, catalog repository.Catalog, users repository.User, notifier notify.Notifier) Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &service{
		inventory: inventory,
		catalog:   catalog,
		users:     users,
		notifier:  notifier,
	}
}

func (s *service) Request(ctx context.Context, userID, skinID int64) (*domain.Skin, error) {
	log := logger.FromContext(ctx)

	owned, err := s.inventory.HasEntry(ctx, userID, skinID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, fmt.Errorf("%w: skin %d", domain.ErrNotOwned, skinID)
	}

	skin, err := s.catalog.GetSkin(ctx, skinID)
	if err != nil {
		return nil, err
	}

	log.Info("Withdrawal requested", "user_id", userID, "skin", skin.Name)
	return skin, nil
}

func (s *service) Confirm(ctx context.Context, userID, skinID int64) (*domain.Skin, error) {
	log := logger.FromContext(ctx)

	removed, err := s.inventory.DeleteEntry(ctx, userID, skinID)
	if err != nil {
		log.Error("Failed to delete inventory entry", "error", err, "user_id", userID, "skin_id", skinID)
		return nil, fmt.Errorf("failed to remove from inventory: %w", err)
	}
	if !removed {
		return nil, fmt.Errorf("%w: skin %d", domain.ErrNotOwned, skinID)
	}

	// Ownership is gone either way; a skin the admin hard-deleted from the
	// catalog must not block the hand-off.
	skin, err := s.catalog.GetSkin(ctx, skinID)
	if err != nil {
		if !errors.Is(err, domain.ErrItemNotFound) {
			log.Error("Failed to load withdrawn skin", "error", err, "skin_id", skinID)
		}
		skin = &domain.Skin{ID: skinID, Name: "(removed from catalog)"}
	}

	metrics.WithdrawalsTotal.Inc()

	if user, err := s.users.GetUser(ctx, userID); err == nil {
		s.notifier.WithdrawalConfirmed(ctx, *user, *skin, time.Now())
	}

	log.Info("Withdrawal confirmed", "user_id", userID, "skin", skin.Name)
	return skin, nil
}
