package adminflow

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// SkinInput is the admin-supplied payload for a new catalog entry
type SkinInput struct {
	Name        string          `validate:"required"`
	Description string          `validate:"-"`
	Price       decimal.Decimal `validate:"-"` // checked separately, must be > 0
	Rarity      domain.Rarity   `validate:"required"` // must also be a ranked tier
	ExternalRef string          `validate:"-"`
	ImageURL    string          `validate:"omitempty,url"`
	Quantity    int             `validate:"gte=0"`
}

// Service defines the interface for admin inventory and user management
type Service interface {
	AddSkin(ctx context.Context, input SkinInput) (*domain.Skin, error)
	// DeleteSkin hard-deletes the catalog entry. Inventory rows pointing at
	// the deleted skin stay behind; owners keep what they paid for even if
	// it no longer renders.
	DeleteSkin(ctx context.Context, skinID int64) error
	// SetBalance overrides the user's balance to an absolute value and
	// appends an admin_adjustment record carrying that value.
	SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type service struct {
	catalog  repository.Catalog
	users    repository.User
	ledger   repository.Ledger
	validate *validator.Validate
}

// NewService creates a new adminflow service
func NewService(catalog repository.Catalog, users repository.User, ledger repository.Ledger) Service {
	return &service{
		catalog:  catalog,
		users:    users,
		ledger:   ledger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *service) AddSkin(ctx context.Context, input SkinInput) (*domain.Skin, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !input.Rarity.IsRanked() {
		return nil, fmt.Errorf("%w: rarity must be one of %v", domain.ErrInvalidInput, domain.RankedRarities)
	}
	if !input.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}

	skin, err := s.catalog.InsertSkin(ctx, domain.Skin{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Rarity:      input.Rarity,
		ExternalRef: input.ExternalRef,
		ImageURL:    input.ImageURL,
		Quantity:    input.Quantity,
	})
	if err != nil {
		log.Error("Failed to insert skin", "error", err, "name", input.Name)
		return nil, fmt.Errorf("failed to add skin: %w", err)
	}

	log.Info("Skin added", "skin_id", skin.ID, "name", skin.Name, "price", skin.Price, "quantity", skin.Quantity)
	return &skin, nil
}

func (s *service) DeleteSkin(ctx context.Context, skinID int64) error {
	log := logger.FromContext(ctx)

	if err := s.catalog.DeleteSkin(ctx, skinID); err != nil {
		return err
	}

	log.Info("Skin deleted", "skin_id", skinID)
	return nil
}

// SetBalance is the operator override: it accepts any value, negative
// included, and bypasses the invariants the purchase path enforces.
func (s *service) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if err := s.users.SetBalance(ctx, userID, balance); err != nil {
		return nil, err
	}

	// The adjustment record keeps the value the admin chose, not the delta
	// from the previous balance.
	record := domain.Transaction{
		UserID:      userID,
		Amount:      balance,
		Kind:        domain.TransactionAdminAdjustment,
		Description: "balance set by admin",
	}
	if err := s.ledger.InsertTransaction(ctx, record); err != nil {
		log.Error("Failed to append adjustment record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to record adjustment: %w", err)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Info("Balance set", "user_id", userID, "balance", balance)
	return user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}
