package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// UpsertUser inserts the user on first contact; an existing row is left
	// untouched. The stored row is returned either way.
	UpsertUser(ctx context.Context, user domain.User) (domain.User, error)
	// GetUser returns domain.ErrUserNotFound when no row exists.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// SetBalance overwrites the balance without invariant checks
	// (admin override path only).
	SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) error
}
