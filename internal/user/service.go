package user

import (
	"context"
	"fmt"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// Identity is the platform-provided identity of a user making first contact.
type Identity struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Service defines the interface for user registration and account views
type Service interface {
	// Register upserts the user on first contact and returns the stored row.
	// Registration is idempotent; an existing user keeps their balance.
	Register(ctx context.Context, identity Identity) (*domain.User, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
	// ListInventory returns the user's owned skins, newest purchase first.
	ListInventory(ctx context.Context, userID int64) ([]domain.OwnedSkin, error)
	// PurchaseHistory returns the user's purchase records, newest first.
	PurchaseHistory(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

type service struct {
	users     repository.User
	inventory repository.Inventory
	ledger    repository.Ledger
}

// NewService creates a new user service
func NewService(users repository.User, inventory repository.Inventory, ledger repository.Ledger) Service {
	return &service{
		users:     users,
		inventory: inventory,
		ledger:    ledger,
	}
}

func (s *service) Register(ctx context.Context, identity Identity) (*domain.User, error) {
	log := logger.FromContext(ctx)

	stored, err := s.users.UpsertUser(ctx, domain.User{
		ID:        identity.ID,
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	})
	if err != nil {
		log.Error("Failed to upsert user", "error", err, "user_id", identity.ID)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("User registered", "user_id", stored.ID, "username", stored.Username)
	return &stored, nil
}

func (s *service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetUser(ctx, userID)
}

func (s *service) ListInventory(ctx context.Context, userID int64) ([]domain.OwnedSkin, error) {
	return s.inventory.ListOwned(ctx, userID)
}

func (s *service) PurchaseHistory(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.ledger.ListPurchases(ctx, userID)
}
