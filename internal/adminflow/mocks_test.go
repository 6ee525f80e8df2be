package adminflow

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// MockCatalogRepository implements repository.Catalog for testing
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListAvailable(ctx context.Context) ([]domain.Skin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skin), args.Error(1)
}

func (m *MockCatalogRepository) Search(ctx context.Context, term string) ([]domain.Skin, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skin), args.Error(1)
}

func (m *MockCatalogRepository) GetSkin(ctx context.Context, skinID int64) (*domain.Skin, error) {
	args := m.Called(ctx, skinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skin), args.Error(1)
}

func (m *MockCatalogRepository) InsertSkin(ctx context.Context, skin domain.Skin) (domain.Skin, error) {
	args := m.Called(ctx, skin)
	return args.Get(0).(domain.Skin), args.Error(1)
}

func (m *MockCatalogRepository) DeleteSkin(ctx context.Context, skinID int64) error {
	args := m.Called(ctx, skinID)
	return args.Error(0)
}

// MockUserRepository implements repository.User for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	args := m.Called(ctx, userID, balance)
	return args.Error(0)
}

// MockLedgerRepository implements repository.Ledger for testing
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) InsertTransaction(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListPurchases(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
