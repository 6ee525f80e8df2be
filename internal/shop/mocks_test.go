package shop

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// MockShopRepository implements repository.Shop for testing
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) BeginPurchase(ctx context.Context) (repository.PurchaseTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PurchaseTx), args.Error(1)
}

// MockPurchaseTx implements repository.PurchaseTx for testing
type MockPurchaseTx struct {
	mock.Mock
}

func (m *MockPurchaseTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPurchaseTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPurchaseTx) GetUserForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPurchaseTx) GetSkinForUpdate(ctx context.Context, skinID int64) (*domain.Skin, error) {
	args := m.Called(ctx, skinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skin), args.Error(1)
}

func (m *MockPurchaseTx) InsertInventoryEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	args := m.Called(ctx, userID, skinID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseTx) DecrementSkinQuantity(ctx context.Context, skinID int64) error {
	args := m.Called(ctx, skinID)
	return args.Error(0)
}

func (m *MockPurchaseTx) DebitUserBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockPurchaseTx) InsertTransaction(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

var _ repository.PurchaseTx = (*MockPurchaseTx)(nil)

// MockCartRepository implements repository.Cart for testing
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) AddEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	args := m.Called(ctx, userID, skinID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) RemoveEntry(ctx context.Context, userID, skinID int64) error {
	args := m.Called(ctx, userID, skinID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) ListItems(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Count(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
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

// recordingNotifier captures notifications for assertions
type recordingNotifier struct {
	purchases   [][]domain.Skin
	withdrawals []domain.Skin
}

func (n *recordingNotifier) PurchaseCompleted(_ context.Context, _ domain.User, skins []domain.Skin, _ decimal.Decimal, _ time.Time) {
	n.purchases = append(n.purchases, skins)
}

func (n *recordingNotifier) WithdrawalConfirmed(_ context.Context, _ domain.User, skin domain.Skin, _ time.Time) {
	n.withdrawals = append(n.withdrawals, skin)
}
