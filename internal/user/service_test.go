package user

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

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

// MockInventoryRepository implements repository.Inventory for testing
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) ListOwned(ctx context.Context, userID int64) ([]domain.OwnedSkin, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedSkin), args.Error(1)
}

func (m *MockInventoryRepository) HasEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	args := m.Called(ctx, userID, skinID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) DeleteEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	args := m.Called(ctx, userID, skinID)
	return args.Bool(0), args.Error(1)
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

// CASE 1: BEST CASE - first contact creates the user
func TestRegister_NewUser(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	stored := domain.User{ID: 100, Username: "buyer", FirstName: "Alex", Balance: decimal.Zero}
	mockUsers.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.ID == 100 && u.Username == "buyer"
	})).Return(stored, nil).Once()

	svc := NewService(mockUsers, new(MockInventoryRepository), new(MockLedgerRepository))

	user, err := svc.Register(ctx, Identity{ID: 100, Username: "buyer", FirstName: "Alex"})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(100), user.ID)
	assert.True(t, user.Balance.IsZero(), "a new user starts with nothing")
	mockUsers.AssertExpectations(t)
}

// CASE 3: EDGE CASE - repeat contact keeps the stored balance
func TestRegister_ExistingUserKeepsBalance(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	stored := domain.User{ID: 100, Username: "buyer", Balance: decimal.RequireFromString("42.00")}
	mockUsers.On("UpsertUser", mock.Anything, mock.Anything).Return(stored, nil).Once()

	svc := NewService(mockUsers, new(MockInventoryRepository), new(MockLedgerRepository))

	user, err := svc.Register(ctx, Identity{ID: 100, Username: "buyer"})

	require.NoError(t, err)
	assert.True(t, user.Balance.Equal(decimal.RequireFromString("42.00")))
}

// CASE 5: REPOSITORY ERROR - the upsert fails
func TestRegister_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	mockUsers.On("UpsertUser", mock.Anything, mock.Anything).Return(domain.User{}, errors.New("connection lost")).Once()

	svc := NewService(mockUsers, new(MockInventoryRepository), new(MockLedgerRepository))

	user, err := svc.Register(ctx, Identity{ID: 100})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register user")
	assert.Nil(t, user)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetUser", mock.Anything, int64(999)).Return(nil, domain.ErrUserNotFound).Once()

	svc := NewService(mockUsers, new(MockInventoryRepository), new(MockLedgerRepository))

	user, err := svc.Get(ctx, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestListInventory_Empty(t *testing.T) {
	ctx := context.Background()
	mockInventory := new(MockInventoryRepository)

	mockInventory.On("ListOwned", mock.Anything, int64(100)).Return([]domain.OwnedSkin{}, nil).Once()

	svc := NewService(new(MockUserRepository), mockInventory, new(MockLedgerRepository))

	owned, err := svc.ListInventory(ctx, 100)

	require.NoError(t, err, "an empty inventory is a valid result")
	assert.Empty(t, owned)
}

func TestPurchaseHistory(t *testing.T) {
	ctx := context.Background()
	mockLedger := new(MockLedgerRepository)

	records := []domain.Transaction{
		{UserID: 100, Kind: domain.TransactionPurchase, Amount: decimal.RequireFromString("-12.50")},
	}
	mockLedger.On("ListPurchases", mock.Anything, int64(100)).Return(records, nil).Once()

	svc := NewService(new(MockUserRepository), new(MockInventoryRepository), mockLedger)

	history, err := svc.PurchaseHistory(ctx, 100)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Amount.IsNegative(), "purchases carry the negative price")
}
