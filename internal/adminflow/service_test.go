package adminflow

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

func validSkinInput() SkinInput {
	return SkinInput{
		Name:     "Dragon Blade",
		Price:    decimal.RequireFromString("12.50"),
		Rarity:   domain.RarityLegendary,
		Quantity: 3,
	}
}

// =============================================================================
// AddSkin — 5-Case Testing Model
// =============================================================================

// CASE 1: BEST CASE - valid input, skin lands in the catalog
func TestAddSkin_Success(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockCatalogRepository)

	input := validSkinInput()
	stored := domain.Skin{ID: 42, Name: input.Name, Price: input.Price, Rarity: input.Rarity, Quantity: input.Quantity}
	mockCatalog.On("InsertSkin", mock.Anything, mock.MatchedBy(func(s domain.Skin) bool {
		return s.Name == "Dragon Blade" && s.Quantity == 3
	})).Return(stored, nil).Once()

	svc := NewService(mockCatalog, new(MockUserRepository), new(MockLedgerRepository))

	skin, err := svc.AddSkin(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, skin)
	assert.Equal(t, int64(42), skin.ID)
	mockCatalog.AssertExpectations(t)
}

// CASE 4: INVALID INPUT - missing name
func TestAddSkin_MissingName(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockCatalogRepository)

	input := validSkinInput()
	input.Name = ""

	svc := NewService(mockCatalog, new(MockUserRepository), new(MockLedgerRepository))

	skin, err := svc.AddSkin(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, skin)
	mockCatalog.AssertNotCalled(t, "InsertSkin", mock.Anything, mock.Anything)
}

// CASE 4: INVALID INPUT - rarity outside the ranked tiers
func TestAddSkin_UnrankedRarity(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockCatalogRepository)

	input := validSkinInput()
	input.Rarity = domain.RarityCommon

	svc := NewService(mockCatalog, new(MockUserRepository), new(MockLedgerRepository))

	_, err := svc.AddSkin(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// CASE 4: INVALID INPUT - price must be strictly positive
func TestAddSkin_NonPositivePrice(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockCatalogRepository)

	svc := NewService(mockCatalog, new(MockUserRepository), new(MockLedgerRepository))

	for _, price := range []string{"0", "-1.00"} {
		input := validSkinInput()
		input.Price = decimal.RequireFromString(price)

		_, err := svc.AddSkin(ctx, input)

		require.Error(t, err, "price %s should be rejected", price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// CASE 3: EDGE CASE - zero quantity is a valid pre-listing
func TestAddSkin_ZeroQuantity(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockCatalogRepository)

	input := validSkinInput()
	input.Quantity = 0
	stored := domain.Skin{ID: 43, Name: input.Name, Price: input.Price, Rarity: input.Rarity}
	mockCatalog.On("InsertSkin", mock.Anything, mock.Anything).Return(stored, nil).Once()

	svc := NewService(mockCatalog, new(MockUserRepository), new(MockLedgerRepository))

	skin, err := svc.AddSkin(ctx, input)

	require.NoError(t, err, "zero stock is allowed at creation")
	assert.False(t, skin.Available())
}

// =============================================================================
// SetBalance
// =============================================================================

// CASE 1: BEST CASE - balance overwritten, adjustment recorded with the
// absolute value
func TestSetBalance_Success(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockLedger := new(MockLedgerRepository)

	balance := decimal.RequireFromString("750.00")
	updated := &domain.User{ID: 100, Balance: balance}

	mockUsers.On("SetBalance", mock.Anything, int64(100), balance).Return(nil).Once()
	mockLedger.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.UserID == 100 &&
			tx.Kind == domain.TransactionAdminAdjustment &&
			tx.Amount.Equal(balance)
	})).Return(nil).Once()
	mockUsers.On("GetUser", mock.Anything, int64(100)).Return(updated, nil).Once()

	svc := NewService(new(MockCatalogRepository), mockUsers, mockLedger)

	user, err := svc.SetBalance(ctx, 100, balance)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Balance.Equal(balance))
	mockUsers.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}

// CASE 3: EDGE CASE - the override accepts any value, negative included
func TestSetBalance_NegativeAllowed(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockLedger := new(MockLedgerRepository)

	balance := decimal.RequireFromString("-5.00")

	mockUsers.On("SetBalance", mock.Anything, int64(100), balance).Return(nil).Once()
	mockLedger.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.Amount.Equal(balance)
	})).Return(nil).Once()
	mockUsers.On("GetUser", mock.Anything, int64(100)).Return(&domain.User{ID: 100, Balance: balance}, nil).Once()

	svc := NewService(new(MockCatalogRepository), mockUsers, mockLedger)

	user, err := svc.SetBalance(ctx, 100, balance)

	require.NoError(t, err, "the operator override bypasses balance invariants")
	assert.True(t, user.Balance.Equal(balance))
	mockUsers.AssertExpectations(t)
}

// CASE 3: EDGE CASE - setting the balance to zero is a valid override
func TestSetBalance_Zero(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockLedger := new(MockLedgerRepository)

	mockUsers.On("SetBalance", mock.Anything, int64(100), decimal.Zero).Return(nil).Once()
	mockLedger.On("InsertTransaction", mock.Anything, mock.Anything).Return(nil).Once()
	mockUsers.On("GetUser", mock.Anything, int64(100)).Return(&domain.User{ID: 100}, nil).Once()

	svc := NewService(new(MockCatalogRepository), mockUsers, mockLedger)

	user, err := svc.SetBalance(ctx, 100, decimal.Zero)

	require.NoError(t, err)
	assert.True(t, user.Balance.IsZero())
}

// CASE 2: WORST CASE - unknown user
func TestSetBalance_UserNotFound(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	mockUsers.On("SetBalance", mock.Anything, int64(999), mock.Anything).Return(domain.ErrUserNotFound).Once()

	svc := NewService(new(MockCatalogRepository), mockUsers, new(MockLedgerRepository))

	user, err := svc.SetBalance(ctx, 999, decimal.RequireFromString("10"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}

// =============================================================================
// DeleteSkin
// =============================================================================

func TestDeleteSkin_NotFound(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockCatalogRepository)

	mockCatalog.On("DeleteSkin", mock.Anything, int64(999)).Return(domain.ErrItemNotFound).Once()

	svc := NewService(mockCatalog, new(MockUserRepository), new(MockLedgerRepository))

	err := svc.DeleteSkin(ctx, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
