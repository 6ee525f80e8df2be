package bot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

func TestFormatFriendlyError_KnownErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, MsgInsufficientFunds},
		{"wrapped insufficient funds", fmt.Errorf("%w: need 10, have 5", domain.ErrInsufficientFunds), MsgInsufficientFunds},
		{"item not found", domain.ErrItemNotFound, MsgItemNotFound},
		{"out of stock", domain.ErrOutOfStock, MsgOutOfStock},
		{"unavailable", domain.ErrItemUnavailable, MsgOutOfStock},
		{"already in cart", domain.ErrAlreadyInCart, MsgAlreadyInCart},
		{"already owned", domain.ErrDuplicateOwnership, MsgAlreadyOwned},
		{"empty cart", domain.ErrEmptyCart, MsgEmptyCart},
		{"not owned", domain.ErrNotOwned, MsgNotOwned},
		{"user not found", domain.ErrUserNotFound, MsgUserNotFound},
		{"invalid input", domain.ErrInvalidInput, MsgInvalidInput},
		{"storage", domain.StorageError(errors.New("pq: boom")), MsgGenericError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatFriendlyError(tc.err))
		})
	}
}

// Stock-changed names the offending skin so the user can fix the cart.
func TestFormatFriendlyError_StockChanged(t *testing.T) {
	err := &domain.StockChangedError{SkinID: 7, SkinName: "Dragon Blade"}

	got := formatFriendlyError(err)

	assert.Contains(t, got, "Dragon Blade")
}

// Unknown internals never leak to the user.
func TestFormatFriendlyError_UnknownError(t *testing.T) {
	got := formatFriendlyError(errors.New("pq: duplicate key value violates unique constraint"))

	assert.Equal(t, MsgGenericError, got)
	assert.NotContains(t, got, "pq:")
}
