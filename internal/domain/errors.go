package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgItemNotFound    = "skin not found"
	ErrMsgItemUnavailable = "skin is out of stock"

	// Cart errors
	ErrMsgAlreadyInCart = "skin is already in the cart"
	ErrMsgEmptyCart     = "cart is empty"

	// Purchase errors
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgOutOfStock         = "skin is out of stock"
	ErrMsgDuplicateOwnership = "skin is already owned"

	// Withdrawal errors
	ErrMsgNotOwned = "skin is not in the inventory"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgStorage = "storage failure"
)

// Common domain errors.
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrItemUnavailable = errors.New(ErrMsgItemUnavailable)

	ErrAlreadyInCart = errors.New(ErrMsgAlreadyInCart)
	ErrEmptyCart     = errors.New(ErrMsgEmptyCart)

	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrOutOfStock         = errors.New(ErrMsgOutOfStock)
	ErrDuplicateOwnership = errors.New(ErrMsgDuplicateOwnership)

	ErrNotOwned = errors.New(ErrMsgNotOwned)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrStorage wraps any underlying persistence error. Callers render it
	// as a generic failure message without leaking internals.
	ErrStorage = errors.New(ErrMsgStorage)
)

// StockChangedError aborts a cart checkout when a cart item ran out of
// stock between add-to-cart and checkout. It names the offending skin so
// the user can refresh the cart.
type StockChangedError struct {
	SkinID   int64
	SkinName string
}

func (e *StockChangedError) Error() string {
	return fmt.Sprintf("stock changed: %q is out of stock", e.SkinName)
}

// StorageError wraps err as a storage failure, preserving the original
// error for logging while matching errors.Is(err, ErrStorage).
func StorageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
