package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies ledger records.
type TransactionKind string

const (
	TransactionPurchase        TransactionKind = "purchase"
	TransactionAdminAdjustment TransactionKind = "admin_adjustment"
	TransactionDeposit         TransactionKind = "deposit"
)

// Transaction is an append-only audit record of a balance movement. Records
// are never mutated or deleted.
//
// Purchases carry the negative price. Admin adjustments carry the balance
// value that was set, not the delta; the audit log marks the snapshot the
// admin chose rather than the difference from the previous balance.
type Transaction struct {
	ID          int64           `json:"transaction_id" db:"transaction_id"`
	UserID      int64           `json:"user_id" db:"user_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Kind        TransactionKind `json:"kind" db:"kind"`
	Description string          `json:"description" db:"description"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
