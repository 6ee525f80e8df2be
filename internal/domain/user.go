package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered shop user. Users are created on first
// contact and never deleted.
type User struct {
	ID        int64           `json:"user_id" db:"user_id"`
	Username  string          `json:"username" db:"username"` // platform handle, may be empty
	FirstName string          `json:"first_name" db:"first_name"`
	LastName  string          `json:"last_name,omitempty" db:"last_name"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// DisplayName returns the friendliest available name for rendering.
func (u User) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.FirstName
}
