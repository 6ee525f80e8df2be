package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartEntry is a user's transient pre-purchase selection of a skin. Adding
// to the cart does not reserve stock. A (user, skin) pair appears at most
// once.
type CartEntry struct {
	ID      int64     `json:"cart_id" db:"cart_id"`
	UserID  int64     `json:"user_id" db:"user_id"`
	SkinID  int64     `json:"skin_id" db:"skin_id"`
	AddedAt time.Time `json:"added_at" db:"added_at"`
}

// CartItem is a cart entry joined with the live catalog data of its skin.
// Price and availability reflect the catalog at read time, not a snapshot
// taken when the entry was added.
type CartItem struct {
	CartEntry
	Skin Skin `json:"skin"`
}

// CartTotal sums the live prices of the given cart items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Skin.Price)
	}
	return total
}
