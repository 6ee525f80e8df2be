package domain

import "time"

// InventoryEntry records ownership of a skin by a user. Entries are created
// atomically with a successful purchase and removed only by the withdrawal
// workflow. A (user, skin) pair is unique: repeat purchases of the same skin
// are rejected.
type InventoryEntry struct {
	ID          int64     `json:"inventory_id" db:"inventory_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	SkinID      int64     `json:"skin_id" db:"skin_id"`
	PurchasedAt time.Time `json:"purchased_at" db:"purchased_at"`
}

// OwnedSkin is an inventory entry joined with the live catalog data of the
// skin it refers to.
type OwnedSkin struct {
	InventoryEntry
	Skin Skin `json:"skin"`
}
