package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rarity is an ordinal classification of skins used for catalog ordering
// and display. It carries no pricing rules.
type Rarity string

const (
	RarityLegendary Rarity = "Legendary"
	RarityGodly     Rarity = "Godly"
	RarityAncient   Rarity = "Ancient"
	RarityCommon    Rarity = "Common" // default for unranked skins
)

// RankedRarities are the values an admin may assign when creating a skin.
var RankedRarities = []Rarity{RarityLegendary, RarityGodly, RarityAncient}

// Rank returns the catalog sort rank. Lower ranks sort first; anything
// outside the three ranked tiers sorts last.
func (r Rarity) Rank() int {
	switch r {
	case RarityLegendary:
		return 1
	case RarityGodly:
		return 2
	case RarityAncient:
		return 3
	default:
		return 4
	}
}

// IsRanked reports whether the rarity is one of the admin-assignable tiers.
func (r Rarity) IsRanked() bool {
	switch r {
	case RarityLegendary, RarityGodly, RarityAncient:
		return true
	}
	return false
}

// Skin is a catalog entry representing a purchasable virtual good with
// finite stock. Quantity is decremented on purchase and never restored
// once an item is withdrawn.
type Skin struct {
	ID          int64           `json:"skin_id" db:"skin_id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Rarity      Rarity          `json:"rarity" db:"rarity"`
	ExternalRef string          `json:"external_ref,omitempty" db:"external_ref"` // in-game item id
	ImageURL    string          `json:"image_url,omitempty" db:"image_url"`
	Quantity    int             `json:"quantity" db:"quantity"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// Available reports whether the skin can currently be purchased.
func (s Skin) Available() bool {
	return s.Quantity > 0
}
