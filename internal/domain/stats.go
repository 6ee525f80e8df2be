package domain

import "github.com/shopspring/decimal"

// StatsSummary is the basic shop-wide aggregate view.
type StatsSummary struct {
	TotalUsers     int             `json:"total_users"`
	TotalSkins     int             `json:"total_skins"`
	TotalPurchases int             `json:"total_purchases"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"` // absolute sum of negative transaction amounts
}

// RarityStat aggregates catalog entries by rarity tier.
type RarityStat struct {
	Rarity     Rarity          `json:"rarity"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// SkinSales pairs a skin with the number of times it was purchased.
type SkinSales struct {
	SkinID int64           `json:"skin_id"`
	Name   string          `json:"name"`
	Rarity Rarity          `json:"rarity"`
	Price  decimal.Decimal `json:"price"`
	Sales  int             `json:"sales"`
}

// DetailedStats extends the summary with breakdowns for the admin panel.
type DetailedStats struct {
	StatsSummary
	RarityBreakdown []RarityStat `json:"rarity_breakdown"`
	TopUsers        []User       `json:"top_users"`
	BestSellers     []SkinSales  `json:"best_sellers"`
}
