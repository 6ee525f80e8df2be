package repository

import (
	"context"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Stats defines the interface for shop-wide aggregate queries
type Stats interface {
	GetSummary(ctx context.Context) (*domain.StatsSummary, error)
	GetRarityBreakdown(ctx context.Context) ([]domain.RarityStat, error)
	// GetTopUsers returns up to limit users ordered by balance descending.
	GetTopUsers(ctx context.Context, limit int) ([]domain.User, error)
	// GetBestSellers returns up to limit skins ordered by purchase count.
	GetBestSellers(ctx context.Context, limit int) ([]domain.SkinSales, error)
}
