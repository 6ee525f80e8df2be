package stats

import (
	"context"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// TopListLimit caps the top-balances and best-sellers lists
const TopListLimit = 5

// Service defines the interface for shop statistics
type Service interface {
	Summary(ctx context.Context) (*domain.StatsSummary, error)
	Detailed(ctx context.Context) (*domain.DetailedStats, error)
}

type service struct {
	stats repository.Stats
}

// NewService creates a new stats service
func NewService(stats repository.Stats) Service {
	return &service{stats: stats}
}

func (s *service) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	return s.stats.GetSummary(ctx)
}

func (s *service) Detailed(ctx context.Context) (*domain.DetailedStats, error) {
	summary, err := s.stats.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.stats.GetRarityBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	topUsers, err := s.stats.GetTopUsers(ctx, TopListLimit)
	if err != nil {
		return nil, err
	}

	bestSellers, err := s.stats.GetBestSellers(ctx, TopListLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DetailedStats{
		StatsSummary:    *summary,
		RarityBreakdown: breakdown,
		TopUsers:        topUsers,
		BestSellers:     bestSellers,
	}, nil
}
