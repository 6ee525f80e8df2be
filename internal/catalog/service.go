package catalog

import (
	"context"
	"strings"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// Service defines the interface for catalog browsing
type Service interface {
	// ListAvailable returns in-stock skins ordered by rarity rank then price.
	ListAvailable(ctx context.Context) ([]domain.Skin, error)
	// Search filters available skins by a case-insensitive substring match on
	// name or description. An empty result is not an error.
	Search(ctx context.Context, term string) ([]domain.Skin, error)
	// GetSkin returns the skin regardless of stock, or domain.ErrItemNotFound.
	GetSkin(ctx context.Context, skinID int64) (*domain.Skin, error)
}

type service struct {
	catalog repository.Catalog
}

// NewService creates a new catalog service
func NewService(catalog repository.Catalog) Service {
	return &service{catalog: catalog}
}

func (s *service) ListAvailable(ctx context.Context) ([]domain.Skin, error) {
	return s.catalog.ListAvailable(ctx)
}

func (s *service) Search(ctx context.Context, term string) ([]domain.Skin, error) {
	log := logger.FromContext(ctx)

	term = strings.TrimSpace(term)
	if term == "" {
		return s.catalog.ListAvailable(ctx)
	}

	skins, err := s.catalog.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog searched", "term", term, "results", len(skins))
	return skins, nil
}

func (s *service) GetSkin(ctx context.Context, skinID int64) (*domain.Skin, error) {
	return s.catalog.GetSkin(ctx, skinID)
}
