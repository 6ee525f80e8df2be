package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// rarityOrder sorts Legendary before Godly before Ancient; anything else
// (unranked) sorts last. Ties break on ascending price.
const rarityOrder = `
	CASE rarity
		WHEN 'Legendary' THEN 1
		WHEN 'Godly' THEN 2
		WHEN 'Ancient' THEN 3
		ELSE 4
	END,
	price ASC`

// CatalogRepository implements the skin catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListAvailable returns in-stock skins in catalog order
func (r *CatalogRepository) ListAvailable(ctx context.Context) ([]domain.Skin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+skinColumns+` FROM skins
		WHERE quantity > 0
		ORDER BY `+rarityOrder)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	skins, err := scanSkins(rows)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return skins, nil
}

// Search returns in-stock skins matching the term in name or description
func (r *CatalogRepository) Search(ctx context.Context, term string) ([]domain.Skin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+skinColumns+` FROM skins
		WHERE quantity > 0
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY `+rarityOrder, term)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	skins, err := scanSkins(rows)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return skins, nil
}

// GetSkin returns the skin or domain.ErrItemNotFound
func (r *CatalogRepository) GetSkin(ctx context.Context, skinID int64) (*domain.Skin, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skinColumns+` FROM skins WHERE skin_id = $1`, skinID)

	skin, err := scanSkin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.StorageError(err)
	}
	return &skin, nil
}

// InsertSkin creates a new catalog entry and returns the stored row
func (r *CatalogRepository) InsertSkin(ctx context.Context, skin domain.Skin) (domain.Skin, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO skins (name, description, price, rarity, external_ref, image_url, quantity)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
		RETURNING `+skinColumns,
		skin.Name, skin.Description, skin.Price.String(), skin.Rarity, skin.ExternalRef, skin.ImageURL, skin.Quantity)

	stored, err := scanSkin(row)
	if err != nil {
		return domain.Skin{}, domain.StorageError(err)
	}
	return stored, nil
}

// DeleteSkin hard-deletes the catalog entry
func (r *CatalogRepository) DeleteSkin(ctx context.Context, skinID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skins WHERE skin_id = $1`, skinID)
	if err != nil {
		return domain.StorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
