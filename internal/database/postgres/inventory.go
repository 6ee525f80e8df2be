package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListOwned returns inventory entries joined with live skin data, newest first.
// Entries whose skin was removed from the catalog are not returned.
func (r *InventoryRepository) ListOwned(ctx context.Context, userID int64) ([]domain.OwnedSkin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.inventory_id, i.user_id, i.skin_id, i.purchased_at,
		       s.skin_id, s.name, s.description, s.price::text, s.rarity, s.external_ref, s.image_url, s.quantity, s.created_at
		FROM inventory i
		JOIN skins s ON i.skin_id = s.skin_id
		WHERE i.user_id = $1
		ORDER BY i.purchased_at DESC`, userID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var owned []domain.OwnedSkin
	for rows.Next() {
		var (
			o     domain.OwnedSkin
			price string
		)
		err := rows.Scan(
			&o.ID, &o.UserID, &o.SkinID, &o.PurchasedAt,
			&o.Skin.ID, &o.Skin.Name, &o.Skin.Description, &price, &o.Skin.Rarity,
			&o.Skin.ExternalRef, &o.Skin.ImageURL, &o.Skin.Quantity, &o.Skin.CreatedAt,
		)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		o.Skin.Price = d
		owned = append(owned, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(err)
	}
	return owned, nil
}

// HasEntry reports whether the user owns the skin
func (r *InventoryRepository) HasEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM inventory WHERE user_id = $1 AND skin_id = $2)`,
		userID, skinID).Scan(&exists)
	if err != nil {
		return false, domain.StorageError(err)
	}
	return exists, nil
}

// DeleteEntry removes the ownership row; returns false when no row existed
func (r *InventoryRepository) DeleteEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE user_id = $1 AND skin_id = $2`, userID, skinID)
	if err != nil {
		return false, domain.StorageError(err)
	}
	return tag.RowsAffected() > 0, nil
}
