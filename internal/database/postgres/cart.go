package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// CartRepository implements the cart repository for PostgreSQL
type CartRepository struct {
	db *pgxpool.Pool
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// AddEntry inserts a (user, skin) pair; returns false when it already exists
func (r *CartRepository) AddEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO cart (user_id, skin_id) VALUES ($1, $2)
		ON CONFLICT (user_id, skin_id) DO NOTHING`,
		userID, skinID)
	if err != nil {
		return false, domain.StorageError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveEntry deletes the pair if present. Idempotent.
func (r *CartRepository) RemoveEntry(ctx context.Context, userID, skinID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id = $1 AND skin_id = $2`, userID, skinID)
	if err != nil {
		return domain.StorageError(err)
	}
	return nil
}

// Clear removes every cart entry for the user
func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id = $1`, userID)
	if err != nil {
		return domain.StorageError(err)
	}
	return nil
}

// ListItems returns cart entries joined with live skin data
func (r *CartRepository) ListItems(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.cart_id, c.user_id, c.skin_id, c.added_at,
		       s.skin_id, s.name, s.description, s.price::text, s.rarity, s.external_ref, s.image_url, s.quantity, s.created_at
		FROM cart c
		JOIN skins s ON c.skin_id = s.skin_id
		WHERE c.user_id = $1
		ORDER BY c.added_at`, userID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var (
			it    domain.CartItem
			price string
		)
		err := rows.Scan(
			&it.ID, &it.UserID, &it.SkinID, &it.AddedAt,
			&it.Skin.ID, &it.Skin.Name, &it.Skin.Description, &price, &it.Skin.Rarity,
			&it.Skin.ExternalRef, &it.Skin.ImageURL, &it.Skin.Quantity, &it.Skin.CreatedAt,
		)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		it.Skin.Price = d
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(err)
	}
	return items, nil
}

// Count returns the number of cart entries for the user
func (r *CartRepository) Count(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cart WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, domain.StorageError(err)
	}
	return count, nil
}
