package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// StatsRepository implements the aggregate statistics repository for PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetSummary returns shop-wide counts and total purchase revenue
func (r *StatsRepository) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	var (
		summary domain.StatsSummary
		revenue string
	)
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM skins),
			(SELECT COUNT(*) FROM transactions WHERE kind = $1),
			(SELECT COALESCE(SUM(-amount), 0)::text FROM transactions WHERE kind = $1)`,
		domain.TransactionPurchase).
		Scan(&summary.TotalUsers, &summary.TotalSkins, &summary.TotalPurchases, &revenue)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	d, err := decimal.NewFromString(revenue)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	summary.TotalRevenue = d
	return &summary, nil
}

// GetRarityBreakdown aggregates the catalog by rarity tier
func (r *StatsRepository) GetRarityBreakdown(ctx context.Context) ([]domain.RarityStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rarity, COUNT(*), COALESCE(SUM(price), 0)::text
		FROM skins
		GROUP BY rarity
		ORDER BY ` + rarityOrderGrouped)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var stats []domain.RarityStat
	for rows.Next() {
		var (
			s     domain.RarityStat
			total string
		)
		if err := rows.Scan(&s.Rarity, &s.Count, &total); err != nil {
			return nil, domain.StorageError(err)
		}
		d, err := decimal.NewFromString(total)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		s.TotalValue = d
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(err)
	}
	return stats, nil
}

// GetTopUsers returns up to limit users ordered by balance descending
func (r *StatsRepository) GetTopUsers(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+` FROM users
		ORDER BY balance DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(err)
	}
	return users, nil
}

// GetBestSellers returns up to limit skins ordered by purchase count.
// Sales are counted from inventory rows, so withdrawn skins still count
// toward their lifetime total only while the ownership row exists.
func (r *StatsRepository) GetBestSellers(ctx context.Context, limit int) ([]domain.SkinSales, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.skin_id, s.name, s.rarity, s.price::text, COUNT(i.inventory_id)
		FROM skins s
		JOIN inventory i ON i.skin_id = s.skin_id
		GROUP BY s.skin_id, s.name, s.rarity, s.price
		ORDER BY COUNT(i.inventory_id) DESC, s.name
		LIMIT $1`, limit)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var sales []domain.SkinSales
	for rows.Next() {
		var (
			s     domain.SkinSales
			price string
		)
		if err := rows.Scan(&s.SkinID, &s.Name, &s.Rarity, &price, &s.Sales); err != nil {
			return nil, domain.StorageError(err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		s.Price = d
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(err)
	}
	return sales, nil
}

// rarityOrderGrouped mirrors rarityOrder for GROUP BY rarity queries where
// price is not a grouping column.
const rarityOrderGrouped = `
	CASE rarity
		WHEN 'Legendary' THEN 1
		WHEN 'Godly' THEN 2
		WHEN 'Ancient' THEN 3
		ELSE 4
	END`
