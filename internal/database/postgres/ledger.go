package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// LedgerRepository implements the transaction log repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// InsertTransaction appends a record to the audit log
func (r *LedgerRepository) InsertTransaction(ctx context.Context, tx domain.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (user_id, amount, kind, description)
		VALUES ($1, $2::numeric, $3, $4)`,
		tx.UserID, tx.Amount.String(), tx.Kind, tx.Description)
	if err != nil {
		return domain.StorageError(err)
	}
	return nil
}

// ListPurchases returns the user's purchase records, newest first
func (r *LedgerRepository) ListPurchases(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT transaction_id, user_id, amount::text, kind, description, created_at
		FROM transactions
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC`, userID, domain.TransactionPurchase)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			t      domain.Transaction
			amount string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &amount, &t.Kind, &t.Description, &t.CreatedAt); err != nil {
			return nil, domain.StorageError(err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		t.Amount = d
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(err)
	}
	return txs, nil
}
