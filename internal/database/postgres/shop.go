package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// ShopRepository implements the purchase repository for PostgreSQL
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// BeginPurchase starts a transaction scoped to a single purchase
func (r *ShopRepository) BeginPurchase(ctx context.Context) (repository.PurchaseTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return &purchaseTx{tx: tx}, nil
}

type purchaseTx struct {
	tx pgx.Tx
}

func (t *purchaseTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *purchaseTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetUserForUpdate locks the user row for the rest of the transaction
func (t *purchaseTx) GetUserForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.StorageError(err)
	}
	return &user, nil
}

// GetSkinForUpdate locks the skin row for the rest of the transaction
func (t *purchaseTx) GetSkinForUpdate(ctx context.Context, skinID int64) (*domain.Skin, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+skinColumns+` FROM skins WHERE skin_id = $1 FOR UPDATE`, skinID)

	skin, err := scanSkin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.StorageError(err)
	}
	return &skin, nil
}

// InsertInventoryEntry creates the ownership row; returns false when the
// unique (user, skin) constraint suppressed the insert
func (t *purchaseTx) InsertInventoryEntry(ctx context.Context, userID, skinID int64) (bool, error) {
	tag, err := t.tx.Exec(ctx, `
		INSERT INTO inventory (user_id, skin_id) VALUES ($1, $2)
		ON CONFLICT (user_id, skin_id) DO NOTHING`,
		userID, skinID)
	if err != nil {
		return false, domain.StorageError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// DecrementSkinQuantity takes one unit of stock. The quantity guard is kept
// in SQL so a concurrent purchase can never push stock below zero.
func (t *purchaseTx) DecrementSkinQuantity(ctx context.Context, skinID int64) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE skins SET quantity = quantity - 1
		WHERE skin_id = $1 AND quantity > 0`, skinID)
	if err != nil {
		return domain.StorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOutOfStock
	}
	return nil
}

// DebitUserBalance subtracts the price. The balance guard is kept in SQL so
// the balance can never go negative.
func (t *purchaseTx) DebitUserBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET balance = balance - $1::numeric
		WHERE user_id = $2 AND balance >= $1::numeric`, amount.String(), userID)
	if err != nil {
		return domain.StorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// InsertTransaction appends the purchase record inside the transaction
func (t *purchaseTx) InsertTransaction(ctx context.Context, txRecord domain.Transaction) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO transactions (user_id, amount, kind, description)
		VALUES ($1, $2::numeric, $3, $4)`,
		txRecord.UserID, txRecord.Amount.String(), txRecord.Kind, txRecord.Description)
	if err != nil {
		return domain.StorageError(err)
	}
	return nil
}
