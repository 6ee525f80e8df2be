package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertUser inserts the user on first contact. An existing row keeps its
// balance and creation time; only the names are refreshed.
func (r *UserRepository) UpsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (user_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name
		RETURNING `+userColumns,
		user.ID, user.Username, user.FirstName, user.LastName)

	stored, err := scanUser(row)
	if err != nil {
		return domain.User{}, domain.StorageError(err)
	}
	return stored, nil
}

// GetUser returns the user or domain.ErrUserNotFound
func (r *UserRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.StorageError(err)
	}
	return &user, nil
}

// ListUsers returns all users, newest first
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
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

// SetBalance overwrites the user's balance (admin override path)
func (r *UserRepository) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET balance = $1::numeric WHERE user_id = $2`, balance.String(), userID)
	if err != nil {
		return domain.StorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
