package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Numeric columns are selected as ::text and parsed into decimal.Decimal,
// so money never passes through binary floats.

const skinColumns = `skin_id, name, description, price::text, rarity, external_ref, image_url, quantity, created_at`

const userColumns = `user_id, username, first_name, last_name, balance::text, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSkin(row rowScanner) (domain.Skin, error) {
	var (
		s     domain.Skin
		price string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &price, &s.Rarity, &s.ExternalRef, &s.ImageURL, &s.Quantity, &s.CreatedAt); err != nil {
		return domain.Skin{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return domain.Skin{}, err
	}
	s.Price = d
	return s, nil
}

func scanSkins(rows pgx.Rows) ([]domain.Skin, error) {
	defer rows.Close()

	var skins []domain.Skin
	for rows.Next() {
		s, err := scanSkin(rows)
		if err != nil {
			return nil, err
		}
		skins = append(skins, s)
	}
	return skins, rows.Err()
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u       domain.User
		balance string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &balance, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	d, err := decimal.NewFromString(balance)
	if err != nil {
		return domain.User{}, err
	}
	u.Balance = d
	return u, nil
}
