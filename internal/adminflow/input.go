package adminflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Free-form admin input is pipe-delimited. The formats mirror the prompts
// the admin menu shows.

// ParseSkinInput parses "name|description|price|rarity|external_ref|image_url|quantity".
// Trailing fields may be omitted; quantity defaults to 1.
func ParseSkinInput(text string) (SkinInput, error) {
	fields := strings.Split(text, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 4 {
		return SkinInput{}, fmt.Errorf("%w: expected name|description|price|rarity", domain.ErrInvalidInput)
	}

	price, err := decimal.NewFromString(fields[2])
	if err != nil {
		return SkinInput{}, fmt.Errorf("%w: bad price %q", domain.ErrInvalidInput, fields[2])
	}

	input := SkinInput{
		Name:        fields[0],
		Description: fields[1],
		Price:       price,
		Rarity:      domain.Rarity(fields[3]),
		Quantity:    1,
	}
	if len(fields) > 4 {
		input.ExternalRef = fields[4]
	}
	if len(fields) > 5 {
		input.ImageURL = fields[5]
	}
	if len(fields) > 6 && fields[6] != "" {
		qty, err := strconv.Atoi(fields[6])
		if err != nil {
			return SkinInput{}, fmt.Errorf("%w: bad quantity %q", domain.ErrInvalidInput, fields[6])
		}
		input.Quantity = qty
	}
	return input, nil
}

// ParseBalanceEdit parses "user_id|amount"
func ParseBalanceEdit(text string) (userID int64, balance decimal.Decimal, err error) {
	fields := strings.SplitN(text, "|", 2)
	if len(fields) != 2 {
		return 0, decimal.Zero, fmt.Errorf("%w: expected user_id|amount", domain.ErrInvalidInput)
	}

	userID, err = strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: bad user id %q", domain.ErrInvalidInput, fields[0])
	}

	balance, err = decimal.NewFromString(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: bad amount %q", domain.ErrInvalidInput, fields[1])
	}
	return userID, balance, nil
}

// ParseSkinID parses a bare numeric skin id
func ParseSkinID(text string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad skin id %q", domain.ErrInvalidInput, text)
	}
	return id, nil
}
