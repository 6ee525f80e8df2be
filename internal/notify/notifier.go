package notify

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Notifier delivers shop events to the operator. Implementations must not
// block the calling operation; delivery failures are logged, never returned
// to the buyer.
type Notifier interface {
	PurchaseCompleted(ctx context.Context, user domain.User, skins []domain.Skin, total decimal.Decimal, at time.Time)
	WithdrawalConfirmed(ctx context.Context, user domain.User, skin domain.Skin, at time.Time)
}

// Nop is a Notifier that discards all events. Used in tests and when no
// admin channel is configured.
type Nop struct{}

func (Nop) PurchaseCompleted(context.Context, domain.User, []domain.Skin, decimal.Decimal, time.Time) {
}

func (Nop) WithdrawalConfirmed(context.Context, domain.User, domain.Skin, time.Time) {}
