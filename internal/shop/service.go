package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/metrics"
	"github.com/m1kellaa/SkinShopBot_Go/internal/notify"
	"github.com/m1kellaa/SkinShopBot_Go/internal/repository"
)

// Receipt is the result of a completed single-skin purchase
type Receipt struct {
	Skin    domain.Skin     `json:"skin"`
	Price   decimal.Decimal `json:"price"`
	Balance decimal.Decimal `json:"balance"` // balance after the debit
}

// CheckoutResult is the result of a cart checkout. Checkout is a best-effort
// batch: each item purchase is atomic on its own, but a failed item does not
// roll back the ones already applied.
type CheckoutResult struct {
	Purchased []domain.Skin   `json:"purchased"`
	Skipped   []domain.Skin   `json:"skipped"` // already owned
	Total     decimal.Decimal `json:"total"`   // amount actually charged
	Balance   decimal.Decimal `json:"balance"` // balance after the batch
}

// Service defines the interface for the purchase engine
type Service interface {
	// PurchaseOne buys a single skin atomically. Balance check, stock
	// decrement, ownership insert, debit and ledger append all happen in one
	// storage transaction; a failure at any step leaves no partial state.
	PurchaseOne(ctx context.Context, userID, skinID int64) (*Receipt, error)
	// CheckoutCart purchases every cart item. Aborts before any mutation on
	// an empty cart, insufficient funds for the live total, or an
	// out-of-stock item (StockChangedError). Skins already owned are skipped
	// silently. The cart is cleared once the batch has run, regardless of
	// per-item outcomes.
	CheckoutCart(ctx context.Context, userID int64) (*CheckoutResult, error)
}

type service struct {
	shop     repository.Shop
	carts    repository.Cart
	users    repository.User
	notifier notify.Notifier
}

// NewService creates a new shop service
func NewService(shop repository.Shop, carts repository.Cart, users repository.User, notifier notify.Notifier) Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &service{
		shop:     shop,
		carts:    carts,
		users:    users,
		notifier: notifier,
	}
}

func (s *service) PurchaseOne(ctx context.Context, userID, skinID int64) (*Receipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "user_id", userID, "skin_id", skinID)

	receipt, err := s.purchaseOne(ctx, userID, skinID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err == nil {
		s.notifier.PurchaseCompleted(ctx, *user, []domain.Skin{receipt.Skin}, receipt.Price, time.Now())
	}

	log.Info(LogMsgPurchaseCompleted, "user_id", userID, "skin", receipt.Skin.Name, "price", receipt.Price, "balance", receipt.Balance)
	return receipt, nil
}

// purchaseOne runs the atomic purchase sequence. User and skin state is read
// fresh under row locks inside the transaction; cached values from the
// catalog or cart view are never trusted here.
func (s *service) purchaseOne(ctx context.Context, userID, skinID int64) (*Receipt, error) {
	log := logger.FromContext(ctx)

	tx, err := s.shop.BeginPurchase(ctx)
	if err != nil {
		log.Error(ErrMsgBeginPurchaseFailed, "error", err)
		return nil, fmt.Errorf("failed to begin purchase: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	skin, err := tx.GetSkinForUpdate(ctx, skinID)
	if err != nil {
		return nil, err
	}

	// Funds before stock: a broke user hears about their balance even when
	// the skin also happens to be sold out.
	if user.Balance.LessThan(skin.Price) {
		return nil, fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientFunds, skin.Price, user.Balance)
	}
	if !skin.Available() {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutOfStock, skin.Name)
	}

	inserted, err := tx.InsertInventoryEntry(ctx, userID, skinID)
	if err != nil {
		log.Error("Failed to insert inventory entry", "error", err)
		return nil, fmt.Errorf("failed to record ownership: %w", err)
	}
	if !inserted {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateOwnership, skin.Name)
	}

	if err := tx.DecrementSkinQuantity(ctx, skinID); err != nil {
		return nil, err
	}
	if err := tx.DebitUserBalance(ctx, userID, skin.Price); err != nil {
		return nil, err
	}

	record := domain.Transaction{
		UserID:      userID,
		Amount:      skin.Price.Neg(),
		Kind:        domain.TransactionPurchase,
		Description: fmt.Sprintf("purchase: %s", skin.Name),
	}
	if err := tx.InsertTransaction(ctx, record); err != nil {
		log.Error("Failed to append purchase record", "error", err)
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ErrMsgCommitPurchaseFailed, "error", err)
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	metrics.PurchasesTotal.WithLabelValues(string(skin.Rarity)).Inc()

	return &Receipt{
		Skin:    *skin,
		Price:   skin.Price,
		Balance: user.Balance.Sub(skin.Price),
	}, nil
}

func (s *service) CheckoutCart(ctx context.Context, userID int64) (*CheckoutResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCheckoutCalled, "user_id", userID)

	items, err := s.carts.ListItems(ctx, userID)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}
	if len(items) == 0 {
		metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeEmptyCart).Inc()
		return nil, domain.ErrEmptyCart
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	// Totals come from the live catalog rows in the cart view, not from
	// whatever price the user saw when they added the item.
	total := domain.CartTotal(items)
	if user.Balance.LessThan(total) {
		metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeInsufficient).Inc()
		return nil, fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientFunds, total, user.Balance)
	}

	// A single stale item aborts the whole checkout before any mutation, so
	// the user can fix the cart and retry.
	for _, item := range items {
		if !item.Skin.Available() {
			metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeStockChanged).Inc()
			return nil, &domain.StockChangedError{SkinID: item.SkinID, SkinName: item.Skin.Name}
		}
	}

	result := &CheckoutResult{Total: decimal.Zero, Balance: user.Balance}
	for _, item := range items {
		receipt, err := s.purchaseOne(ctx, userID, item.SkinID)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateOwnership) {
				log.Info("Checkout skipped owned skin", "user_id", userID, "skin", item.Skin.Name)
				result.Skipped = append(result.Skipped, item.Skin)
				continue
			}
			// Applied items stay applied; the failed one is reported and the
			// batch moves on.
			log.Error("Checkout item failed", "error", err, "user_id", userID, "skin", item.Skin.Name)
			continue
		}
		result.Purchased = append(result.Purchased, receipt.Skin)
		result.Total = result.Total.Add(receipt.Price)
		result.Balance = receipt.Balance
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Error("Failed to clear cart after checkout", "error", err, "user_id", userID)
	}

	if len(result.Purchased) > 0 {
		s.notifier.PurchaseCompleted(ctx, *user, result.Purchased, result.Total, time.Now())
	}

	metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeCompleted).Inc()
	log.Info(LogMsgCheckoutCompleted, "user_id", userID, "purchased", len(result.Purchased), "skipped", len(result.Skipped), "total", result.Total)
	return result, nil
}
