package usecase

import (
	"context"
	"time"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

// CartUseCase manages a user's pre-checkout selection.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

func (u *CartUseCase) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.ListByUser(ctx, userID)
}

// Add puts a product into the cart and returns the refreshed cart.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	if productID == 0 {
		return nil, domainErrors.ErrValidation
	}
	if err := u.carts.Add(ctx, userID, productID); err != nil {
		return nil, err
	}
	return u.carts.ListByUser(ctx, userID)
}

// ChangeQuantity increments or decrements a cart line and returns the
// refreshed cart.
func (u *CartUseCase) ChangeQuantity(ctx context.Context, userID, lineID int64, delta int) ([]model.CartLine, error) {
	if delta != 1 && delta != -1 {
		return nil, domainErrors.ErrValidation
	}
	if err := u.carts.ChangeQuantity(ctx, userID, lineID, delta); err != nil {
		return nil, err
	}
	return u.carts.ListByUser(ctx, userID)
}

// Remove deletes a cart line and returns the refreshed cart.
func (u *CartUseCase) Remove(ctx context.Context, userID, lineID int64) ([]model.CartLine, error) {
	if err := u.carts.Remove(ctx, userID, lineID); err != nil {
		return nil, err
	}
	return u.carts.ListByUser(ctx, userID)
}

func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}

// SweepAbandoned removes stale cart lines in one batch.
func (u *CartUseCase) SweepAbandoned(ctx context.Context, maxAge time.Duration, limit int) (int64, error) {
	return u.carts.SweepAbandoned(ctx, time.Now().Add(-maxAge), limit)
}
