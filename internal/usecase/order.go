package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

// newOrderNumber generates a human-readable order number. Uniqueness is
// best-effort: millisecond timestamp plus a random suffix.
var newOrderNumber = func() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// OrderUseCase encapsulates checkout and order retrieval.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place converts the caller's cart snapshot into a durable order. A draft
// without line items is rejected before any transaction is opened.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	if len(draft.Items) == 0 {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.Place(ctx, userID, newOrderNumber(), draft)
}

// ListByUser returns the caller's orders, newest first, with line items.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetByID returns one order owned by the caller.
func (u *OrderUseCase) GetByID(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, userID, orderID)
}
