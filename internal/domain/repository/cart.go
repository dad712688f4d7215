package repository

import (
	"context"
	"time"

	"github.com/loopbakery/bakeshop/internal/domain/model"
)

// CartRepository describes persistence operations for cart lines.
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
	Add(ctx context.Context, userID, productID int64) error
	ChangeQuantity(ctx context.Context, userID, lineID int64, delta int) error
	Remove(ctx context.Context, userID, lineID int64) error
	Clear(ctx context.Context, userID int64) error
	// SweepAbandoned deletes up to limit cart lines created before cutoff and
	// returns the number of lines removed.
	SweepAbandoned(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}
