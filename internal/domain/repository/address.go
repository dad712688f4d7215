package repository

import (
	"context"

	"github.com/loopbakery/bakeshop/internal/domain/model"
)

// AddressRepository describes persistence operations for delivery addresses.
type AddressRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	Create(ctx context.Context, a *model.Address) (*model.Address, error)
	Update(ctx context.Context, a *model.Address) (*model.Address, error)
	Delete(ctx context.Context, userID, addressID int64) error
}
