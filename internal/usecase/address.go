package usecase

import (
	"context"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

// AddressUseCase manages delivery addresses.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

func (u *AddressUseCase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}

func (u *AddressUseCase) Create(ctx context.Context, a model.Address) (*model.Address, error) {
	if a.Street == "" || a.City == "" || a.State == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.addresses.Create(ctx, &a)
}

func (u *AddressUseCase) Update(ctx context.Context, a model.Address) (*model.Address, error) {
	if a.Street == "" || a.City == "" || a.State == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.addresses.Update(ctx, &a)
}

func (u *AddressUseCase) Delete(ctx context.Context, userID, addressID int64) error {
	return u.addresses.Delete(ctx, userID, addressID)
}
