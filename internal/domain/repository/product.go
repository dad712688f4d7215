package repository

import (
	"context"

	"github.com/loopbakery/bakeshop/internal/domain/model"
)

// ProductRepository describes catalog persistence operations.
type ProductRepository interface {
	ListAvailable(ctx context.Context) ([]model.Product, error)
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Product, error)
	ListByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)

	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, productID int64) error
}
