package usecase

import (
	"context"
	"regexp"
	"strings"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

const (
	maxTitleLen    = 255
	maxImageURLLen = 500
	maxDescLen     = 1000
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a product title.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// CatalogUseCase serves the public catalog and admin product management.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

func (u *CatalogUseCase) Products(ctx context.Context) ([]model.Product, error) {
	return u.products.ListAvailable(ctx)
}

func (u *CatalogUseCase) Product(ctx context.Context, idOrSlug string) (*model.Product, error) {
	return u.products.GetByIDOrSlug(ctx, idOrSlug)
}

func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.products.ListCategories(ctx)
}

func (u *CatalogUseCase) ProductsByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error) {
	return u.products.ListByCategory(ctx, idOrSlug)
}

// ProductInput is the admin product create/update payload.
type ProductInput struct {
	CategoryID      int64
	Title           string
	Description     string
	Price           float64
	OfferPercentage float64
	Stock           int
	ImageURL        string
	IsAvailable     bool
}

func (in ProductInput) validate() error {
	if in.Title == "" || in.Price <= 0 || in.CategoryID == 0 {
		return domainErrors.ErrValidation
	}
	if len(in.Title) > maxTitleLen || len(in.ImageURL) > maxImageURLLen || len(in.Description) > maxDescLen {
		return domainErrors.ErrValidation
	}
	return nil
}

// CreateProduct validates the payload, derives the slug and stores the
// product.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, &model.Product{
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		Slug:            Slugify(in.Title),
		Description:     in.Description,
		Price:           in.Price,
		OfferPercentage: in.OfferPercentage,
		Stock:           in.Stock,
		ImageURL:        in.ImageURL,
	})
}

// UpdateProduct validates and applies a full product update.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, &model.Product{
		ID:              productID,
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		Slug:            Slugify(in.Title),
		Description:     in.Description,
		Price:           in.Price,
		OfferPercentage: in.OfferPercentage,
		Stock:           in.Stock,
		ImageURL:        in.ImageURL,
		IsAvailable:     in.IsAvailable,
	})
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, productID int64) error {
	return u.products.Delete(ctx, productID)
}
