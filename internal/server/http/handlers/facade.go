package handlers

import (
	"context"
	"time"

	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
	pkgAuth "github.com/loopbakery/bakeshop/internal/pkg/auth"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Identity, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// CatalogFacade exposes the public product catalog plus the admin mutations.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, idOrSlug string) (*model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
	ProductsByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error)
	CreateProduct(ctx context.Context, in usecase.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID int64, in usecase.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// CartFacade covers the pre-checkout cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) ([]model.CartLine, error)
	AddToCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error)
	ChangeCartQuantity(ctx context.Context, userID, lineID int64, delta int) ([]model.CartLine, error)
	RemoveFromCart(ctx context.Context, userID, lineID int64) ([]model.CartLine, error)
	ClearCart(ctx context.Context, userID int64) error
	SweepAbandonedCarts(ctx context.Context, maxAge time.Duration, limit int) (int64, error)
}

// AddressFacade covers delivery address management.
type AddressFacade interface {
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	AddAddress(ctx context.Context, a model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

// OrderFacade encapsulates checkout and order retrieval.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
}

// AdminFacade covers the administrative dashboard and order management.
type AdminFacade interface {
	Dashboard(ctx context.Context) (*usecase.Analytics, error)
	AllOrders(ctx context.Context) ([]repository.AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	AddressFacade
	OrderFacade
	AdminFacade
}
