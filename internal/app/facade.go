package app

import (
	"context"
	"time"

	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
	pkgAuth "github.com/loopbakery/bakeshop/internal/pkg/auth"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

// BakeryFacade aggregates the business use cases behind one surface consumed
// by HTTP handlers and the background janitor.
type BakeryFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	cart    *usecase.CartUseCase
	address *usecase.AddressUseCase
	orders  *usecase.OrderUseCase
	admin   *usecase.AdminUseCase
}

func NewBakeryFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	address *usecase.AddressUseCase,
	orders *usecase.OrderUseCase,
	admin *usecase.AdminUseCase,
) *BakeryFacade {
	return &BakeryFacade{auth: auth, catalog: catalog, cart: cart, address: address, orders: orders, admin: admin}
}

func (f *BakeryFacade) Signup(ctx context.Context, in usecase.SignupInput) (*model.User, string, error) {
	return f.auth.Signup(ctx, in)
}

func (f *BakeryFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *BakeryFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *BakeryFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *BakeryFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *BakeryFacade) Product(ctx context.Context, idOrSlug string) (*model.Product, error) {
	return f.catalog.Product(ctx, idOrSlug)
}

func (f *BakeryFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *BakeryFacade) ProductsByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error) {
	return f.catalog.ProductsByCategory(ctx, idOrSlug)
}

func (f *BakeryFacade) CreateProduct(ctx context.Context, in usecase.ProductInput) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, in)
}

func (f *BakeryFacade) UpdateProduct(ctx context.Context, productID int64, in usecase.ProductInput) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, productID, in)
}

func (f *BakeryFacade) DeleteProduct(ctx context.Context, productID int64) error {
	return f.catalog.DeleteProduct(ctx, productID)
}

func (f *BakeryFacade) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.cart.Cart(ctx, userID)
}

func (f *BakeryFacade) AddToCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	return f.cart.Add(ctx, userID, productID)
}

func (f *BakeryFacade) ChangeCartQuantity(ctx context.Context, userID, lineID int64, delta int) ([]model.CartLine, error) {
	return f.cart.ChangeQuantity(ctx, userID, lineID, delta)
}

func (f *BakeryFacade) RemoveFromCart(ctx context.Context, userID, lineID int64) ([]model.CartLine, error) {
	return f.cart.Remove(ctx, userID, lineID)
}

func (f *BakeryFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *BakeryFacade) SweepAbandonedCarts(ctx context.Context, maxAge time.Duration, limit int) (int64, error) {
	return f.cart.SweepAbandoned(ctx, maxAge, limit)
}

func (f *BakeryFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.address.List(ctx, userID)
}

func (f *BakeryFacade) AddAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	return f.address.Create(ctx, a)
}

func (f *BakeryFacade) UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	return f.address.Update(ctx, a)
}

func (f *BakeryFacade) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	return f.address.Delete(ctx, userID, addressID)
}

func (f *BakeryFacade) PlaceOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Place(ctx, userID, draft)
}

func (f *BakeryFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *BakeryFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, userID, orderID)
}

func (f *BakeryFacade) Dashboard(ctx context.Context) (*usecase.Analytics, error) {
	return f.admin.Dashboard(ctx)
}

func (f *BakeryFacade) AllOrders(ctx context.Context) ([]repository.AdminOrder, error) {
	return f.admin.Orders(ctx)
}

func (f *BakeryFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.admin.UpdateOrderStatus(ctx, orderID, status)
}
