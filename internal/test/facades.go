package test

import (
	"context"
	"time"

	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn           func(context.Context) ([]model.Product, error)
	ProductFn            func(context.Context, string) (*model.Product, error)
	CategoriesFn         func(context.Context) ([]model.Category, error)
	ProductsByCategoryFn func(context.Context, string) ([]model.Product, error)
	CreateProductFn      func(context.Context, usecase.ProductInput) (*model.Product, error)
	UpdateProductFn      func(context.Context, int64, usecase.ProductInput) (*model.Product, error)
	DeleteProductFn      func(context.Context, int64) error
}

// Products returns the configured catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Title: "Sourdough Loaf", Slug: "sourdough-loaf", Price: 6.5}}, nil
}

// Product resolves one catalog entry by id or slug.
func (s CatalogFacadeStub) Product(ctx context.Context, idOrSlug string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, idOrSlug)
	}
	return &model.Product{ID: 1, Title: "Sourdough Loaf", Slug: "sourdough-loaf", Price: 6.5}, nil
}

// Categories lists the configured categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Breads", Slug: "breads"}}, nil
}

// ProductsByCategory lists products for one category.
func (s CatalogFacadeStub) ProductsByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error) {
	if s.ProductsByCategoryFn != nil {
		return s.ProductsByCategoryFn(ctx, idOrSlug)
	}
	return []model.Product{{ID: 1, Title: "Sourdough Loaf", Slug: "sourdough-loaf", Price: 6.5}}, nil
}

// CreateProduct stores a new catalog entry.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, in usecase.ProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in)
	}
	return &model.Product{ID: 1, Title: in.Title, Price: in.Price}, nil
}

// UpdateProduct rewrites an existing catalog entry.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, productID int64, in usecase.ProductInput) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, productID, in)
	}
	return &model.Product{ID: productID, Title: in.Title, Price: in.Price}, nil
}

// DeleteProduct removes a catalog entry.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, productID int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, productID)
	}
	return nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn           func(context.Context, int64) ([]model.CartLine, error)
	AddFn            func(context.Context, int64, int64) ([]model.CartLine, error)
	ChangeQuantityFn func(context.Context, int64, int64, int) ([]model.CartLine, error)
	RemoveFn         func(context.Context, int64, int64) ([]model.CartLine, error)
	ClearFn          func(context.Context, int64) error
	SweepFn          func(context.Context, time.Duration, int) (int64, error)
}

// Cart returns the configured cart lines.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return []model.CartLine{{ID: 1, UserID: userID, ProductID: 1, Title: "Sourdough Loaf", Price: 6.5, Quantity: 1, Subtotal: 6.5}}, nil
}

// AddToCart registers a product and returns the refreshed cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	return []model.CartLine{{ID: 1, UserID: userID, ProductID: productID, Quantity: 1}}, nil
}

// ChangeCartQuantity applies the delta and returns the refreshed cart.
func (s CartFacadeStub) ChangeCartQuantity(ctx context.Context, userID, lineID int64, delta int) ([]model.CartLine, error) {
	if s.ChangeQuantityFn != nil {
		return s.ChangeQuantityFn(ctx, userID, lineID, delta)
	}
	return []model.CartLine{{ID: lineID, UserID: userID, Quantity: 1 + delta}}, nil
}

// RemoveFromCart drops the line and returns the refreshed cart.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, userID, lineID int64) ([]model.CartLine, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	return []model.CartLine{}, nil
}

// ClearCart empties the caller's cart.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// SweepAbandonedCarts deletes stale cart lines.
func (s CartFacadeStub) SweepAbandonedCarts(ctx context.Context, maxAge time.Duration, limit int) (int64, error) {
	if s.SweepFn != nil {
		return s.SweepFn(ctx, maxAge, limit)
	}
	return 0, nil
}

// AddressFacadeStub provides controllable behaviour for address endpoints.
type AddressFacadeStub struct {
	AddressesFn     func(context.Context, int64) ([]model.Address, error)
	AddAddressFn    func(context.Context, model.Address) (*model.Address, error)
	UpdateAddressFn func(context.Context, model.Address) (*model.Address, error)
	DeleteAddressFn func(context.Context, int64, int64) error
}

// Addresses lists the configured addresses.
func (s AddressFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return []model.Address{{ID: 1, UserID: userID, Street: "1 Main St", City: "Springfield", State: "IL"}}, nil
}

// AddAddress stores a new address.
func (s AddressFacadeStub) AddAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	if s.AddAddressFn != nil {
		return s.AddAddressFn(ctx, a)
	}
	a.ID = 1
	return &a, nil
}

// UpdateAddress rewrites an existing address.
func (s AddressFacadeStub) UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	if s.UpdateAddressFn != nil {
		return s.UpdateAddressFn(ctx, a)
	}
	return &a, nil
}

// DeleteAddress removes an address.
func (s AddressFacadeStub) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if s.DeleteAddressFn != nil {
		return s.DeleteAddressFn(ctx, userID, addressID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, int64, model.OrderDraft) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	OrderFn  func(context.Context, int64, int64) (*model.Order, error)
}

// PlaceOrder converts the draft into a stored order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, draft)
	}
	order := &model.Order{
		ID:            1,
		UserID:        userID,
		Number:        "ORD-1700000000000-1",
		TotalAmount:   draft.Total(),
		Status:        model.OrderStatusPending,
		PaymentMethod: model.PaymentMethodCOD,
		PaymentStatus: model.PaymentStatusPending,
	}
	for _, it := range draft.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Title,
			ImageURL:    it.ImageURL,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Price * float64(it.Quantity),
		})
	}
	return order, nil
}

// Orders returns the configured order history.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Number: "ORD-1700000000000-1"}}, nil
}

// Order resolves one order scoped to the caller.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Number: "ORD-1700000000000-1"}, nil
}

// AdminFacadeStub provides controllable behaviour for admin endpoints.
type AdminFacadeStub struct {
	DashboardFn    func(context.Context) (*usecase.Analytics, error)
	AllOrdersFn    func(context.Context) ([]repository.AdminOrder, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// Dashboard returns the configured analytics snapshot.
func (s AdminFacadeStub) Dashboard(ctx context.Context) (*usecase.Analytics, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &usecase.Analytics{TotalSales: 100.5, TotalOrders: 3, ActiveOrders: 2, TotalCustomers: 5}, nil
}

// AllOrders lists every stored order.
func (s AdminFacadeStub) AllOrders(ctx context.Context) ([]repository.AdminOrder, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []repository.AdminOrder{{Order: model.Order{ID: 1, Number: "ORD-1700000000000-1"}, CustomerID: 1, CustomerEmail: "user@example.com"}}, nil
}

// UpdateOrderStatus applies a status transition.
func (s AdminFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	AddressFacadeStub
	OrderFacadeStub
	AdminFacadeStub
}

// PingerStub fakes the storage readiness probe.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(context.Context) error {
	return s.Err
}
