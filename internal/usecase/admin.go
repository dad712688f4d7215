package usecase

import (
	"context"
	"time"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

const (
	lowStockThreshold = 10
	recentOrdersLimit = 10
	salesChartDays    = 7
)

// Analytics aggregates the admin dashboard numbers.
type Analytics struct {
	TotalSales     float64
	TotalOrders    int64
	ActiveOrders   int64
	TotalCustomers int64
	LowStockItems  int64
	RecentOrders   []repository.AdminOrder
	SalesChart     []repository.SalesPoint
}

// AdminUseCase serves the administrative surface: analytics, the full order
// list and status transitions.
type AdminUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(orders repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) *AdminUseCase {
	return &AdminUseCase{orders: orders, users: users, products: products}
}

// Dashboard gathers the analytics summary.
func (u *AdminUseCase) Dashboard(ctx context.Context) (*Analytics, error) {
	var a Analytics
	var err error

	if a.TotalSales, err = u.orders.TotalSales(ctx); err != nil {
		return nil, err
	}
	if a.TotalOrders, a.ActiveOrders, err = u.orders.CountOrders(ctx); err != nil {
		return nil, err
	}
	if a.TotalCustomers, err = u.users.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if a.LowStockItems, err = u.products.CountLowStock(ctx, lowStockThreshold); err != nil {
		return nil, err
	}
	if a.RecentOrders, err = u.orders.RecentOrders(ctx, recentOrdersLimit); err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -salesChartDays).Truncate(24 * time.Hour)
	if a.SalesChart, err = u.orders.SalesSince(ctx, since); err != nil {
		return nil, err
	}
	return &a, nil
}

// Orders returns every order with customer identity and line items.
func (u *AdminUseCase) Orders(ctx context.Context) ([]repository.AdminOrder, error) {
	return u.orders.ListAll(ctx)
}

// UpdateOrderStatus transitions an order within the closed status enum.
func (u *AdminUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}
