package repository

import (
	"context"
	"time"

	"github.com/loopbakery/bakeshop/internal/domain/model"
)

// SalesPoint is one day of the admin sales chart.
type SalesPoint struct {
	Date       time.Time
	OrderCount int64
	DailySales float64
}

// AdminOrder is an order enriched with customer identity for the admin list.
type AdminOrder struct {
	model.Order
	CustomerID    int64
	CustomerEmail string
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Place converts the caller's cart into an order atomically: it inserts
	// the order row and one line-item row per draft item, then clears the
	// caller's cart, all inside a single transaction.
	Place(ctx context.Context, userID int64, number string, draft model.OrderDraft) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	GetByID(ctx context.Context, userID, orderID int64) (*model.Order, error)

	ListAll(ctx context.Context) ([]AdminOrder, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	TotalSales(ctx context.Context) (float64, error)
	CountOrders(ctx context.Context) (total, active int64, err error)
	RecentOrders(ctx context.Context, limit int) ([]AdminOrder, error)
	SalesSince(ctx context.Context, since time.Time) ([]SalesPoint, error)
}
