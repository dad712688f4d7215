package usecase_test

import (
	. "github.com/loopbakery/bakeshop/internal/usecase"

	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
	"github.com/loopbakery/bakeshop/internal/test"
)

func newAdminUseCase() (*AdminUseCase, *test.OrderRepositoryStub, *test.UserRepositoryStub, *test.ProductRepositoryStub) {
	orders := &test.OrderRepositoryStub{}
	users := test.NewUserRepositoryStub()
	products := &test.ProductRepositoryStub{}
	return NewAdminUseCase(orders, users, products), orders, users, products
}

func TestDashboardAggregates(t *testing.T) {
	uc, orders, users, products := newAdminUseCase()

	orders.TotalSalesFn = func(context.Context) (float64, error) { return 321.75, nil }
	orders.CountOrdersFn = func(context.Context) (int64, int64, error) { return 20, 6, nil }
	orders.RecentOrdersFn = func(ctx context.Context, limit int) ([]repository.AdminOrder, error) {
		if limit != 10 {
			t.Fatalf("expected recent orders limit 10, got %d", limit)
		}
		return []repository.AdminOrder{{Order: model.Order{ID: 1}}}, nil
	}
	var gotSince time.Time
	orders.SalesSinceFn = func(ctx context.Context, since time.Time) ([]repository.SalesPoint, error) {
		gotSince = since
		return []repository.SalesPoint{{OrderCount: 2, DailySales: 40}}, nil
	}
	_, _ = users.Create(context.Background(), &model.User{Email: "a@example.com", Role: model.RoleCustomer})
	_, _ = users.Create(context.Background(), &model.User{Email: "admin@example.com", Role: model.RoleAdmin})
	products.Products = []model.Product{{ID: 1, Stock: 3}, {ID: 2, Stock: 30}}

	a, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if a.TotalSales != 321.75 || a.TotalOrders != 20 || a.ActiveOrders != 6 {
		t.Fatalf("unexpected order aggregates: %+v", a)
	}
	if a.TotalCustomers != 1 {
		t.Fatalf("expected admin accounts excluded from customer count, got %d", a.TotalCustomers)
	}
	if a.LowStockItems != 1 {
		t.Fatalf("expected one low stock item, got %d", a.LowStockItems)
	}
	if len(a.RecentOrders) != 1 || len(a.SalesChart) != 1 {
		t.Fatalf("unexpected widgets: %+v", a)
	}
	if time.Since(gotSince) > 8*24*time.Hour || time.Since(gotSince) < 6*24*time.Hour {
		t.Fatalf("expected roughly seven day window, got since=%v", gotSince)
	}
}

func TestDashboardPropagatesErrors(t *testing.T) {
	uc, orders, _, _ := newAdminUseCase()
	boom := errors.New("db down")
	orders.TotalSalesFn = func(context.Context) (float64, error) { return 0, boom }
	if _, err := uc.Dashboard(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestUpdateOrderStatusEnum(t *testing.T) {
	uc, orders, _, _ := newAdminUseCase()

	var gotStatus model.OrderStatus
	orders.UpdateStatusFn = func(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
		gotStatus = status
		return &model.Order{ID: orderID, Status: status}, nil
	}

	for _, status := range []model.OrderStatus{
		model.OrderStatusPending, model.OrderStatusProcessing,
		model.OrderStatusCompleted, model.OrderStatusCancelled,
	} {
		order, err := uc.UpdateOrderStatus(context.Background(), 1, status)
		if err != nil {
			t.Fatalf("status %q returned error: %v", status, err)
		}
		if order.Status != status || gotStatus != status {
			t.Fatalf("status %q not applied", status)
		}
	}

	if _, err := uc.UpdateOrderStatus(context.Background(), 1, "shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}
