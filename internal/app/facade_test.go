package app

import (
	"context"
	"testing"
	"time"

	"github.com/loopbakery/bakeshop/internal/domain/model"
	pkgAuth "github.com/loopbakery/bakeshop/internal/pkg/auth"
	testhelpers "github.com/loopbakery/bakeshop/internal/test"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

type facadeDeps struct {
	users     *testhelpers.UserRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	carts     *testhelpers.CartRepositoryStub
	addresses *testhelpers.AddressRepositoryStub
}

func newFacade() (*BakeryFacade, facadeDeps) {
	deps := facadeDeps{
		users:     testhelpers.NewUserRepositoryStub(),
		orders:    &testhelpers.OrderRepositoryStub{},
		products:  &testhelpers.ProductRepositoryStub{},
		carts:     &testhelpers.CartRepositoryStub{},
		addresses: &testhelpers.AddressRepositoryStub{},
	}

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (pkgAuth.Identity, error) {
		return pkgAuth.Identity{UserID: 99, Email: "baker@example.com", Role: "customer"}, nil
	}}
	facade := NewBakeryFacade(
		usecase.NewAuthUseCase(deps.users, testhelpers.HasherStub{}, strategy),
		usecase.NewCatalogUseCase(deps.products),
		usecase.NewCartUseCase(deps.carts),
		usecase.NewAddressUseCase(deps.addresses),
		usecase.NewOrderUseCase(deps.orders),
		usecase.NewAdminUseCase(deps.orders, deps.users, deps.products),
	)
	return facade, deps
}

func TestBakeryFacadeAuth(t *testing.T) {
	facade, deps := newFacade()
	user, token, err := facade.Signup(context.Background(), usecase.SignupInput{
		Email: "Baker@Example.com", Password: "secret", FirstName: "Rye", LastName: "Crumb",
	})
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if token != "token" || user.Email != "baker@example.com" {
		t.Fatalf("unexpected signup result: %+v token=%q", user, token)
	}

	if _, err := deps.users.GetByEmail(context.Background(), "baker@example.com"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	if _, _, err := facade.Login(context.Background(), "baker@example.com", "secret"); err != nil {
		t.Fatalf("login returned error: %v", err)
	}

	identity, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if identity.UserID != 99 {
		t.Fatalf("expected id 99, got %d", identity.UserID)
	}

	profile, err := facade.Profile(context.Background(), user.ID)
	if err != nil || profile.Email != "baker@example.com" {
		t.Fatalf("unexpected profile: %+v err=%v", profile, err)
	}
}

func TestBakeryFacadePlaceOrder(t *testing.T) {
	facade, deps := newFacade()

	total := 13.0
	order, err := facade.PlaceOrder(context.Background(), 7, model.OrderDraft{
		Items:      []model.DraftItem{{ProductID: 3, Title: "Sourdough Loaf", Quantity: 2, Price: 6.5}},
		PaymentID:  model.DirectPaymentID,
		TotalPrice: &total,
	})
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if order.TotalAmount != total || order.PaymentMethod != model.PaymentMethodCOD || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(deps.orders.Placed) != 1 {
		t.Fatalf("expected one placement, got %d", len(deps.orders.Placed))
	}

	if _, err := facade.PlaceOrder(context.Background(), 7, model.OrderDraft{}); err == nil {
		t.Fatal("expected error for empty draft")
	}
}

func TestBakeryFacadeCart(t *testing.T) {
	facade, deps := newFacade()

	lines, err := facade.AddToCart(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("add to cart returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != 3 {
		t.Fatalf("unexpected cart: %+v", lines)
	}

	lines, err = facade.AddToCart(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("second add returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected upsert to bump quantity, got %+v", lines)
	}

	if err := facade.ClearCart(context.Background(), 7); err != nil {
		t.Fatalf("clear cart returned error: %v", err)
	}
	if remaining, _ := deps.carts.ListByUser(context.Background(), 7); len(remaining) != 0 {
		t.Fatalf("expected empty cart, got %+v", remaining)
	}
}

func TestBakeryFacadeSweepAbandonedCarts(t *testing.T) {
	facade, deps := newFacade()
	deps.carts.Lines = []model.CartLine{
		{ID: 1, UserID: 1, ProductID: 1, CreatedAt: time.Now().Add(-48 * time.Hour)},
		{ID: 2, UserID: 2, ProductID: 2, CreatedAt: time.Now()},
	}

	removed, err := facade.SweepAbandonedCarts(context.Background(), 24*time.Hour, 10)
	if err != nil {
		t.Fatalf("sweep returned error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one stale line removed, got %d", removed)
	}

	if len(deps.carts.SweepCutoffs) != 1 {
		t.Fatalf("expected one sweep call, got %d", len(deps.carts.SweepCutoffs))
	}
	cutoff := deps.carts.SweepCutoffs[0]
	if d := time.Since(cutoff.Add(24 * time.Hour)); d < 0 || d > time.Minute {
		t.Fatalf("unexpected cutoff %v", cutoff)
	}
}

func TestBakeryFacadeDashboard(t *testing.T) {
	facade, deps := newFacade()
	deps.orders.TotalSalesFn = func(context.Context) (float64, error) { return 250.5, nil }
	deps.orders.CountOrdersFn = func(context.Context) (int64, int64, error) { return 12, 4, nil }
	deps.products.Products = []model.Product{{ID: 1, Stock: 2}, {ID: 2, Stock: 50}}

	analytics, err := facade.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if analytics.TotalSales != 250.5 || analytics.TotalOrders != 12 || analytics.ActiveOrders != 4 {
		t.Fatalf("unexpected analytics: %+v", analytics)
	}
	if analytics.LowStockItems != 1 {
		t.Fatalf("expected one low stock item, got %d", analytics.LowStockItems)
	}
}
