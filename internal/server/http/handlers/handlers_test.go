package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	pkgAuth "github.com/loopbakery/bakeshop/internal/pkg/auth"
	"github.com/loopbakery/bakeshop/internal/server/http/dto"
	"github.com/loopbakery/bakeshop/internal/server/http/middleware"
	testhelpers "github.com/loopbakery/bakeshop/internal/test"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asCustomer(userID int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, pkgAuth.Identity{UserID: userID, Email: "baker@example.com", Role: string(model.RoleCustomer)})
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.IdentityContextKey, pkgAuth.Identity{UserID: 42})
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerSignup(t *testing.T) {
	body, _ := json.Marshal(dto.SignupRequest{Email: "baker@example.com", Password: "secret", FirstName: "Rye", LastName: "Crumb"})
	resp := performRequest(t, http.MethodPost, "/signup", NewAuthHandler(testhelpers.AuthFacadeStub{}).Signup, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
	var out dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !out.Success || out.Token == "" || out.User.Email != "baker@example.com" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestAuthHandlerSignupErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domainErrors.ErrValidation, http.StatusBadRequest},
		{"duplicate", domainErrors.ErrAlreadyExists, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := testhelpers.AuthFacadeStub{SignupFn: func(context.Context, usecase.SignupInput) (*model.User, string, error) {
				return nil, "", tc.err
			}}
			body, _ := json.Marshal(dto.SignupRequest{Email: "baker@example.com", Password: "secret"})
			resp := performRequest(t, http.MethodPost, "/signup", NewAuthHandler(stub).Signup, nil, body)
			if resp.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "baker@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	stub := testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}}
	resp = performRequest(t, http.MethodPost, "/login", NewAuthHandler(stub).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for bad credentials, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	total := 19.5
	payload := dto.CreateOrderRequest{Order: &dto.OrderPayload{
		Items: []dto.OrderItemPayload{
			{ID: 3, Title: "Sourdough Loaf", Qty: 2, Price: 6.5},
			{ID: 7, Title: "Croissant", Qty: 2, Price: 3.25},
		},
		PaymentID:  model.DirectPaymentID,
		TotalPrice: &total,
		DeliveryAddress: &dto.AddressResponse{
			ID: "11", Street: "1 Main St", City: "Springfield", State: "IL",
		},
	}}
	body, _ := json.Marshal(payload)

	var gotDraft model.OrderDraft
	var gotUserID int64
	stub := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
		gotUserID = userID
		gotDraft = draft
		addressID := int64(11)
		return &model.Order{
			ID: 5, UserID: userID, AddressID: &addressID, Number: "ORD-1700000000000-7",
			TotalAmount: draft.Total(), Status: model.OrderStatusPending,
			PaymentMethod: model.PaymentMethodCOD, PaymentStatus: model.PaymentStatusPending,
			Items: []model.OrderItem{{ProductID: 3, ProductName: "Sourdough Loaf", Quantity: 2, Price: 6.5, Subtotal: 13}},
		}, nil
	}}

	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(stub).Create, asCustomer(42), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if gotUserID != 42 {
		t.Fatalf("expected facade call for user 42, got %d", gotUserID)
	}
	if len(gotDraft.Items) != 2 || gotDraft.Items[0].ProductID != 3 || gotDraft.Items[1].Quantity != 2 {
		t.Fatalf("unexpected draft items: %+v", gotDraft.Items)
	}
	if gotDraft.TotalPrice == nil || *gotDraft.TotalPrice != total {
		t.Fatalf("expected client total to be forwarded, got %+v", gotDraft.TotalPrice)
	}
	if gotDraft.AddressID == nil || *gotDraft.AddressID != 11 {
		t.Fatalf("expected delivery address id 11, got %+v", gotDraft.AddressID)
	}

	var out dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !out.Success || out.Order.OrderNumber != "ORD-1700000000000-7" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Order.TotalAmount != total || out.Order.TotalPrice != total {
		t.Fatalf("expected total aliases %v, got %v/%v", total, out.Order.TotalAmount, out.Order.TotalPrice)
	}
	if out.Order.PaymentID != model.DirectPaymentID || out.Order.PaymentMethod != string(model.PaymentMethodCOD) {
		t.Fatalf("unexpected payment fields: %+v", out.Order)
	}
	if len(out.Orders) != 1 || out.Orders[0].ID != out.Order.ID {
		t.Fatalf("expected orders list to repeat the placed order, got %+v", out.Orders)
	}
	if out.Order.DeliveryAddress == nil || out.Order.DeliveryAddress.Street != "1 Main St" {
		t.Fatalf("expected delivery address to be echoed, got %+v", out.Order.DeliveryAddress)
	}
	if out.Order.OrderDate != out.Order.CreatedAt {
		t.Fatalf("expected orderDate alias to match createdAt")
	}
}

func TestOrderHandlerCreateRejectsEmpty(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, model.OrderDraft) (*model.Order, error) {
		return nil, domainErrors.ErrValidation
	}})

	for _, body := range []string{`{}`, `{"order":{"items":[]}}`, `{"order":{}}`} {
		resp := performRequest(t, http.MethodPost, "/orders", handler.Create, asCustomer(1), []byte(body))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, resp.Code)
		}
	}
}

func TestOrderHandlerCreateFailure(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, model.OrderDraft) (*model.Order, error) {
		return nil, errors.New("tx failed")
	}}
	body := []byte(`{"order":{"items":[{"id":1,"qty":1,"price":2}],"paymentId":"DIRECT"}}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(stub).Create, asCustomer(1), body)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var out dto.ErrorResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &out)
	if out.Message != "failed to place order" {
		t.Fatalf("expected generic failure message, got %q", out.Message)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, userID, orderID int64) (*model.Order, error) {
		if orderID != 9 {
			return nil, domainErrors.ErrNotFound
		}
		return &model.Order{ID: 9, UserID: userID, Number: "ORD-1700000000000-9"}, nil
	}}
	handler := NewOrderHandler(stub)

	router := gin.New()
	router.GET("/orders/:orderId", func(c *gin.Context) {
		asCustomer(1)(c)
		handler.Get(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/9", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/8", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign order, got %d", w.Code)
	}
}

func TestCartHandlerChangeQuantity(t *testing.T) {
	var gotDelta int
	stub := testhelpers.CartFacadeStub{ChangeQuantityFn: func(ctx context.Context, userID, lineID int64, delta int) ([]model.CartLine, error) {
		gotDelta = delta
		return []model.CartLine{}, nil
	}}
	handler := NewCartHandler(stub)

	router := gin.New()
	router.POST("/cart/:id", func(c *gin.Context) {
		asCustomer(1)(c)
		handler.ChangeQuantity(c)
	})

	for _, tc := range []struct {
		action string
		want   int
		status int
	}{
		{"increment", 1, http.StatusOK},
		{"decrement", -1, http.StatusOK},
		{"reset", 0, http.StatusBadRequest},
	} {
		body := []byte(`{"action":{"type":"` + tc.action + `"}}`)
		req := httptest.NewRequest(http.MethodPost, "/cart/3", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Fatalf("action %q: expected status %d, got %d", tc.action, tc.status, w.Code)
		}
		if tc.status == http.StatusOK && gotDelta != tc.want {
			t.Fatalf("action %q: expected delta %d, got %d", tc.action, tc.want, gotDelta)
		}
	}
}

func TestCartHandlerAdd(t *testing.T) {
	body := []byte(`{"product":{"id":7}}`)
	var gotProductID int64
	stub := testhelpers.CartFacadeStub{AddFn: func(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
		gotProductID = productID
		return []model.CartLine{{ID: 1, ProductID: productID, Quantity: 1}}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/cart", NewCartHandler(stub).Add, asCustomer(1), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotProductID != 7 {
		t.Fatalf("expected product 7, got %d", gotProductID)
	}
	var out dto.CartResponse
	_ = json.Unmarshal(resp.Body.Bytes(), &out)
	if len(out.Cart) != 1 || out.Cart[0].ID != 7 {
		t.Fatalf("expected refreshed cart keyed by product id, got %+v", out.Cart)
	}
}

func TestProductHandlerGet(t *testing.T) {
	stub := testhelpers.CatalogFacadeStub{ProductFn: func(ctx context.Context, idOrSlug string) (*model.Product, error) {
		if idOrSlug != "sourdough-loaf" {
			return nil, domainErrors.ErrNotFound
		}
		return &model.Product{ID: 1, Title: "Sourdough Loaf", Slug: "sourdough-loaf"}, nil
	}}
	handler := NewProductHandler(stub)

	router := gin.New()
	router.GET("/products/:id", handler.Get)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/sourdough-loaf", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 by slug, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAdminHandlerUpdateStatus(t *testing.T) {
	stub := testhelpers.AdminFacadeStub{UpdateStatusFn: func(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
		if !model.ValidOrderStatus(status) {
			return nil, domainErrors.ErrInvalidStatus
		}
		if orderID != 4 {
			return nil, domainErrors.ErrNotFound
		}
		return &model.Order{ID: orderID, Status: status}, nil
	}}
	handler := NewAdminHandler(stub)

	router := gin.New()
	router.PUT("/orders/:orderId/status", handler.UpdateStatus)

	send := func(path, status string) *httptest.ResponseRecorder {
		body := []byte(`{"status":"` + status + `"}`)
		req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := send("/orders/4/status", "completed"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := send("/orders/4/status", "shipped"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
	if w := send("/orders/99/status", "completed"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing order, got %d", w.Code)
	}
}

func TestAdminHandlerAnalytics(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/analytics", NewAdminHandler(testhelpers.AdminFacadeStub{}).Analytics, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.AnalyticsEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if out.Analytics.TotalSales != "100.50" {
		t.Fatalf("expected formatted total sales, got %q", out.Analytics.TotalSales)
	}
}
