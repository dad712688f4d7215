package test

import (
	"context"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs a stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers the user unless one already exists or the stub has an
// explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[u.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *u
	stored.ID = s.Next
	if stored.Role == "" {
		stored.Role = model.RoleCustomer
	}
	s.Next++
	s.Users[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches a user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CountCustomers reports the number of stored customer accounts.
func (s *UserRepositoryStub) CountCustomers(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var n int64
	for _, u := range s.Users {
		if u.Role == model.RoleCustomer {
			n++
		}
	}
	return n, nil
}

// OrderRepositoryStub provides function-override order persistence.
type OrderRepositoryStub struct {
	PlaceFn        func(context.Context, int64, string, model.OrderDraft) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	GetByIDFn      func(context.Context, int64, int64) (*model.Order, error)
	ListAllFn      func(context.Context) ([]repository.AdminOrder, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	TotalSalesFn   func(context.Context) (float64, error)
	CountOrdersFn  func(context.Context) (int64, int64, error)
	RecentOrdersFn func(context.Context, int) ([]repository.AdminOrder, error)
	SalesSinceFn   func(context.Context, time.Time) ([]repository.SalesPoint, error)

	Placed []model.OrderDraft
}

// Place records the draft and materializes an order the way the real
// repository would.
func (s *OrderRepositoryStub) Place(ctx context.Context, userID int64, number string, draft model.OrderDraft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, number, draft)
	}
	s.Placed = append(s.Placed, draft)
	method, status := model.ClassifyPayment(draft.PaymentID)
	order := &model.Order{
		ID:            int64(len(s.Placed)),
		UserID:        userID,
		AddressID:     draft.AddressID,
		Number:        number,
		TotalAmount:   draft.Total(),
		Status:        model.OrderStatusPending,
		PaymentMethod: method,
		PaymentStatus: status,
		Notes:         draft.Notes,
	}
	for _, it := range draft.Items {
		order.Items = append(order.Items, model.OrderItem{
			OrderID:     order.ID,
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

// ListByUser returns the configured history.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

// GetByID resolves one owner-scoped order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, userID, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]repository.AdminOrder, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

// UpdateStatus applies a status transition.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// TotalSales reports the configured revenue.
func (s *OrderRepositoryStub) TotalSales(ctx context.Context) (float64, error) {
	if s.TotalSalesFn != nil {
		return s.TotalSalesFn(ctx)
	}
	return 0, nil
}

// CountOrders reports total and active order counts.
func (s *OrderRepositoryStub) CountOrders(ctx context.Context) (int64, int64, error) {
	if s.CountOrdersFn != nil {
		return s.CountOrdersFn(ctx)
	}
	return 0, 0, nil
}

// RecentOrders returns the most recent orders.
func (s *OrderRepositoryStub) RecentOrders(ctx context.Context, limit int) ([]repository.AdminOrder, error) {
	if s.RecentOrdersFn != nil {
		return s.RecentOrdersFn(ctx, limit)
	}
	return nil, nil
}

// SalesSince returns the configured daily series.
func (s *OrderRepositoryStub) SalesSince(ctx context.Context, since time.Time) ([]repository.SalesPoint, error) {
	if s.SalesSinceFn != nil {
		return s.SalesSinceFn(ctx, since)
	}
	return nil, nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products []model.Product
	Next     int64
	Err      error

	LowStockFn func(context.Context, int) (int64, error)
}

// ListAvailable returns stored products flagged as available.
func (s *ProductRepositoryStub) ListAvailable(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByIDOrSlug resolves a product by numeric id or slug.
func (s *ProductRepositoryStub) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	id, _ := strconv.ParseInt(idOrSlug, 10, 64)
	for i := range s.Products {
		if s.Products[i].ID == id || s.Products[i].Slug == idOrSlug {
			return &s.Products[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCategory filters stored products by category id or slug.
func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	id, _ := strconv.ParseInt(idOrSlug, 10, 64)
	var out []model.Product
	for _, p := range s.Products {
		if p.CategoryID == id || strings.EqualFold(p.CategorySlug, idOrSlug) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListCategories derives categories from stored products.
func (s *ProductRepositoryStub) ListCategories(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	seen := make(map[int64]*model.Category)
	var out []model.Category
	for _, p := range s.Products {
		if c, ok := seen[p.CategoryID]; ok {
			c.ProductCount++
			continue
		}
		out = append(out, model.Category{ID: p.CategoryID, Name: p.CategoryName, Slug: p.CategorySlug, ProductCount: 1})
		seen[p.CategoryID] = &out[len(out)-1]
	}
	return out, nil
}

// CountLowStock reports products at or below the threshold.
func (s *ProductRepositoryStub) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold)
	}
	var n int64
	for _, p := range s.Products {
		if p.Stock < threshold {
			n++
		}
	}
	return n, nil
}

// Create stores a new product.
func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = int64(len(s.Products)) + 1
	}
	stored := *p
	stored.ID = s.Next
	s.Next++
	s.Products = append(s.Products, stored)
	return &stored, nil
}

// Update rewrites a stored product or returns not found.
func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID == p.ID {
			s.Products[i] = *p
			return &s.Products[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a stored product or returns not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID == productID {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CartRepositoryStub provides function-override cart persistence.
type CartRepositoryStub struct {
	Lines []model.CartLine
	Err   error

	AddFn            func(context.Context, int64, int64) error
	ChangeQuantityFn func(context.Context, int64, int64, int) error
	RemoveFn         func(context.Context, int64, int64) error
	ClearFn          func(context.Context, int64) error
	SweepFn          func(context.Context, time.Time, int) (int64, error)

	SweepCutoffs []time.Time
}

// ListByUser returns stored lines belonging to the user.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.CartLine
	for _, l := range s.Lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// Add records an upsert.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, productID int64) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Lines {
		if s.Lines[i].UserID == userID && s.Lines[i].ProductID == productID {
			s.Lines[i].Quantity++
			return nil
		}
	}
	s.Lines = append(s.Lines, model.CartLine{ID: int64(len(s.Lines)) + 1, UserID: userID, ProductID: productID, Quantity: 1})
	return nil
}

// ChangeQuantity applies a delta to the stored line.
func (s *CartRepositoryStub) ChangeQuantity(ctx context.Context, userID, lineID int64, delta int) error {
	if s.ChangeQuantityFn != nil {
		return s.ChangeQuantityFn(ctx, userID, lineID, delta)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Lines {
		if s.Lines[i].UserID == userID && s.Lines[i].ID == lineID {
			s.Lines[i].Quantity += delta
			if s.Lines[i].Quantity < 1 {
				s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			}
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Remove drops the stored line.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, lineID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Lines {
		if s.Lines[i].UserID == userID && s.Lines[i].ID == lineID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear drops every line belonging to the user.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	if s.Err != nil {
		return s.Err
	}
	var kept []model.CartLine
	for _, l := range s.Lines {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	s.Lines = kept
	return nil
}

// SweepAbandoned deletes lines created before cutoff, up to limit.
func (s *CartRepositoryStub) SweepAbandoned(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	if s.SweepFn != nil {
		return s.SweepFn(ctx, cutoff, limit)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	s.SweepCutoffs = append(s.SweepCutoffs, cutoff)
	var removed int64
	var kept []model.CartLine
	for _, l := range s.Lines {
		if l.CreatedAt.Before(cutoff) && removed < int64(limit) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	s.Lines = kept
	return removed, nil
}

// AddressRepositoryStub stores addresses in-memory for tests.
type AddressRepositoryStub struct {
	Addresses []model.Address
	Next      int64
	Err       error
}

// ListByUser returns stored addresses, default first.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Address
	for _, a := range s.Addresses {
		if a.UserID == userID {
			if a.IsDefault {
				out = append([]model.Address{a}, out...)
				continue
			}
			out = append(out, a)
		}
	}
	return out, nil
}

// Create stores a new address, unsetting the previous default when needed.
func (s *AddressRepositoryStub) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = int64(len(s.Addresses)) + 1
	}
	stored := *a
	stored.ID = s.Next
	s.Next++
	if stored.IsDefault {
		for i := range s.Addresses {
			if s.Addresses[i].UserID == stored.UserID {
				s.Addresses[i].IsDefault = false
			}
		}
	}
	s.Addresses = append(s.Addresses, stored)
	return &stored, nil
}

// Update rewrites a stored address or returns not found.
func (s *AddressRepositoryStub) Update(ctx context.Context, a *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Addresses {
		if s.Addresses[i].ID == a.ID && s.Addresses[i].UserID == a.UserID {
			if a.IsDefault {
				for j := range s.Addresses {
					if s.Addresses[j].UserID == a.UserID && s.Addresses[j].ID != a.ID {
						s.Addresses[j].IsDefault = false
					}
				}
			}
			s.Addresses[i] = *a
			return &s.Addresses[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a stored address or returns not found.
func (s *AddressRepositoryStub) Delete(ctx context.Context, userID, addressID int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Addresses {
		if s.Addresses[i].ID == addressID && s.Addresses[i].UserID == userID {
			s.Addresses = append(s.Addresses[:i], s.Addresses[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

var (
	_ repository.UserRepository    = (*UserRepositoryStub)(nil)
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ repository.ProductRepository = (*ProductRepositoryStub)(nil)
	_ repository.CartRepository    = (*CartRepositoryStub)(nil)
	_ repository.AddressRepository = (*AddressRepositoryStub)(nil)
)
