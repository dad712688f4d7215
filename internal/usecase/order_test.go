package usecase_test

import (
	. "github.com/loopbakery/bakeshop/internal/usecase"

	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/test"
)

func TestPlaceRejectsEmptyDraft(t *testing.T) {
	repo := &test.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	if _, err := uc.Place(context.Background(), 1, model.OrderDraft{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.Placed) != 0 {
		t.Fatalf("expected no placement for empty draft")
	}
}

func TestPlaceGeneratesOrderNumber(t *testing.T) {
	var gotNumber string
	repo := &test.OrderRepositoryStub{PlaceFn: func(ctx context.Context, userID int64, number string, draft model.OrderDraft) (*model.Order, error) {
		gotNumber = number
		return &model.Order{Number: number, UserID: userID}, nil
	}}
	uc := NewOrderUseCase(repo)

	before := time.Now().UnixMilli()
	if _, err := uc.Place(context.Background(), 1, model.OrderDraft{Items: []model.DraftItem{{ProductID: 1, Quantity: 1, Price: 2}}}); err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	after := time.Now().UnixMilli()

	matched, _ := regexp.MatchString(`^ORD-\d+-\d{1,3}$`, gotNumber)
	if !matched {
		t.Fatalf("unexpected order number format %q", gotNumber)
	}
	parts := strings.Split(gotNumber, "-")
	millis, _ := strconv.ParseInt(parts[1], 10, 64)
	if millis < before || millis > after {
		t.Fatalf("order number timestamp %d outside [%d, %d]", millis, before, after)
	}
	suffix, _ := strconv.Atoi(parts[2])
	if suffix < 0 || suffix > 999 {
		t.Fatalf("order number suffix %d out of range", suffix)
	}
}

func TestPlaceForwardsDraft(t *testing.T) {
	repo := &test.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	total := 42.5
	addressID := int64(3)
	draft := model.OrderDraft{
		Items:      []model.DraftItem{{ProductID: 9, Title: "Baguette", Quantity: 3, Price: 4.5}},
		PaymentID:  "pay_abc123",
		TotalPrice: &total,
		AddressID:  &addressID,
		Notes:      "ring the bell",
	}
	order, err := uc.Place(context.Background(), 7, draft)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.PaymentMethod != model.PaymentMethodOnline || order.PaymentStatus != model.PaymentStatusPaid {
		t.Fatalf("expected online payment classification, got %+v", order)
	}
	if order.TotalAmount != total {
		t.Fatalf("expected client total %v, got %v", total, order.TotalAmount)
	}
	if order.Notes != "ring the bell" || order.AddressID == nil || *order.AddressID != 3 {
		t.Fatalf("draft fields lost: %+v", order)
	}
}

func TestOrderNumberOverride(t *testing.T) {
	original := *NewOrderNumber
	t.Cleanup(func() { *NewOrderNumber = original })
	*NewOrderNumber = func() string { return "ORD-1-1" }

	var gotNumber string
	repo := &test.OrderRepositoryStub{PlaceFn: func(ctx context.Context, userID int64, number string, draft model.OrderDraft) (*model.Order, error) {
		gotNumber = number
		return &model.Order{Number: number}, nil
	}}
	uc := NewOrderUseCase(repo)
	if _, err := uc.Place(context.Background(), 1, model.OrderDraft{Items: []model.DraftItem{{ProductID: 1, Quantity: 1}}}); err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if gotNumber != "ORD-1-1" {
		t.Fatalf("expected injected number, got %q", gotNumber)
	}
}

func TestListByUserAndGetByID(t *testing.T) {
	repo := &test.OrderRepositoryStub{
		ListByUserFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
			return []model.Order{{ID: 2, UserID: userID}, {ID: 1, UserID: userID}}, nil
		},
		GetByIDFn: func(ctx context.Context, userID, orderID int64) (*model.Order, error) {
			if orderID != 2 {
				return nil, domainErrors.ErrNotFound
			}
			return &model.Order{ID: 2, UserID: userID}, nil
		},
	}
	uc := NewOrderUseCase(repo)

	orders, err := uc.ListByUser(context.Background(), 7)
	if err != nil || len(orders) != 2 {
		t.Fatalf("unexpected list result: %v %v", orders, err)
	}

	if _, err := uc.GetByID(context.Background(), 7, 2); err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if _, err := uc.GetByID(context.Background(), 7, 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
