package model

import "testing"

func TestValidOrderStatus(t *testing.T) {
	valid := []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled}
	for _, s := range valid {
		if !ValidOrderStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "shipped", "PENDING", "done"} {
		if ValidOrderStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestClassifyPayment(t *testing.T) {
	method, status := ClassifyPayment(DirectPaymentID)
	if method != PaymentMethodCOD || status != PaymentStatusPending {
		t.Fatalf("unexpected classification for direct payment: %q %q", method, status)
	}

	for _, id := range []string{"pay_abc123", "", "direct"} {
		method, status := ClassifyPayment(id)
		if method != PaymentMethodOnline || status != PaymentStatusPaid {
			t.Fatalf("unexpected classification for %q: %q %q", id, method, status)
		}
	}
}

func TestOrderDraftTotal(t *testing.T) {
	draft := OrderDraft{
		Items: []DraftItem{
			{ProductID: 1, Quantity: 2, Price: 5.5},
			{ProductID: 2, Quantity: 1, Price: 3.25},
		},
	}
	if got := draft.Total(); got != 14.25 {
		t.Fatalf("expected computed total 14.25, got %v", got)
	}

	clientTotal := 99.0
	draft.TotalPrice = &clientTotal
	if got := draft.Total(); got != 99.0 {
		t.Fatalf("expected client total to win, got %v", got)
	}

	if got := (OrderDraft{}).Total(); got != 0 {
		t.Fatalf("expected zero total for empty draft, got %v", got)
	}
}
