package model

import "time"

// OrderStatus describes order fulfilment lifecycle. Only an admin may move an
// order out of pending after creation.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s belongs to the closed status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod classifies how an order is paid for.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// PaymentStatus tracks whether payment has been collected.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// DirectPaymentID is the sentinel payment indicator for the cash-on-delivery path.
const DirectPaymentID = "DIRECT"

// ClassifyPayment maps the client payment indicator to method and status.
// Anything other than the direct sentinel is treated as an already settled
// online payment; this is a classification, not payment verification.
func ClassifyPayment(paymentID string) (PaymentMethod, PaymentStatus) {
	if paymentID == DirectPaymentID {
		return PaymentMethodCOD, PaymentStatusPending
	}
	return PaymentMethodOnline, PaymentStatusPaid
}

// OrderItem is a denormalized snapshot of one product line captured at
// checkout. Historical orders stay stable even when the catalog changes.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	ImageURL    string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// Order is an immutable purchase record derived from a cart at checkout time.
type Order struct {
	ID            int64
	UserID        int64
	AddressID     *int64
	Number        string
	TotalAmount   float64
	Status        OrderStatus
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Notes         string
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderDraft carries the validated checkout request into the placement
// transaction.
type OrderDraft struct {
	Items      []DraftItem
	PaymentID  string
	TotalPrice *float64
	AddressID  *int64
	Notes      string
}

// DraftItem is one cart line snapshot submitted by the client.
type DraftItem struct {
	ProductID int64
	Title     string
	ImageURL  string
	Quantity  int
	Price     float64
}

// Total returns the client-supplied total when present, otherwise the sum of
// quantity times unit price across all lines.
func (d OrderDraft) Total() float64 {
	if d.TotalPrice != nil {
		return *d.TotalPrice
	}
	var sum float64
	for _, it := range d.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
