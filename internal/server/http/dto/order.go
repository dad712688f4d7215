package dto

import "time"

// OrderItemPayload is one submitted cart line snapshot.
type OrderItemPayload struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// OrderPayload is the checkout request body.
type OrderPayload struct {
	Items           []OrderItemPayload `json:"items"`
	PaymentID       string             `json:"paymentId"`
	TotalPrice      *float64           `json:"totalPrice"`
	DeliveryAddress *AddressResponse   `json:"deliveryAddress"`
	Notes           string             `json:"notes"`
}

// CreateOrderRequest wraps the checkout payload.
type CreateOrderRequest struct {
	Order *OrderPayload `json:"order"`
}

// OrderItemResponse is one line item of an order. ID carries the product
// identifier snapshot.
type OrderItemResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal,omitempty"`
}

// OrderResponse carries an order with both canonical and display-friendly
// aliases (totalAmount/totalPrice, createdAt/orderDate) the client renders.
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	AddressID       *int64              `json:"addressId"`
	OrderNumber     string              `json:"orderNumber"`
	TotalAmount     float64             `json:"totalAmount"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentStatus   string              `json:"paymentStatus"`
	PaymentID       string              `json:"paymentId"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	OrderDate       time.Time           `json:"orderDate"`
	DeliveryAddress *AddressResponse    `json:"deliveryAddress"`
	Items           []OrderItemResponse `json:"items"`
}

// CreateOrderResponse confirms a placed order. Orders repeats the single
// order for client compatibility.
type CreateOrderResponse struct {
	Success bool            `json:"success"`
	Order   OrderResponse   `json:"order"`
	Orders  []OrderResponse `json:"orders"`
	Message string          `json:"message"`
}

// OrdersResponse lists the caller's orders.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// SingleOrderResponse wraps one order.
type SingleOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}
