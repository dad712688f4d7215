package dto

import "time"

// RecentOrderResponse is one row of the dashboard recent-orders widget.
type RecentOrderResponse struct {
	ID            int64     `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SalesPointResponse is one day of the dashboard sales chart.
type SalesPointResponse struct {
	Date       time.Time `json:"date"`
	OrderCount int64     `json:"orderCount"`
	DailySales float64   `json:"dailySales"`
}

// AnalyticsResponse aggregates the dashboard numbers. TotalSales is a
// two-decimal string, matching what the dashboard renders.
type AnalyticsResponse struct {
	TotalSales     string                `json:"totalSales"`
	TotalOrders    int64                 `json:"totalOrders"`
	ActiveOrders   int64                 `json:"activeOrders"`
	TotalCustomers int64                 `json:"totalCustomers"`
	LowStockItems  int64                 `json:"lowStockItems"`
	RecentOrders   []RecentOrderResponse `json:"recentOrders"`
	SalesChart     []SalesPointResponse  `json:"salesChart"`
}

// AnalyticsEnvelope wraps the dashboard payload.
type AnalyticsEnvelope struct {
	Success   bool              `json:"success"`
	Analytics AnalyticsResponse `json:"analytics"`
}

// AdminOrderResponse is one order in the admin order list.
type AdminOrderResponse struct {
	ID            int64               `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	CustomerID    int64               `json:"customerId"`
	CustomerEmail string              `json:"customerEmail"`
	TotalAmount   float64             `json:"totalAmount"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items"`
}

// AdminOrdersResponse lists every order for the admin view.
type AdminOrdersResponse struct {
	Success bool                 `json:"success"`
	Orders  []AdminOrderResponse `json:"orders"`
}

// UpdateOrderStatusRequest carries the requested status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
