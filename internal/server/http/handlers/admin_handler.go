package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/server/http/dto"
)

// AdminHandler serves the dashboard analytics and store-wide order
// management. Routes are gated by the admin middleware.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Analytics handles GET /api/admin/analytics.
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	recent := make([]dto.RecentOrderResponse, 0, len(analytics.RecentOrders))
	for _, o := range analytics.RecentOrders {
		recent = append(recent, dto.RecentOrderResponse{
			ID:            o.ID,
			OrderNumber:   o.Number,
			TotalAmount:   o.TotalAmount,
			Status:        string(o.Status),
			CustomerEmail: o.CustomerEmail,
			CreatedAt:     o.CreatedAt,
		})
	}
	chart := make([]dto.SalesPointResponse, 0, len(analytics.SalesChart))
	for _, p := range analytics.SalesChart {
		chart = append(chart, dto.SalesPointResponse{
			Date:       p.Date,
			OrderCount: p.OrderCount,
			DailySales: p.DailySales,
		})
	}

	c.JSON(http.StatusOK, dto.AnalyticsEnvelope{
		Success: true,
		Analytics: dto.AnalyticsResponse{
			TotalSales:     strconv.FormatFloat(analytics.TotalSales, 'f', 2, 64),
			TotalOrders:    analytics.TotalOrders,
			ActiveOrders:   analytics.ActiveOrders,
			TotalCustomers: analytics.TotalCustomers,
			LowStockItems:  analytics.LowStockItems,
			RecentOrders:   recent,
			SalesChart:     chart,
		},
	})
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load orders")
		return
	}

	out := make([]dto.AdminOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.AdminOrderResponse{
			ID:            o.ID,
			OrderNumber:   o.Number,
			CustomerID:    o.CustomerID,
			CustomerEmail: o.CustomerEmail,
			TotalAmount:   o.TotalAmount,
			Status:        string(o.Status),
			PaymentMethod: string(o.PaymentMethod),
			PaymentStatus: string(o.PaymentStatus),
			CreatedAt:     o.CreatedAt,
			Items:         toOrderItemResponses(o.Items),
		})
	}
	c.JSON(http.StatusOK, dto.AdminOrdersResponse{Success: true, Orders: out})
}

// UpdateStatus handles PUT /api/admin/orders/:orderId/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "invalid order status")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "order not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update order status")
		}
		return
	}
	c.JSON(http.StatusOK, dto.SingleOrderResponse{Success: true, Order: toOrderResponse(order, nil)})
}
