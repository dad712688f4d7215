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

// OrderHandler serves checkout and the caller's order history.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/user/orders: it converts the submitted cart
// snapshot into a persistent order and clears the cart, all in one
// transaction.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Order == nil {
		respondError(c, http.StatusBadRequest, "order items are required")
		return
	}

	draft := draftFromPayload(req.Order)
	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), draft)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "order items are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to place order")
		return
	}

	resp := toOrderResponse(order, req.Order.DeliveryAddress)
	if req.Order.PaymentID != "" {
		resp.PaymentID = req.Order.PaymentID
	}
	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		Order:   resp,
		Orders:  []dto.OrderResponse{resp},
		Message: "order placed successfully",
	})
}

// List handles GET /api/user/orders, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i], nil))
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Orders: out})
}

// Get handles GET /api/user/orders/:orderId, scoped to the caller.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load order")
		return
	}
	c.JSON(http.StatusOK, dto.SingleOrderResponse{Success: true, Order: toOrderResponse(order, nil)})
}

func draftFromPayload(p *dto.OrderPayload) model.OrderDraft {
	items := make([]model.DraftItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, model.DraftItem{
			ProductID: it.ID,
			Title:     it.Title,
			ImageURL:  it.ImageURL,
			Quantity:  it.Qty,
			Price:     it.Price,
		})
	}

	draft := model.OrderDraft{
		Items:      items,
		PaymentID:  p.PaymentID,
		TotalPrice: p.TotalPrice,
		Notes:      p.Notes,
	}
	if p.DeliveryAddress != nil {
		if addressID, err := strconv.ParseInt(p.DeliveryAddress.ID, 10, 64); err == nil && addressID > 0 {
			draft.AddressID = &addressID
		}
	}
	return draft
}
