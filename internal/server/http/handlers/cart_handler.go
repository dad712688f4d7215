package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/server/http/dto"
)

// CartHandler serves the authenticated cart operations. Every mutation
// responds with the refreshed cart so the client never diverges.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/user/cart.
func (h *CartHandler) Get(c *gin.Context) {
	lines, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load cart")
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Cart: toCartResponse(lines)})
}

// Add handles POST /api/user/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	lines, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.Product.ID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "product id is required")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "product not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to add to cart")
		}
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Message: "added to cart", Cart: toCartResponse(lines)})
}

// ChangeQuantity handles POST /api/user/cart/:id with an increment or
// decrement action.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid cart item id")
		return
	}
	var req dto.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var delta int
	switch req.Action.Type {
	case "increment":
		delta = 1
	case "decrement":
		delta = -1
	default:
		respondError(c, http.StatusBadRequest, "unknown cart action")
		return
	}

	lines, err := h.facade.ChangeCartQuantity(c.Request.Context(), CurrentUserID(c), lineID, delta)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "cart item not found")
		case errors.Is(err, domainErrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "unknown cart action")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update cart")
		}
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Message: "cart updated", Cart: toCartResponse(lines)})
}

// Remove handles DELETE /api/user/cart/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid cart item id")
		return
	}

	lines, err := h.facade.RemoveFromCart(c.Request.Context(), CurrentUserID(c), lineID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "cart item not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to remove from cart")
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Message: "removed from cart", Cart: toCartResponse(lines)})
}

// Clear handles DELETE /api/user/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Message: "cart cleared", Cart: []dto.CartItemResponse{}})
}
