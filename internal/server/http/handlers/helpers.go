package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/server/http/dto"
	"github.com/loopbakery/bakeshop/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return 0
	}
	return identity.UserID
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Message: message})
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      string(u.Role),
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		CategoryName:    p.CategoryName,
		CategorySlug:    p.CategorySlug,
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		OfferPercentage: p.OfferPercentage,
		Stock:           p.Stock,
		ImageURL:        p.ImageURL,
		IsAvailable:     p.IsAvailable,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toCartResponse(lines []model.CartLine) []dto.CartItemResponse {
	out := make([]dto.CartItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartItemResponse{
			ID:              l.ProductID,
			CartID:          l.ID,
			Title:           l.Title,
			Slug:            l.Slug,
			Price:           l.Price,
			ImageURL:        l.ImageURL,
			Stock:           l.Stock,
			OfferPercentage: l.OfferPercentage,
			Qty:             l.Quantity,
			Subtotal:        l.Subtotal,
		})
	}
	return out
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	createdAt, updatedAt := a.CreatedAt, a.UpdatedAt
	return dto.AddressResponse{
		ID:        strconv.FormatInt(a.ID, 10),
		UserID:    a.UserID,
		Name:      a.Name,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.PostalCode,
		Country:   a.Country,
		Mobile:    a.Mobile,
		IsDefault: a.IsDefault,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

func toOrderItemResponses(items []model.OrderItem) []dto.OrderItemResponse {
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemResponse{
			ID:       it.ProductID,
			Title:    it.ProductName,
			ImageURL: it.ImageURL,
			Qty:      it.Quantity,
			Price:    it.Price,
			Subtotal: it.Subtotal,
		})
	}
	return out
}

func toOrderResponse(o *model.Order, deliveryAddress *dto.AddressResponse) dto.OrderResponse {
	paymentID := "ONLINE"
	if o.PaymentMethod == model.PaymentMethodCOD {
		paymentID = model.DirectPaymentID
	}
	return dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		AddressID:       o.AddressID,
		OrderNumber:     o.Number,
		TotalAmount:     o.TotalAmount,
		TotalPrice:      o.TotalAmount,
		Status:          string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentID:       paymentID,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		OrderDate:       o.CreatedAt,
		DeliveryAddress: deliveryAddress,
		Items:           toOrderItemResponses(o.Items),
	}
}
