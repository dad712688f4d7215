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

// AddressHandler serves delivery address management, always scoped to the
// authenticated owner.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler creates AddressHandler instance.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// List handles GET /api/user/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load addresses")
		return
	}
	out := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressResponse(a))
	}
	c.JSON(http.StatusOK, dto.AddressesResponse{Success: true, Addresses: out})
}

// Create handles POST /api/user/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	address, err := h.facade.AddAddress(c.Request.Context(), addressFromRequest(req, CurrentUserID(c), 0))
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "street, city and state are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save address")
		return
	}
	c.JSON(http.StatusCreated, dto.SingleAddressResponse{Success: true, Address: toAddressResponse(*address)})
}

// Update handles PUT /api/user/addresses/:id.
func (h *AddressHandler) Update(c *gin.Context) {
	addressID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid address id")
		return
	}
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	address, err := h.facade.UpdateAddress(c.Request.Context(), addressFromRequest(req, CurrentUserID(c), addressID))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "street, city and state are required")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "address not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to save address")
		}
		return
	}
	c.JSON(http.StatusOK, dto.SingleAddressResponse{Success: true, Address: toAddressResponse(*address)})
}

// Delete handles DELETE /api/user/addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	addressID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid address id")
		return
	}

	if err := h.facade.DeleteAddress(c.Request.Context(), CurrentUserID(c), addressID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "address not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete address")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "address deleted"})
}

func addressFromRequest(req dto.AddressRequest, userID, addressID int64) model.Address {
	return model.Address{
		ID:         addressID,
		UserID:     userID,
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.ZipCode,
		Country:    req.Country,
		Mobile:     req.Mobile,
		IsDefault:  req.IsDefault,
	}
}
