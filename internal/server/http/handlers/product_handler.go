package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/server/http/dto"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

// ProductHandler serves the public catalog and the admin product mutations.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load products")
		return
	}
	c.JSON(http.StatusOK, dto.ProductsResponse{Success: true, Products: toProductResponses(products)})
}

// Get handles GET /api/products/:id, accepting an id or a slug.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load product")
		return
	}
	c.JSON(http.StatusOK, dto.SingleProductResponse{Success: true, Product: toProductResponse(*product)})
}

// Categories handles GET /api/categories.
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load categories")
		return
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryResponse{
			ID:           cat.ID,
			Name:         cat.Name,
			Slug:         cat.Slug,
			ProductCount: cat.ProductCount,
		})
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: out})
}

// ByCategory handles GET /api/categories/:categoryID/products.
func (h *ProductHandler) ByCategory(c *gin.Context) {
	products, err := h.facade.ProductsByCategory(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load products")
		return
	}
	c.JSON(http.StatusOK, dto.ProductsResponse{Success: true, Products: toProductResponses(products)})
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	in, ok := bindProductInput(c)
	if !ok {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "invalid product data")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondError(c, http.StatusConflict, "product already exists")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create product")
		}
		return
	}
	c.JSON(http.StatusCreated, dto.SingleProductResponse{Success: true, Product: toProductResponse(*product)})
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid product id")
		return
	}
	in, ok := bindProductInput(c)
	if !ok {
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), productID, in)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "invalid product data")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "product not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update product")
		}
		return
	}
	c.JSON(http.StatusOK, dto.SingleProductResponse{Success: true, Product: toProductResponse(*product)})
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product deleted"})
}

func bindProductInput(c *gin.Context) (usecase.ProductInput, bool) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return usecase.ProductInput{}, false
	}

	in := usecase.ProductInput{
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		OfferPercentage: req.OfferPercentage,
		Stock:           req.Stock,
		ImageURL:        req.ImageURL,
		IsAvailable:     true,
	}
	if req.IsAvailable != nil {
		in.IsAvailable = *req.IsAvailable
	}
	return in, true
}
