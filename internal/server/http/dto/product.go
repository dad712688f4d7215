package dto

import "time"

// ProductResponse is the catalog view of a product.
type ProductResponse struct {
	ID              int64     `json:"id"`
	CategoryID      int64     `json:"categoryId"`
	CategoryName    string    `json:"categoryName,omitempty"`
	CategorySlug    string    `json:"categorySlug,omitempty"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	OfferPercentage float64   `json:"offerPercentage"`
	Stock           int       `json:"stock"`
	ImageURL        string    `json:"imageUrl"`
	IsAvailable     bool      `json:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProductsResponse lists catalog products.
type ProductsResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}

// SingleProductResponse wraps one product.
type SingleProductResponse struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

// CategoryResponse is one browsable category.
type CategoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int64  `json:"productCount"`
}

// CategoriesResponse lists categories.
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}

// ProductRequest is the admin create/update payload.
type ProductRequest struct {
	CategoryID      int64   `json:"categoryId"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	OfferPercentage float64 `json:"offerPercentage"`
	Stock           int     `json:"stock"`
	ImageURL        string  `json:"imageUrl"`
	IsAvailable     *bool   `json:"isAvailable"`
}
