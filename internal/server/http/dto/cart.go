package dto

// CartItemResponse is one cart line joined with the live product. ID carries
// the product identifier; CartID identifies the line itself.
type CartItemResponse struct {
	ID              int64   `json:"id"`
	CartID          int64   `json:"cartId"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"imageUrl"`
	Stock           int     `json:"stock"`
	OfferPercentage float64 `json:"offerPercentage"`
	Qty             int     `json:"qty"`
	Subtotal        float64 `json:"subtotal,omitempty"`
}

// CartResponse is the full cart envelope returned by every cart operation.
type CartResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Cart    []CartItemResponse `json:"cart"`
}

// AddToCartRequest carries the product to add.
type AddToCartRequest struct {
	Product struct {
		ID int64 `json:"id"`
	} `json:"product"`
}

// UpdateCartRequest carries the quantity action for a cart line.
type UpdateCartRequest struct {
	Action struct {
		Type string `json:"type"`
	} `json:"action"`
}
