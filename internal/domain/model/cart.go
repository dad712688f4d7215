package model

import "time"

// CartLine is one product+quantity entry of a user's pre-checkout selection,
// joined with the live product for display. Quantity is always at least one;
// decrementing past one deletes the line.
type CartLine struct {
	ID              int64
	UserID          int64
	ProductID       int64
	Title           string
	Slug            string
	Price           float64
	ImageURL        string
	Stock           int
	OfferPercentage float64
	Quantity        int
	Subtotal        float64
	CreatedAt       time.Time
}
