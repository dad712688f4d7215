package model

import "time"

// Category groups products for browsing.
type Category struct {
	ID           int64
	Name         string
	Slug         string
	ProductCount int64
	CreatedAt    time.Time
}

// Product is one catalog entry.
type Product struct {
	ID              int64
	CategoryID      int64
	CategoryName    string
	CategorySlug    string
	Title           string
	Slug            string
	Description     string
	Price           float64
	OfferPercentage float64
	Stock           int
	ImageURL        string
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
