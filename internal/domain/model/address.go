package model

import "time"

// Address is a delivery address owned by a user. At most one address per user
// is the default.
type Address struct {
	ID         int64
	UserID     int64
	Name       string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Mobile     string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
