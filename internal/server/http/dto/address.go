package dto

import "time"

// AddressResponse mirrors the address shape the web client expects. The
// string identifier field name is kept for client compatibility.
type AddressResponse struct {
	ID        string     `json:"_id"`
	UserID    int64      `json:"userId,omitempty"`
	Name      string     `json:"name"`
	Street    string     `json:"street"`
	City      string     `json:"city"`
	State     string     `json:"state"`
	ZipCode   string     `json:"zipCode"`
	Country   string     `json:"country"`
	Mobile    string     `json:"mobile"`
	IsDefault bool       `json:"isDefault"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// AddressesResponse lists the caller's addresses.
type AddressesResponse struct {
	Success   bool              `json:"success"`
	Addresses []AddressResponse `json:"addresses"`
}

// SingleAddressResponse wraps one address.
type SingleAddressResponse struct {
	Success bool            `json:"success"`
	Address AddressResponse `json:"address"`
}

// AddressRequest is the create/update payload.
type AddressRequest struct {
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Mobile    string `json:"mobile"`
	IsDefault bool   `json:"isDefault"`
}
