package model

import "time"

// Vendor is a supplier the production team orders from.
type Vendor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ContactName *string    `json:"contact_name,omitempty"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Status      string     `json:"status"`
	InvitedAt   *time.Time `json:"invited_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// VendorsSummary is the aggregate strip above the vendors table.
type VendorsSummary struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Pending int64 `json:"pending"`
}

// Process is one production process (printing, binding, lamination...).
type Process struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
