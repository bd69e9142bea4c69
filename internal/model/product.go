package model

import (
	"time"

	"printduka-admin/pkg/money"
)

// Product is a sellable item in the catalogue. BasePrice arrives from the
// backend as either a number or a decimal string; money.Amount absorbs both.
type Product struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	VendorID  *string      `json:"vendor_id,omitempty"`
	BasePrice money.Amount `json:"base_price"`
	ImageURL  *string      `json:"image_url,omitempty"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ProductsSummary is the aggregate strip above the products table.
type ProductsSummary struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Archived  int64 `json:"archived"`
}
