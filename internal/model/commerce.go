package model

import (
	"time"

	"printduka-admin/pkg/money"
)

// Payment is a recorded customer payment.
type Payment struct {
	ID            string       `json:"id"`
	JobID         *string      `json:"job_id,omitempty"`
	Amount        money.Amount `json:"amount"`
	PaymentMethod string       `json:"payment_method"`
	Status        string       `json:"status"`
	Reference     *string      `json:"reference,omitempty"`
	PaidAt        *time.Time   `json:"paid_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// PaymentsSummary aggregates the filtered payment set, independent of
// which page is being viewed.
type PaymentsSummary struct {
	Total       int64        `json:"total"`
	TotalAmount money.Amount `json:"total_amount"`
	Pending     int64        `json:"pending"`
	Confirmed   int64        `json:"confirmed"`
}

// LPO is a local purchase order issued to a vendor.
type LPO struct {
	ID        string       `json:"id"`
	Number    string       `json:"number"`
	VendorID  string       `json:"vendor_id"`
	Total     money.Amount `json:"total"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// LPOsSummary is the aggregate strip above the LPO table.
type LPOsSummary struct {
	Total       int64        `json:"total"`
	TotalAmount money.Amount `json:"total_amount"`
	Pending     int64        `json:"pending"`
	Approved    int64        `json:"approved"`
}

// Quote is a priced offer to a customer; approved quotes convert to jobs.
type Quote struct {
	ID           string       `json:"id"`
	Number       string       `json:"number"`
	CustomerID   string       `json:"customer_id"`
	CustomerName *string      `json:"customer_name,omitempty"`
	Total        money.Amount `json:"total"`
	Status       string       `json:"status"`
	ValidUntil   Date         `json:"valid_until"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// QuotesSummary is the aggregate strip above the quotes table.
type QuotesSummary struct {
	Total       int64        `json:"total"`
	TotalAmount money.Amount `json:"total_amount"`
	Draft       int64        `json:"draft"`
	Sent        int64        `json:"sent"`
	Approved    int64        `json:"approved"`
}
