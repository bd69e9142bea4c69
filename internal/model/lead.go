package model

import "time"

// Lead is a prospective customer; qualified leads convert to quotes.
type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Company     *string    `json:"company,omitempty"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	QualifiedAt *time.Time `json:"qualified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LeadsSummary is the aggregate strip above the leads table.
type LeadsSummary struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Qualified int64 `json:"qualified"`
	Converted int64 `json:"converted"`
}
