package model

import "time"

// Job is one production job moving through the shop floor.
type Job struct {
	ID             string    `json:"id"`
	Number         string    `json:"number"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	AssignedTo     *string   `json:"assigned_to,omitempty"`
	DeliveryMethod string    `json:"delivery_method"`
	DueDate        Date      `json:"due_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobsSummary is the aggregate strip above the jobs table.
type JobsSummary struct {
	Total      int64 `json:"total"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Overdue    int64 `json:"overdue"`
}

// Delivery tracks the handover of a finished job.
type Delivery struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	Status        string     `json:"status"`
	Method        string     `json:"method"`
	ScheduledDate Date       `json:"scheduled_date"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// QualityCheck is a QC pass over a job before delivery.
type QualityCheck struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Result    string    `json:"result"`
	Notes     *string   `json:"notes,omitempty"`
	CheckedBy *string   `json:"checked_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
