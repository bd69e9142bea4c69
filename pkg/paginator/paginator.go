package paginator

import "math"

const (
	// DefaultPage is the default page number when an invalid page is provided.
	DefaultPage = 1
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20
	// MaxPageSize is the maximum number of items per page to prevent
	// excessive queries.
	MaxPageSize = 100
)

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page     int `json:"page" form:"page"`           // Page number (1-indexed)
	PageSize int `json:"page_size" form:"page_size"` // Number of items per page
}

// Adjust normalizes the pagination parameters to valid values.
// Sets defaults if values are invalid and enforces the maximum page size.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	} else if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset calculates the offset for the current page.
// Returns the number of items to skip before returning results.
func (p PaginateQuery) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages calculates the number of pages needed for total items.
func (p PaginateQuery) TotalPages(total int64) int {
	if total == 0 || p.PageSize == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.PageSize)))
}
