package paginator

import (
	"encoding/json"
	"testing"
)

func TestPaginateQueryAdjust(t *testing.T) {
	tests := []struct {
		name         string
		query        PaginateQuery
		wantPage     int
		wantPageSize int
	}{
		{"defaults applied", PaginateQuery{}, DefaultPage, DefaultPageSize},
		{"negative page", PaginateQuery{Page: -3, PageSize: 10}, DefaultPage, 10},
		{"oversized page size capped", PaginateQuery{Page: 2, PageSize: 5000}, 2, MaxPageSize},
		{"valid untouched", PaginateQuery{Page: 3, PageSize: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Adjust()
			if tt.query.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.query.Page, tt.wantPage)
			}
			if tt.query.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.query.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPaginateSlice(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		query     PaginateQuery
		wantLen   int
		wantFirst int
	}{
		{"first page", PaginateQuery{Page: 1, PageSize: 20}, 20, 0},
		{"middle page", PaginateQuery{Page: 2, PageSize: 20}, 20, 20},
		{"short last page", PaginateQuery{Page: 3, PageSize: 20}, 5, 40},
		{"past the end", PaginateQuery{Page: 9, PageSize: 20}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total := PaginateSlice(items, tt.query)
			if total != 45 {
				t.Errorf("total = %d, want 45", total)
			}
			if len(page) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(page), tt.wantLen)
			}
			if tt.wantLen > 0 && page[0] != tt.wantFirst {
				t.Errorf("first = %d, want %d", page[0], tt.wantFirst)
			}
		})
	}
}

func TestPageDecoding(t *testing.T) {
	body := `{
		"count": 3,
		"next": "http://x/api/v1/lpos/?page=2",
		"previous": null,
		"results": [{"id": "lpo-001"}, {"id": "lpo-002"}],
		"summary": {"total": 3, "total_amount": "76650.00"}
	}`

	type lpo struct {
		ID string `json:"id"`
	}
	var page Page[lpo]
	if err := json.Unmarshal([]byte(body), &page); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if page.Count != 3 {
		t.Errorf("Count = %d, want 3", page.Count)
	}
	if !page.HasNext() {
		t.Error("HasNext() should be true")
	}
	if page.HasPrevious() {
		t.Error("HasPrevious() should be false")
	}
	if len(page.Results) != 2 || page.Results[0].ID != "lpo-001" {
		t.Errorf("Results = %+v", page.Results)
	}

	type summary struct {
		Total       int64  `json:"total"`
		TotalAmount string `json:"total_amount"`
	}
	s, ok := DecodeSummary[summary](page.Summary)
	if !ok {
		t.Fatal("DecodeSummary failed")
	}
	if s.Total != 3 || s.TotalAmount != "76650.00" {
		t.Errorf("summary = %+v", s)
	}
}

func TestTotalPages(t *testing.T) {
	q := PaginateQuery{Page: 1, PageSize: 20}
	if got := q.TotalPages(45); got != 3 {
		t.Errorf("TotalPages(45) = %d, want 3", got)
	}
	if got := q.TotalPages(0); got != 0 {
		t.Errorf("TotalPages(0) = %d, want 0", got)
	}
}
