package paginator

import "encoding/json"

// Page is the paginated collection envelope returned by the backend:
// a filtered total, opaque next/previous cursors, the current page of
// results, and an optional summary block of aggregate metrics that is
// independent of which page is being viewed.
//
// Count reflects the filtered total, not len(Results);
// len(Results) never exceeds the requested page size.
type Page[T any] struct {
	Count    int64           `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []T             `json:"results"`
	Summary  json.RawMessage `json:"summary,omitempty"`
}

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// HasPrevious reports whether a previous page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Previous != nil && *p.Previous != ""
}

// DecodeSummary decodes the page's summary block into S.
// Returns the zero value and false when no summary was returned.
func DecodeSummary[S any](raw json.RawMessage) (S, bool) {
	var summary S
	if len(raw) == 0 {
		return summary, false
	}
	if err := json.Unmarshal(raw, &summary); err != nil {
		return summary, false
	}
	return summary, true
}
