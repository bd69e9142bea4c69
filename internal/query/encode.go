package query

import (
	"net/url"
	"strconv"
)

// Snapshot is one semantic reading of a State: only active (non-sentinel)
// filters, keyed by wire parameter name, plus the debounced search value
// and pagination. Snapshots are plain values; encoding one is pure.
type Snapshot struct {
	Resource string
	Params   map[string]string
	Search   string
	Page     int
	PageSize int
}

// Key is the canonical identity of one read request, used as the outgoing
// request signature and as the cache/de-duplication key. Semantically
// equal snapshots always yield equal keys.
type Key struct {
	Resource string
	Query    string
}

func (k Key) String() string {
	return k.Resource + "?" + k.Query
}

// Encode deterministically turns a snapshot into the request query string.
//
// Rules: filters at their unset sentinel were already omitted by
// Snapshot(); page and page_size are always included; an ordering filter
// passes through verbatim; date filters are opaque strings. Parameters are
// emitted in sorted order so that identical semantic filters always
// produce an identical string — required for cache-key correctness.
func Encode(s Snapshot) string {
	values := url.Values{}
	for param, value := range s.Params {
		values.Set(param, value)
	}
	if s.Search != "" {
		values.Set("search", s.Search)
	}

	page := s.Page
	if page < 1 {
		page = 1
	}
	pageSize := s.PageSize
	if pageSize < 1 {
		pageSize = 1
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("page_size", strconv.Itoa(pageSize))

	// url.Values.Encode sorts by key.
	return values.Encode()
}

// KeyFor builds the cache/request key for a snapshot.
func KeyFor(s Snapshot) Key {
	return Key{Resource: s.Resource, Query: Encode(s)}
}
