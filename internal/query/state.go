package query

import (
	"sync"
	"time"

	"printduka-admin/pkg/paginator"
)

// State holds the current filter/sort/page selections of one list view.
//
// It is owned by exactly one view instance, is never shared across views,
// and cannot fail: every mutation is pure in-memory state. Concurrent use
// is safe; the encoder observes mutations on its next Snapshot.
type State struct {
	mu     sync.Mutex
	schema Schema

	filters map[string]string

	// searchRaw tracks keystrokes for UI responsiveness; search is the
	// debounced value and the only one requests are built from.
	searchRaw string
	search    string
	debouncer *Debouncer

	page     int
	pageSize int

	// searchSettled fires after a quiet period adopts a new search value.
	searchSettled func()
}

// StateOption customizes a State.
type StateOption func(*State)

// WithQuietPeriod overrides the search debounce interval.
func WithQuietPeriod(quiet time.Duration) StateOption {
	return func(s *State) {
		s.debouncer = NewDebouncer(quiet, s.adoptSearch)
	}
}

// WithSearchSettled registers a callback invoked after a debounced search
// value is adopted. The list session uses it to re-issue the query.
func WithSearchSettled(fn func()) StateOption {
	return func(s *State) {
		s.searchSettled = fn
	}
}

// NewState creates the state for one list view with every filter at its
// unset sentinel, page 1 and the default page size.
func NewState(schema Schema, opts ...StateOption) *State {
	s := &State{
		schema:   schema,
		filters:  make(map[string]string, len(schema.Fields)),
		page:     paginator.DefaultPage,
		pageSize: paginator.DefaultPageSize,
	}
	for _, f := range schema.Fields {
		s.filters[f.Name] = f.Unset
	}
	s.debouncer = NewDebouncer(DefaultQuietPeriod, s.adoptSearch)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFilter sets one filter and resets the page to 1: changing any filter
// invalidates the current page position. Values are opaque strings; the
// backend is the source of truth for valid ranges.
func (s *State) SetFilter(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters[name] = value
	s.page = paginator.DefaultPage
}

// Filter returns the current value of one filter.
func (s *State) Filter(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.filters[name]; ok {
		return value
	}
	return s.schema.lookup(name).Unset
}

// SetSearchText updates the raw search box value immediately and restarts
// the quiet-period timer. Only after the timer settles does the value
// reach the encoder, bounding request volume during typing.
func (s *State) SetSearchText(value string) {
	s.mu.Lock()
	s.searchRaw = value
	s.mu.Unlock()
	s.debouncer.Trigger(value)
}

// SearchText returns the raw (non-debounced) search box value.
func (s *State) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchRaw
}

// FlushSearch adopts any pending search value immediately.
func (s *State) FlushSearch() {
	s.debouncer.Flush()
}

// SetPage moves to another page of the current result set.
func (s *State) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = paginator.DefaultPage
	}
	s.page = page
}

// SetPageSize changes the page size and resets the page to 1, so the user
// never lands on a now-invalid page.
func (s *State) SetPageSize(pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pageSize < 1 {
		pageSize = paginator.DefaultPageSize
	}
	s.pageSize = pageSize
	s.page = paginator.DefaultPage
}

// Reset restores every filter to its unset sentinel, clears the search box
// and returns to page 1. The page size is a display preference and sticks.
func (s *State) Reset() {
	s.debouncer.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range s.filters {
		s.filters[name] = s.schema.lookup(name).Unset
	}
	s.searchRaw = ""
	s.search = ""
	s.page = paginator.DefaultPage
}

// Close cancels any pending debounce timer. Called on view teardown;
// filter state does not persist across navigation.
func (s *State) Close() {
	s.debouncer.Stop()
}

// Snapshot captures the semantic value of the state: active filters only,
// already mapped to their wire parameter names. Two states that differ
// only in mutation order produce equal snapshots.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	params := make(map[string]string)
	for name, value := range s.filters {
		field := s.schema.lookup(name)
		if value == field.Unset {
			continue
		}
		params[field.param()] = value
	}

	return Snapshot{
		Resource: s.schema.Resource,
		Params:   params,
		Search:   s.search,
		Page:     s.page,
		PageSize: s.pageSize,
	}
}

// adoptSearch is the debounce settle point: the quiet period elapsed with
// no further keystrokes.
func (s *State) adoptSearch(value string) {
	s.mu.Lock()
	changed := s.search != value
	s.search = value
	if changed {
		s.page = paginator.DefaultPage
	}
	settled := s.searchSettled
	s.mu.Unlock()

	if changed && settled != nil {
		settled()
	}
}
