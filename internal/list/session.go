// Package list drives one list page: filter edits funnel through the
// filter state, settle into a query key, and resolve into a table page,
// a summary strip and pagination — or a typed error the page can render.
package list

import (
	"context"
	"sync"
	"time"

	"printduka-admin/internal/query"
	"printduka-admin/internal/resource"
	"printduka-admin/pkg/log"
	"printduka-admin/pkg/paginator"
)

// Phase is the page's fetch state. There is no terminal phase; the page
// cycles for as long as filters keep changing.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Fetcher resolves one query key into a typed page.
type Fetcher[T any] func(ctx context.Context, key query.Key) (paginator.Page[T], error)

// View is the read-only snapshot handed to the renderer. The page never
// mutates it; all changes flow back through session methods.
type View[T any] struct {
	Phase Phase
	Key   query.Key
	Page  paginator.Page[T]
	Err   error
}

// Empty reports whether a successful view holds zero results — rendered
// as filter-adjustment guidance, distinct from the error state.
func (v View[T]) Empty() bool {
	return v.Phase == PhaseSuccess && v.Page.Count == 0
}

// Session is the per-page coordinator. Each filter/page/search mutation
// advances a sequence number; a response arriving for a superseded
// sequence is discarded, so the newest query always wins regardless of
// network arrival order.
type Session[T any] struct {
	mu    sync.Mutex
	l     log.Logger
	state *query.State
	fetch Fetcher[T]

	seq   uint64
	phase Phase
	key   query.Key
	page  paginator.Page[T]
	err   error

	baseCtx  context.Context
	onChange func(View[T])
}

// Option customizes a Session.
type Option[T any] func(*sessionConfig)

type sessionConfig struct {
	quiet   time.Duration
	baseCtx context.Context
}

// WithQuietPeriod overrides the search debounce interval (tests shorten it).
func WithQuietPeriod[T any](quiet time.Duration) Option[T] {
	return func(c *sessionConfig) { c.quiet = quiet }
}

// WithBaseContext sets the context used for fetches triggered by timer
// settles, where no caller context exists.
func WithBaseContext[T any](ctx context.Context) Option[T] {
	return func(c *sessionConfig) { c.baseCtx = ctx }
}

// NewSession creates the session for one list page over a resource
// descriptor. onChange, if non-nil, observes every phase transition.
func NewSession[T any](l log.Logger, desc resource.Descriptor, fetch Fetcher[T], onChange func(View[T]), opts ...Option[T]) *Session[T] {
	cfg := sessionConfig{baseCtx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session[T]{
		l:        l,
		fetch:    fetch,
		phase:    PhaseIdle,
		baseCtx:  cfg.baseCtx,
		onChange: onChange,
	}

	stateOpts := []query.StateOption{
		query.WithSearchSettled(func() { s.Refresh(s.baseCtx) }),
	}
	if cfg.quiet > 0 {
		stateOpts = append(stateOpts, query.WithQuietPeriod(cfg.quiet))
	}
	s.state = query.NewState(desc.Schema, stateOpts...)
	return s
}

// Start issues the initial query, moving the page out of idle.
func (s *Session[T]) Start(ctx context.Context) {
	s.Refresh(ctx)
}

// SetFilter sets one filter and re-queries from page 1.
func (s *Session[T]) SetFilter(ctx context.Context, name, value string) {
	s.state.SetFilter(name, value)
	s.Refresh(ctx)
}

// SetSearchText records a keystroke. The query is re-issued only after
// the quiet period settles the debounced value.
func (s *Session[T]) SetSearchText(value string) {
	s.state.SetSearchText(value)
}

// FlushSearch settles any pending search value immediately.
func (s *Session[T]) FlushSearch() {
	s.state.FlushSearch()
}

// SetPage moves to another page and re-queries.
func (s *Session[T]) SetPage(ctx context.Context, page int) {
	s.state.SetPage(page)
	s.Refresh(ctx)
}

// SetPageSize changes the page size, returns to page 1, and re-queries.
func (s *Session[T]) SetPageSize(ctx context.Context, pageSize int) {
	s.state.SetPageSize(pageSize)
	s.Refresh(ctx)
}

// Reset clears all filters and search and re-queries from page 1.
func (s *Session[T]) Reset(ctx context.Context) {
	s.state.Reset()
	s.Refresh(ctx)
}

// Mutate runs a write and, only on success, re-issues the current query
// so the list reflects the mutation. Failures surface to the caller and
// leave the previously-successful list state intact.
func (s *Session[T]) Mutate(ctx context.Context, mutate func(context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Refresh re-issues the query for the current filter state under a fresh
// sequence number.
func (s *Session[T]) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	key := query.KeyFor(s.state.Snapshot())
	s.phase = PhaseLoading
	s.key = key
	view := s.viewLocked()
	s.mu.Unlock()

	s.notify(view)

	go func() {
		page, err := s.fetch(ctx, key)

		s.mu.Lock()
		if seq != s.seq {
			s.mu.Unlock()
			s.l.Debugf(ctx, "list: discarding superseded response for %s", key)
			return
		}
		if err != nil {
			s.phase = PhaseError
			s.err = err
		} else {
			s.phase = PhaseSuccess
			s.page = page
			s.err = nil
		}
		done := s.viewLocked()
		s.mu.Unlock()

		s.notify(done)
	}()
}

// View returns the current read-only snapshot.
func (s *Session[T]) View() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// SearchText returns the raw search box value for rendering.
func (s *Session[T]) SearchText() string {
	return s.state.SearchText()
}

// Close tears the page down, cancelling any pending debounce timer.
// Filter state does not persist across navigation.
func (s *Session[T]) Close() {
	s.state.Close()
}

func (s *Session[T]) viewLocked() View[T] {
	return View[T]{Phase: s.phase, Key: s.key, Page: s.page, Err: s.err}
}

func (s *Session[T]) notify(view View[T]) {
	if s.onChange != nil {
		s.onChange(view)
	}
}
