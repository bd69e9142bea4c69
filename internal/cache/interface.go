package cache

import (
	"context"

	"printduka-admin/internal/query"
)

// FetchFunc produces the raw response body for one query key.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Cache is the shared read cache for list queries, keyed strictly by
// query.Key. It is an explicit injected collaborator, never a process
// singleton, so tests can run independent instances side by side.
//
// Contract: at most one fetch is in flight per key at any time; concurrent
// readers of the same key share the outcome. Invalidate atomically marks
// every entry of one resource family stale, so the next read re-fetches.
type Cache interface {
	// Do returns the cached body for key or, on a miss, runs fetch
	// (de-duplicated per key) and caches the successful result.
	Do(ctx context.Context, key query.Key, fetch FetchFunc) ([]byte, error)

	// Invalidate drops every cached page/filter combination of resource.
	Invalidate(ctx context.Context, resource string) error
}
