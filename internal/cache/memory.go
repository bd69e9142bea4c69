package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"printduka-admin/internal/query"
)

// DefaultTTL bounds how long a cached list stays fresh without an
// explicit invalidation.
const DefaultTTL = 5 * time.Minute

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// Memory is an in-process Cache. Entries are grouped per resource so
// invalidating a resource family is a single atomic drop; a generation
// counter keeps fetches that were already in flight when the invalidation
// happened from writing a stale entry back.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]map[string]memoryEntry // resource -> query -> entry
	gens    map[string]uint64

	group singleflight.Group
}

// NewMemory creates an in-process cache. A non-positive ttl falls back to
// DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]map[string]memoryEntry),
		gens:    make(map[string]uint64),
	}
}

// Do implements Cache.
func (m *Memory) Do(ctx context.Context, key query.Key, fetch FetchFunc) ([]byte, error) {
	if body, ok := m.get(key); ok {
		return body, nil
	}

	body, err, _ := m.group.Do(key.String(), func() (any, error) {
		// Double-check under the flight: a concurrent caller may have
		// populated the entry while this one queued.
		if cached, ok := m.get(key); ok {
			return cached, nil
		}
		gen := m.generation(key.Resource)
		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		m.set(key, fetched, gen)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

// Invalidate implements Cache.
func (m *Memory) Invalidate(_ context.Context, resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, resource)
	m.gens[resource]++
	return nil
}

func (m *Memory) generation(resource string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gens[resource]
}

func (m *Memory) get(key query.Key) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	family, ok := m.entries[key.Resource]
	if !ok {
		return nil, false
	}
	entry, ok := family[key.Query]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(family, key.Query)
		return nil, false
	}
	return entry.body, true
}

func (m *Memory) set(key query.Key, body []byte, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gens[key.Resource] != gen {
		// The resource family was invalidated while this fetch was in
		// flight; caching the result would resurrect stale data.
		return
	}
	family, ok := m.entries[key.Resource]
	if !ok {
		family = make(map[string]memoryEntry)
		m.entries[key.Resource] = family
	}
	family[key.Query] = memoryEntry{body: body, expiresAt: time.Now().Add(m.ttl)}
}
