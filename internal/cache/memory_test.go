package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"printduka-admin/internal/query"
)

func testKey(resource, q string) query.Key {
	return query.Key{Resource: resource, Query: q}
}

func TestMemoryDoCachesByKey(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()
	key := testKey("lpos", "page=1&page_size=20")

	var calls int32
	fetch := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte(`{"count": 0}`), nil
	}

	for i := 0; i < 3; i++ {
		body, err := m.Do(ctx, key, fetch)
		if err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if string(body) != `{"count": 0}` {
			t.Errorf("Do() = %s", body)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetch ran %d times, want 1", got)
	}

	// A different query under the same resource is a separate entry.
	other := testKey("lpos", "page=2&page_size=20")
	if _, err := m.Do(ctx, other, fetch); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("fetch ran %d times after second key, want 2", got)
	}
}

func TestMemoryDoDeduplicatesConcurrent(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()
	key := testKey("payments", "page=1&page_size=20")

	var calls int32
	release := make(chan struct{})
	fetch := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte(`{}`), nil
	}

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := m.Do(ctx, key, fetch); err != nil {
				t.Errorf("Do() error = %v", err)
			}
		}()
	}

	// Let every worker reach the flight before releasing the fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("fetch ran %d times for %d concurrent readers, want 1", got, workers)
	}
}

func TestMemoryDoErrorNotCached(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()
	key := testKey("jobs", "page=1&page_size=20")

	wantErr := errors.New("backend down")
	calls := 0
	if _, err := m.Do(ctx, key, func(context.Context) ([]byte, error) {
		calls++
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("Do() error = %v, want %v", err, wantErr)
	}

	// The failure must not stick; the next read retries.
	body, err := m.Do(ctx, key, func(context.Context) ([]byte, error) {
		calls++
		return []byte(`ok`), nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if string(body) != "ok" || calls != 2 {
		t.Errorf("body = %s, calls = %d, want ok after retry", body, calls)
	}
}

func TestMemoryInvalidateDropsFamily(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	lpoKey := testKey("lpos", "page=1&page_size=20")
	jobKey := testKey("jobs", "page=1&page_size=20")

	fetchCount := map[string]int{}
	fetchFor := func(tag string) FetchFunc {
		return func(context.Context) ([]byte, error) {
			fetchCount[tag]++
			return []byte(tag), nil
		}
	}

	m.Do(ctx, lpoKey, fetchFor("lpos"))
	m.Do(ctx, jobKey, fetchFor("jobs"))

	if err := m.Invalidate(ctx, "lpos"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	m.Do(ctx, lpoKey, fetchFor("lpos"))
	m.Do(ctx, jobKey, fetchFor("jobs"))

	if fetchCount["lpos"] != 2 {
		t.Errorf("lpos fetched %d times, want 2 (re-fetch after invalidation)", fetchCount["lpos"])
	}
	if fetchCount["jobs"] != 1 {
		t.Errorf("jobs fetched %d times, want 1 (other family untouched)", fetchCount["jobs"])
	}
}

func TestMemoryInvalidationDuringFetch(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()
	key := testKey("quotes", "page=1&page_size=20")

	started := make(chan struct{})
	release := make(chan struct{})

	go m.Do(ctx, key, func(context.Context) ([]byte, error) {
		close(started)
		<-release
		return []byte(`stale`), nil
	})

	<-started
	// Invalidate while the fetch is in flight: its result must not be
	// written back.
	if err := m.Invalidate(ctx, "quotes"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	close(release)

	// Wait for the flight to fully unwind before probing.
	time.Sleep(20 * time.Millisecond)

	calls := 0
	body, err := m.Do(ctx, key, func(context.Context) ([]byte, error) {
		calls++
		return []byte(`fresh`), nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if string(body) != "fresh" || calls != 1 {
		t.Errorf("got body %s (calls=%d), stale entry leaked back into the cache", body, calls)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory(10 * time.Millisecond)
	ctx := context.Background()
	key := testKey("vendors", "page=1&page_size=20")

	calls := 0
	fetch := func(context.Context) ([]byte, error) {
		calls++
		return []byte(`v`), nil
	}

	m.Do(ctx, key, fetch)
	time.Sleep(25 * time.Millisecond)
	m.Do(ctx, key, fetch)

	if calls != 2 {
		t.Errorf("fetch ran %d times, want 2 after TTL expiry", calls)
	}
}
