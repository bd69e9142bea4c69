package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/friendsofgo/errors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"printduka-admin/internal/query"
	"printduka-admin/pkg/log"
)

const (
	redisEntryPrefix = "duka:list"
	redisGenPrefix   = "duka:gen"
)

// Redis is a Cache backed by a shared Redis instance, for sharing list
// results across processes. Invalidation bumps a per-resource generation
// counter instead of scanning keys: stale entries simply stop being
// addressed and age out via TTL.
type Redis struct {
	l      log.Logger
	client *goredis.Client
	ttl    time.Duration

	group singleflight.Group
}

// NewRedis creates a Redis-backed cache. A non-positive ttl falls back to
// DefaultTTL.
func NewRedis(l log.Logger, client *goredis.Client, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, errors.New("cache: redis client is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{l: l, client: client, ttl: ttl}, nil
}

// Do implements Cache. De-duplication of concurrent fetches is per
// process; the cached body is shared across processes.
func (r *Redis) Do(ctx context.Context, key query.Key, fetch FetchFunc) ([]byte, error) {
	entryKey, err := r.entryKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if body, err := r.client.Get(ctx, entryKey).Bytes(); err == nil {
		return body, nil
	} else if !errors.Is(err, goredis.Nil) {
		// Degrade to a plain fetch rather than failing the read: the cache
		// is an optimization, not a dependency.
		r.l.Warnf(ctx, "cache.redis: get %s failed: %v", entryKey, err)
		return fetch(ctx)
	}

	body, err, _ := r.group.Do(entryKey, func() (any, error) {
		if cached, err := r.client.Get(ctx, entryKey).Bytes(); err == nil {
			return cached, nil
		}
		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.client.Set(ctx, entryKey, fetched, r.ttl).Err(); err != nil {
			r.l.Warnf(ctx, "cache.redis: set %s failed: %v", entryKey, err)
		}
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

// Invalidate implements Cache. INCR is atomic, so the generation moves
// exactly once per mutation regardless of concurrent invalidators.
func (r *Redis) Invalidate(ctx context.Context, resource string) error {
	if err := r.client.Incr(ctx, fmt.Sprintf("%s:%s", redisGenPrefix, resource)).Err(); err != nil {
		return errors.Wrapf(err, "cache: invalidate %s", resource)
	}
	return nil
}

// entryKey addresses an entry under the resource's current generation.
func (r *Redis) entryKey(ctx context.Context, key query.Key) (string, error) {
	gen, err := r.client.Get(ctx, fmt.Sprintf("%s:%s", redisGenPrefix, key.Resource)).Result()
	if errors.Is(err, goredis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", errors.Wrapf(err, "cache: read generation for %s", key.Resource)
	}

	sum := sha256.Sum256([]byte(key.Query))
	return fmt.Sprintf("%s:%s:%s:%s", redisEntryPrefix, key.Resource, gen, hex.EncodeToString(sum[:16])), nil
}
