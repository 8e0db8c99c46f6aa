package query

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
)

// IdempotencyCache remembers the content digest of the last successfully
// forwarded file per patient, so that re-submissions of an identical file
// do not hit the query service again.
type IdempotencyCache interface {
	Seen(ctx context.Context, patient string, digest string) bool
	Remember(ctx context.Context, patient string, digest string)
}

// LRUCache is the in-process cache for single-instance deployments.
type LRUCache struct {
	cache *lru.Cache[string, string]
}

// NewLRUCache creates an in-process idempotency cache holding up to size
// patients.
func NewLRUCache(size int) (*LRUCache, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: cache}, nil
}

func (c *LRUCache) Seen(_ context.Context, patient string, digest string) bool {
	last, ok := c.cache.Get(patient)
	return ok && last == digest
}

func (c *LRUCache) Remember(_ context.Context, patient string, digest string) {
	c.cache.Add(patient, digest)
}

const redisKeyPrefix = "mtb:forwarded:"

// RedisCache shares the idempotency state across instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed idempotency cache. Entries expire
// after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Seen(ctx context.Context, patient string, digest string) bool {
	last, err := c.client.Get(ctx, redisKeyPrefix+patient).Result()
	if err != nil {
		// Cache misses and transport errors both mean "forward again".
		return false
	}
	return last == digest
}

func (c *RedisCache) Remember(ctx context.Context, patient string, digest string) {
	c.client.Set(ctx, redisKeyPrefix+patient, digest, c.ttl)
}
