package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemory returns an in-process cache. Expired entries are purged every
// cleanup interval.
func NewMemory(cleanup time.Duration) Cache {
	return &memoryCache{store: gocache.New(gocache.NoExpiration, cleanup)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	return v.([]byte), nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.store.Set(key, value, ttl)
	return nil
}
