package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

type memcachedCache struct {
	client *memcache.Client
}

func NewMemcached(client *memcache.Client) Cache {
	return &memcachedCache{client: client}
}

func (c *memcachedCache) Get(_ context.Context, key string) ([]byte, error) {
	item, err := c.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

// Set rounds ttl up to whole seconds; memcached has no finer resolution.
func (c *memcachedCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp int32
	if ttl > 0 {
		exp = int32((ttl + time.Second - 1) / time.Second)
	}
	return c.client.Set(&memcache.Item{Key: key, Value: value, Expiration: exp})
}
