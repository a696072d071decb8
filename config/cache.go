package config

import (
	"context"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"

	"mcp-playground/cache"
)

// NewCache builds the list cache backend selected by CACHE_DRIVER.
func NewCache(ctx context.Context, cfg *Config) (cache.Cache, error) {
	switch cfg.CacheDriver {
	case CacheNone:
		return cache.Nop{}, nil
	case CacheMemory:
		return cache.NewMemory(time.Minute), nil
	case CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return cache.NewRedis(client), nil
	case CacheMemcached:
		client := memcache.New(cfg.MemcachedAddr)
		if err := client.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to memcached: %w", err)
		}
		return cache.NewMemcached(client), nil
	}
	return nil, fmt.Errorf("unknown cache driver %q", cfg.CacheDriver)
}
