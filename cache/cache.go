// Package cache stores serialized list results in a pluggable backend.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: miss")

// Cache is a byte-oriented key/value store. A ttl <= 0 means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error) { return nil, ErrCacheMiss }

func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
