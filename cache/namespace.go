package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Namespace groups cached results that are invalidated together. Keys carry a
// generation token; Invalidate rotates the token so every older entry becomes
// unreachable and expires on its own.
//
// Backend failures are logged and treated as misses. A nil *Namespace is a
// valid, disabled cache.
type Namespace struct {
	name    string
	backend Cache
	ttl     time.Duration
	logger  *slog.Logger
}

func NewNamespace(backend Cache, name string, ttl time.Duration, logger *slog.Logger) *Namespace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Namespace{name: name, backend: backend, ttl: ttl, logger: logger}
}

// Load decodes the entry for params into dest. The returned generation must
// be passed to Store so a result computed before an invalidation is never
// stored under the new generation.
func (n *Namespace) Load(ctx context.Context, params, dest any) (hit bool, gen string) {
	if n == nil {
		return false, ""
	}
	gen = n.generation(ctx)
	if gen == "" {
		return false, ""
	}
	key, err := n.key(gen, params)
	if err != nil {
		n.logger.Warn("cache key", "namespace", n.name, "error", err)
		return false, gen
	}
	b, err := n.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			n.logger.Warn("cache get", "namespace", n.name, "error", err)
		}
		return false, gen
	}
	if err := json.Unmarshal(b, dest); err != nil {
		n.logger.Warn("cache decode", "namespace", n.name, "error", err)
		return false, gen
	}
	return true, gen
}

func (n *Namespace) Store(ctx context.Context, gen string, params, value any) {
	if n == nil || gen == "" {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		n.logger.Warn("cache encode", "namespace", n.name, "error", err)
		return
	}
	n.put(ctx, gen, params, b)
}

func (n *Namespace) put(ctx context.Context, gen string, params any, b []byte) {
	if gen == "" {
		return
	}
	key, err := n.key(gen, params)
	if err != nil {
		n.logger.Warn("cache key", "namespace", n.name, "error", err)
		return
	}
	if err := n.backend.Set(ctx, key, b, n.ttl); err != nil {
		n.logger.Warn("cache set", "namespace", n.name, "error", err)
	}
}

// Remember returns the entry for params, computing and storing it on a miss.
// A computed value is handed back decoded from its stored encoding, so asking
// twice yields the same value whether or not the second call hits.
func Remember[T any](ctx context.Context, n *Namespace, params any, compute func() (T, error)) (T, error) {
	if n == nil {
		return compute()
	}
	var cached T
	hit, gen := n.Load(ctx, params, &cached)
	if hit {
		return cached, nil
	}

	v, err := compute()
	if err != nil {
		return v, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		n.logger.Warn("cache encode", "namespace", n.name, "error", err)
		return v, nil
	}
	n.put(ctx, gen, params, b)

	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		n.logger.Warn("cache decode", "namespace", n.name, "error", err)
		return v, nil
	}
	return out, nil
}

// Invalidate drops every entry stored so far.
func (n *Namespace) Invalidate(ctx context.Context) {
	if n == nil {
		return
	}
	if err := n.backend.Set(ctx, n.genKey(), []byte(uuid.NewString()), 0); err != nil {
		n.logger.Warn("cache invalidate", "namespace", n.name, "error", err)
	}
}

func (n *Namespace) generation(ctx context.Context) string {
	b, err := n.backend.Get(ctx, n.genKey())
	if err == nil {
		return string(b)
	}
	if !errors.Is(err, ErrCacheMiss) {
		n.logger.Warn("cache generation", "namespace", n.name, "error", err)
		return ""
	}
	gen := uuid.NewString()
	if err := n.backend.Set(ctx, n.genKey(), []byte(gen), 0); err != nil {
		n.logger.Warn("cache generation", "namespace", n.name, "error", err)
		return ""
	}
	return gen
}

func (n *Namespace) genKey() string {
	return n.name + ":gen"
}

func (n *Namespace) key(gen string, params any) (string, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:%016x", n.name, gen, xxh3.Hash(b)), nil
}
