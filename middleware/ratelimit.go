package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"mcp-playground/helper"
)

// RateLimiter hands out one token bucket per key. Buckets idle for longer
// than the idle period are dropped.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *gocache.Cache
}

// NewRateLimiter allows rps requests per second per key with the given burst.
func NewRateLimiter(rps float64, burst int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: gocache.New(idle, idle),
	}
}

// Allow reports whether a request for key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	if v, ok := rl.limiters.Get(key); ok {
		l := v.(*rate.Limiter)
		rl.limiters.SetDefault(key, l)
		return l
	}
	l := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.limiters.Add(key, l, gocache.DefaultExpiration); err != nil {
		// lost the race to another request for the same key
		if v, ok := rl.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return l
}

// RateLimit rejects requests over the client IP's budget with 429.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, helper.Response{
				Success: false,
				Error:   "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
