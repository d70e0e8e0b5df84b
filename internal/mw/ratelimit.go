package mw

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(c *gin.Context) string

// ClientIP buckets requests by remote address.
func ClientIP(c *gin.Context) string { return c.ClientIP() }

// DefaultIdle is how long an unused bucket is kept.
const DefaultIdle = 10 * time.Minute

// Limiters hands out one token bucket per key. Buckets idle for longer
// than the idle period are evicted.
type Limiters struct {
	mu      sync.Mutex
	buckets *cache.Cache
	r       rate.Limit
	b       int
}

// NewLimiters creates an empty set of buckets refilling at r with burst b.
func NewLimiters(r rate.Limit, b int, idle time.Duration) *Limiters {
	if idle <= 0 {
		idle = DefaultIdle
	}
	return &Limiters{buckets: cache.New(idle, idle), r: r, b: b}
}

// Get returns the bucket for key, creating it on first use. Every call
// pushes the bucket's expiry back.
func (l *Limiters) Get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	var lim *rate.Limiter
	if v, ok := l.buckets.Get(key); ok {
		lim = v.(*rate.Limiter)
	} else {
		lim = rate.NewLimiter(l.r, l.b)
	}
	l.buckets.SetDefault(key, lim)
	return lim
}

// Len is the number of live buckets.
func (l *Limiters) Len() int { return l.buckets.ItemCount() }

// RateLimiter rejects requests with 429 once their bucket is empty.
func RateLimiter(r rate.Limit, b int, key KeyFunc) gin.HandlerFunc {
	limiters := NewLimiters(r, b, DefaultIdle)
	return func(c *gin.Context) {
		if !limiters.Get(key(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
