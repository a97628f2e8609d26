package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
	"golang.org/x/time/rate"
)

// visitorIdleTTL is how long a client's bucket survives without requests.
const visitorIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client IP and drops buckets idle for
// longer than ttl. Sweeps run at most once per ttl, on the request path.
type visitors struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	entries   map[string]*visitor
	lastSweep time.Time
}

func newVisitors(r rate.Limit, b int, ttl time.Duration, now time.Time) *visitors {
	return &visitors{
		limit:     r,
		burst:     b,
		ttl:       ttl,
		entries:   make(map[string]*visitor),
		lastSweep: now,
	}
}

func (v *visitors) get(ip string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if now.Sub(v.lastSweep) >= v.ttl {
		for key, entry := range v.entries {
			if now.Sub(entry.lastSeen) >= v.ttl {
				delete(v.entries, key)
			}
		}
		v.lastSweep = now
	}

	entry, exists := v.entries[ip]
	if !exists {
		entry = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.entries[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (v *visitors) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries)
}

// RateLimiter applies a token bucket per client IP. A burst of 0 disables it.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	if b <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	clients := newVisitors(r, b, visitorIdleTTL, time.Now())

	return func(c *gin.Context) {
		if !clients.get(c.ClientIP(), time.Now()).Allow() {
			apierrors.TooManyRequests(c, "Rate limit exceeded")
			return
		}
		c.Next()
	}
}
