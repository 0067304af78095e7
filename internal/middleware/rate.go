package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines per-IP limiting.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// staleAfter is how long an idle client keeps its limiter.
const staleAfter = 10 * time.Minute

// RateLimit creates a per-IP rate limiting middleware. Idle entries are
// evicted lazily so the client map cannot grow without bound.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu        sync.Mutex
		clients   = make(map[string]*client)
		lastSweep = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if now.Sub(lastSweep) > staleAfter {
			for addr, cl := range clients {
				if now.Sub(cl.lastSeen) > staleAfter {
					delete(clients, addr)
				}
			}
			lastSweep = now
		}

		cl, exists := clients[ip]
		if !exists {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = now
		limiter := cl.limiter
		mu.Unlock()

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
