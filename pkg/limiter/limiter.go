package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu    sync.Mutex
	items map[string]*visitor
	rps   rate.Limit
	burst int
	ttl   time.Duration
}

func newVisitors(rps int, burst int, ttl time.Duration) *visitors {
	return &visitors{
		items: make(map[string]*visitor),
		rps:   rate.Limit(rps),
		burst: burst,
		ttl:   ttl,
	}
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	item, ok := v.items[ip]
	if !ok {
		item = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.items[ip] = item
	}
	item.lastSeen = time.Now()

	return item.limiter
}

func (v *visitors) cleanup() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for ip, item := range v.items {
		if time.Since(item.lastSeen) > v.ttl {
			delete(v.items, ip)
		}
	}
}

// Limit is a per client IP token bucket. Visitors idle for longer than ttl are forgotten.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	v := newVisitors(rps, burst, ttl)

	if ttl > 0 {
		go func() {
			ticker := time.NewTicker(ttl)
			defer ticker.Stop()

			for range ticker.C {
				v.cleanup()
			}
		}()
	}

	return func(c *gin.Context) {
		if !v.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
