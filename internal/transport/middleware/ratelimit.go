package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

const bucketIdleEviction = 10 * time.Minute

// RateLimiter applies a per-client-IP token bucket. Buckets refill
// continuously and are evicted after sitting idle.
type RateLimiter struct {
	buckets sync.Map // keyed by remote address
	stop    chan struct{}
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	touched  time.Time
}

// NewRateLimiter starts the eviction loop; call Stop on shutdown.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.sweep(sweepEvery)
	return rl
}

func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit caps each client IP at maxPerMinute requests, answering 429 with a
// Retry-After hint once the bucket is empty.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(r.RemoteAddr, maxPerMinute) {
				secondsPerToken := 60.0 / float64(maxPerMinute)
				w.Header().Set("Retry-After", strconv.Itoa(int(secondsPerToken)+1))
				writeErrorJSON(w, http.StatusTooManyRequests,
					"LIMIT_EXCEEDED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) take(key string, maxPerMinute int) bool {
	capacity := float64(maxPerMinute)
	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:   capacity,
		capacity: capacity,
		perSec:   capacity / 60.0,
		touched:  time.Now(),
	})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.touched)
				b.mu.Unlock()
				if idle > bucketIdleEviction {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
