package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

// idleBucketTTL is how long an untouched bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client address and limit. Each
// middleware returned by Limit draws on its own buckets.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[bucketKey]*bucket
	scopes   int
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucketKey struct {
	scope  int
	client string
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := newRateLimiter(time.Now)
	go rl.cleanupLoop(cleanupInterval)
	return rl
}

func newRateLimiter(now func() time.Time) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[bucketKey]*bucket),
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client with bursts up to perMinute.
// Rejected requests get 429 with Retry-After.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	rate := float64(perMinute) / 60

	rl.mu.Lock()
	rl.scopes++
	scope := rl.scopes
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(bucketKey{scope, clientKey(r)}, float64(perMinute), rate)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, domain.KindRateLimited, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LimitAnonymous applies Limit to requests without an authenticated user,
// which covers registration and sign-in. It must run after Auth.
func (rl *RateLimiter) LimitAnonymous(perMinute int) Middleware {
	limit := rl.Limit(perMinute)
	return func(next http.Handler) http.Handler {
		limited := limit(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}

// take spends one token from key's bucket. When the bucket is empty it
// returns how long until the next token.
func (rl *RateLimiter) take(key bucketKey, capacity, rate float64) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, last: now}
		rl.buckets[key] = b
	}

	b.tokens = min(capacity, b.tokens+now.Sub(b.last).Seconds()*rate)
	b.last = now

	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / rate * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

// sweep drops buckets idle for longer than idleBucketTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.last) > idleBucketTTL {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// clientKey prefers the address resolved by ClientIP.
func clientKey(r *http.Request) string {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
