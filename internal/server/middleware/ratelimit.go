package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterPool keys token-bucket limiters by string (tenant ID or client IP).
// Stale entries are evicted in the background to bound memory.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*poolEntry
	rps      float64
	burst    int
}

type poolEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func newLimiterPool(ctx context.Context, requestsPerSecond float64, burst int) *limiterPool {
	p := &limiterPool{
		limiters: make(map[string]*poolEntry),
		rps:      requestsPerSecond,
		burst:    burst,
	}

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.evictStale(time.Now().Add(-30 * time.Minute))
			case <-ctx.Done():
				return
			}
		}
	}()

	return p
}

func (p *limiterPool) evictStale(cutoff time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, e := range p.limiters {
		if e.lastAccess.Before(cutoff) {
			delete(p.limiters, key)
		}
	}
}

func (p *limiterPool) allow(key string) bool {
	p.mu.Lock()

	e, ok := p.limiters[key]
	if !ok {
		e = &poolEntry{limiter: rate.NewLimiter(rate.Limit(p.rps), p.burst)}
		p.limiters[key] = e
	}
	e.lastAccess = time.Now()
	p.mu.Unlock()

	return e.limiter.Allow()
}

func tooManyRequests(w http.ResponseWriter) {
	http.Error(w, `{"title":"Too Many Requests","status":429,"detail":"rate limit exceeded"}`, http.StatusTooManyRequests)
}

// RateLimit applies per-tenant rate limiting. Requests without a tenant in
// context pass through; RequireTenant handles those separately.
func RateLimit(ctx context.Context, requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	pool := newLimiterPool(ctx, requestsPerSecond, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID, ok := TenantIDFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if !pool.allow(tenantID.String()) {
				tooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP applies per-IP rate limiting for unauthenticated endpoints
// (e.g. login and register). Relies on chi's RealIP middleware having
// normalized r.RemoteAddr.
func RateLimitByIP(ctx context.Context, requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	pool := newLimiterPool(ctx, requestsPerSecond, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pool.allow(r.RemoteAddr) {
				tooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
