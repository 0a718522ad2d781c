package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/dto"
	"github.com/brunogodoif/projectmanagement/internal/platform/config"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per remote host.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu     sync.Mutex
	byHost map[string]*limiterEntry
	sweep  time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter from cfg. Burst falls back to one request
// when unset.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:  rate.Limit(cfg.RequestsPerSecond),
		burst:  burst,
		now:    time.Now,
		byHost: make(map[string]*limiterEntry),
	}
}

// Allow reports whether a request from host may proceed.
func (l *RateLimiter) Allow(host string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.sweep) > limiterIdleTTL {
		for k, e := range l.byHost {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(l.byHost, k)
			}
		}
		l.sweep = now
	}

	e, ok := l.byHost[host]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byHost[host] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// RateLimit returns middleware that rejects requests over the per-host budget
// with 429 Too Many Requests and a Retry-After hint.
func RateLimit(l *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(remoteHost(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(l.limit)))
				dto.WriteProblem(w, r, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 {
		return 1
	}
	secs := int(1 / float64(limit))
	if secs < 1 {
		return 1
	}
	return secs
}
