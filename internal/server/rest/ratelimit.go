package rest

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/imagekeeper/internal/metrics"
)

const limiterMaxIdle = 30 * time.Minute

// Limiter is a token bucket per client IP.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	rate     rate.Limit
	burst    int
}

// NewLimiter allows perMinute sustained requests per client with the given
// burst. A non-positive perMinute disables limiting.
func NewLimiter(perMinute, burst int) *Limiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &Limiter{
		limiters: map[string]*rate.Limiter{},
		lastSeen: map[string]time.Time{},
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *Limiter) Allow(clientID string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	lim, ok := l.limiters[clientID]
	if !ok {
		l.evictIdle(now)
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[clientID] = lim
	}
	l.lastSeen[clientID] = now
	return lim.AllowN(now, 1)
}

// evictIdle drops clients not seen for a while. Callers hold l.mu.
func (l *Limiter) evictIdle(now time.Time) {
	for id, seen := range l.lastSeen {
		if now.Sub(seen) > limiterMaxIdle {
			delete(l.limiters, id)
			delete(l.lastSeen, id)
		}
	}
}

// Middleware rejects requests over the limit with 429. A nil Limiter
// passes everything through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			metrics.RateLimited.Inc()
			w.Header().Set("Retry-After", "60")
			writeJSON(w, ErrorResponse{Error: "too many requests", Code: http.StatusTooManyRequests}, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the remote host, already rewritten by middleware.RealIP when
// the request came through a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
