package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/karimosman/quranlife-api/pkg/response"
)

// Limiter is a rolling-window call limiter: at most `limit` calls within the
// trailing `window`. It matches the PWA's client-side limiter so server and
// client agree on what "too fast" means.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	calls  []time.Time
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{limit: limit, window: window, now: time.Now}
}

// NewLimiterWithClock is for tests that need to control time.
func NewLimiterWithClock(limit int, window time.Duration, now func() time.Time) *Limiter {
	return &Limiter{limit: limit, window: window, now: now}
}

// IsAllowed records an attempt and reports whether it fits in the window.
func (l *Limiter) IsAllowed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kept := l.calls[:0]
	for _, t := range l.calls {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	l.calls = kept

	if len(l.calls) >= l.limit {
		return false
	}
	l.calls = append(l.calls, now)
	return true
}

// PerClient hands out one Limiter per client key (remote IP).
type PerClient struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	limiters map[string]*Limiter
}

func NewPerClient(limit int, window time.Duration) *PerClient {
	return &PerClient{
		limit:    limit,
		window:   window,
		limiters: make(map[string]*Limiter),
	}
}

func (p *PerClient) limiterFor(key string) *Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	limiter, ok := p.limiters[key]
	if !ok {
		limiter = NewLimiter(p.limit, p.window)
		p.limiters[key] = limiter
	}
	return limiter
}

// Middleware guards the guidance endpoints: the engine itself never rate
// limits, the boundary in front of it does.
func (p *PerClient) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !p.limiterFor(host).IsAllowed() {
			response.Error(w, http.StatusTooManyRequests, "Too many requests, slow down", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
