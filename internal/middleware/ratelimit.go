package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter caps requests per remote address over a fixed window. It guards
// the credential endpoints, where repeated attempts are most likely abuse.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

type clientWindow struct {
	count       int
	windowStart time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}
	go rl.sweep()
	return rl
}

// sweep drops expired windows so the map does not grow with every address
// ever seen.
func (rl *RateLimiter) sweep() {
	for {
		time.Sleep(rl.window)
		rl.mu.Lock()
		now := time.Now()
		for addr, cw := range rl.clients {
			if now.Sub(cw.windowStart) > rl.window {
				delete(rl.clients, addr)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		rl.mu.Lock()
		cw, ok := rl.clients[r.RemoteAddr]
		if !ok || now.Sub(cw.windowStart) > rl.window {
			rl.clients[r.RemoteAddr] = &clientWindow{count: 1, windowStart: now}
			rl.mu.Unlock()
			next.ServeHTTP(w, r)
			return
		}

		cw.count++
		count := cw.count
		rl.mu.Unlock()

		if count > rl.limit {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
