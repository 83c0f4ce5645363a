package middleware

import (
	"net/http"
	"sync"

	"github.com/PhishGuard/PG-Backend/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per username. It guards the check
// endpoint so a single account can't hammer the classifier.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiterFor(username string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	lim, ok := rl.limiters[username]
	if !ok {
		lim = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[username] = lim
	}
	return lim
}

// Middleware must run after SessionMiddleware so the username is in context.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := utils.GetUsernameFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized: missing username in context", http.StatusUnauthorized)
			return
		}

		if !rl.limiterFor(username).Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
