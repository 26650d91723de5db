package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/models/dtos/responses"

	"golang.org/x/time/rate"
)

// ClientRateLimiter hands out one token bucket per client IP
type ClientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	allowed  map[string]bool
}

func NewClientRateLimiter(perSecond float64, burst int, whitelist ...string) *ClientRateLimiter {
	allowed := make(map[string]bool, len(whitelist))
	for _, ip := range whitelist {
		allowed[ip] = true
	}
	return &ClientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		allowed:  allowed,
	}
}

func (c *ClientRateLimiter) getLimiter(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists := c.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(c.limit, c.burst)
	c.limiters[ip] = limiter
	return limiter
}

// Middleware rejects requests over the per-IP budget with 429
func (c *ClientRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if c.allowed[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !c.getLimiter(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(responses.APIResponse[any]{
				Status:    string(constants.APIStatusError),
				Timestamp: time.Now().UTC(),
				Error:     constants.MsgTooManyRefreshes,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
