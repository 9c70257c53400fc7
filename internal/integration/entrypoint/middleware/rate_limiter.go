package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/adapter"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// sweepEvery controls how many requests pass between purges of expired
// windows.
const sweepEvery = 256

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter caps calls per caller in fixed windows. Callers are keyed by
// account when authenticated and by client IP otherwise. It guards the AI
// suggestion endpoints, whose upstream calls are billed per request.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	span    time.Duration
	clock   adapter.Clock
	calls   int
}

// NewRateLimiterWithConfig creates a limiter allowing limit calls per span
// measured on the wall clock.
func NewRateLimiterWithConfig(limit int, span time.Duration) *RateLimiter {
	return NewRateLimiterWithClock(limit, span, adapter.SystemClock{})
}

// NewRateLimiterWithClock is NewRateLimiterWithConfig with an explicit clock.
func NewRateLimiterWithClock(limit int, span time.Duration, clock adapter.Clock) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if span <= 0 {
		span = time.Minute
	}
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		span:    span,
		clock:   clock,
	}
}

// Middleware rejects over-limit callers with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		wait, ok := rl.take(callerKey(c))
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many suggestion requests. Please try again later.",
				Code:  string(domainerror.ErrCodeAIRateLimited),
			})
			return
		}
		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if accountID, ok := GetAccountIDFromContext(c); ok {
		return "acct:" + accountID.String()
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	return "ip:" + ip
}

// take consumes one call for key. When the window is exhausted it returns the
// time left until the window resets.
func (rl *RateLimiter) take(key string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	rl.calls++
	if rl.calls%sweepEvery == 0 {
		rl.sweep(now)
	}

	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.span)}
		return 0, true
	}
	if w.count >= rl.limit {
		return w.resetAt.Sub(now), false
	}
	w.count++
	return 0, true
}

func (rl *RateLimiter) sweep(now time.Time) {
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}

// Reset forgets every window.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*window)
}
