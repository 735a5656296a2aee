package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles login attempts per client IP.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewLoginRateLimiter(perSecond float64, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *LoginRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.visitors[ip] = limiter
	}
	return limiter
}

func (l *LoginRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.limiterFor(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many attempts",
				"error":   "Please wait before trying again.",
			})
		}
		return c.Next()
	}
}
