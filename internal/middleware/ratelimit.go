package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP with a token bucket.
type RateLimiter struct {
	limiters sync.Map
	rate     float64
	burst    int
	log      *zap.Logger

	cleanupInterval time.Duration
	idleTimeout     time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type limiterEntry struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	lastAccess time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.lastAccess = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.lastAccess)
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond with the
// given burst. Stop must be called to release the cleanup goroutine.
func NewRateLimiter(requestsPerSecond float64, burst int, log *zap.Logger) *RateLimiter {
	if log == nil {
		log = zap.NewNop()
	}
	rl := &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		log:             log,
		cleanupInterval: 5 * time.Minute,
		idleTimeout:     10 * time.Minute,
		stop:            make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Stop ends the cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.limiters.Range(func(key, value interface{}) bool {
				if entry, ok := value.(*limiterEntry); ok && entry.idleSince(now) > rl.idleTimeout {
					rl.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(rl.rate), rl.burst),
		lastAccess: now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func getClientIdentifier(c *gin.Context) string {
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware returns a Gin middleware handler for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)

		if !limiter.Allow() {
			rl.log.Warn("Rate limit exceeded",
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		c.Next()
	}
}
