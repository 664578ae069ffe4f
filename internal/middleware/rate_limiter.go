package middleware

import (
	"net/http"
	"sync"
	"time"

	"candystock/internal/apierror"

	"github.com/gin-gonic/gin"
)

type clientBucket struct {
	count    int
	windowAt time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   int
	window  time.Duration
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   limit,
		window:  window,
	}
	go rl.purge()
	return rl
}

func (rl *rateLimiter) purge() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for ip, b := range rl.clients {
			if time.Since(b.windowAt) > rl.window {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[ip]
	if !ok || time.Since(b.windowAt) > rl.window {
		rl.clients[ip] = &clientBucket{count: 1, windowAt: time.Now()}
		return true
	}
	if b.count >= rl.limit {
		return false
	}
	b.count++
	return true
}

func (rl *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, slow down"))
			return
		}
		c.Next()
	}
}

// RateLimiter limits each client IP to 300 requests per minute.
func RateLimiter() gin.HandlerFunc {
	return newRateLimiter(300, time.Minute).middleware()
}

// LoginRateLimiter is stricter to slow down credential stuffing.
func LoginRateLimiter() gin.HandlerFunc {
	return newRateLimiter(10, time.Minute).middleware()
}
