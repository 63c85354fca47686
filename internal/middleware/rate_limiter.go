package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
)

type rateBucket struct {
	count   int
	resetAt time.Time
}

var (
	rateMu      sync.Mutex
	rateBuckets = map[string]*rateBucket{}
)

func init() {
	// Purge stale buckets so the map does not grow without bound.
	go func() {
		for range time.Tick(5 * time.Minute) {
			rateMu.Lock()
			now := time.Now()
			for k, b := range rateBuckets {
				if now.After(b.resetAt) {
					delete(rateBuckets, k)
				}
			}
			rateMu.Unlock()
		}
	}()
}

// RateLimiter caps requests per client IP inside a sliding window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()

		rateMu.Lock()
		b, ok := rateBuckets[key]
		if !ok || time.Now().After(b.resetAt) {
			b = &rateBucket{resetAt: time.Now().Add(window)}
			rateBuckets[key] = b
		}
		b.count++
		over := b.count > limit
		rateMu.Unlock()

		if over {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes, intente más tarde"))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter protects the login endpoint from brute force.
func LoginRateLimiter() gin.HandlerFunc {
	return RateLimiter(20, time.Minute)
}
