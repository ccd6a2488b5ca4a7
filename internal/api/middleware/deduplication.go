package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pantry-planner/internal/pkg/common"
)

var (
	requestCache = struct {
		sync.RWMutex
		requests map[string]time.Time
	}{
		requests: make(map[string]time.Time),
	}

	cleanupOnce sync.Once
)

func startDeduplicationCleanup(window time.Duration) {
	cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				requestCache.Lock()
				for k, t := range requestCache.requests {
					if now.Sub(t) > 10*window {
						delete(requestCache.requests, k)
					}
				}
				requestCache.Unlock()
			}
		}()
	})
}

// Deduplication rejects a POST whose method, path and body hash were
// already seen within window, catching accidental double submits of
// recipe creates and imports.
func Deduplication(window time.Duration) gin.HandlerFunc {
	startDeduplicationCleanup(window)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		sum := sha256.Sum256(append([]byte(c.Request.Method+" "+c.Request.URL.Path+"\n"), body...))
		key := hex.EncodeToString(sum[:])

		requestCache.Lock()
		last, seen := requestCache.requests[key]
		now := time.Now()
		duplicate := seen && now.Sub(last) < window
		if !duplicate {
			requestCache.requests[key] = now
		}
		requestCache.Unlock()

		if duplicate {
			common.LogWarn("duplicate request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "Duplicate request",
				"code":  common.ErrCodeConflict,
			})
			return
		}

		c.Next()
	}
}
