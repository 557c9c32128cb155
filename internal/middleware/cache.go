package middleware

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/pkg/cache"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

// CachePublic returns a gin middleware that caches successful GET
// responses under the given catalog prefix. Only the anonymous
// published-catalog view is cached: listing output varies by role, and
// an authenticated response must never be replayed to another caller.
// Mutating handlers drop the whole prefix, so stale listings never
// outlive a write.
func CachePublic(cacheService cache.Service, prefix string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || cacheService == nil {
			c.Next()
			return
		}
		if GetActor(c) != nil || !publicQuery(c) {
			c.Next()
			return
		}

		key := prefix + cacheKey(c.Request.URL.Path, c.Request.URL.RawQuery)

		ctx := c.Request.Context()
		var cached cachedResponse
		err := cacheService.Get(ctx, key, &cached)
		if err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, []byte(cached.Body))
			c.Abort()
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			// Redis trouble, serve uncached
			c.Next()
			return
		}

		w := &responseWriter{ResponseWriter: c.Writer, body: make([]byte, 0, 1024)}
		c.Writer = w
		c.Header("X-Cache", "MISS")

		c.Next()

		if w.status >= 200 && w.status < 300 {
			cacheService.Set(ctx, key, cachedResponse{
				Status:      w.status,
				ContentType: w.Header().Get("Content-Type"),
				Body:        string(w.body),
			}, ttl)
		}
	}
}

// publicQuery reports whether the request asks for the shared published
// view. Any other status filter bypasses the cache entirely.
func publicQuery(c *gin.Context) bool {
	for _, param := range []string{"status", "content_status"} {
		if v := c.Query(param); v != "" && v != string(domain.StatusPublished) {
			return false
		}
	}
	return true
}

func cacheKey(path, query string) string {
	raw := path
	if query != "" {
		raw += "?" + query
	}
	return fmt.Sprintf("%x", sha256.Sum256([]byte(raw)))
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body   []byte
	status int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, []byte(s)...)
	return w.ResponseWriter.WriteString(s)
}
