package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/pkg/cache"
)

// memoryCache is an in-process cache.Service for tests.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) InvalidateCatalog(ctx context.Context, prefix string) error {
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

// cacheTestRouter wires a role-dependent listing behind CachePublic.
// The stub auth resolves a moderator when the X-Test-Role header is
// set, mirroring how OptionalJWTAuth precedes the cache in the real
// route chain. The listing returns pending content to moderators and
// 403 to everyone else, like the real handlers do.
func cacheTestRouter(mem *memoryCache, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-Role") == "moderator" {
			c.Set(actorKey, &domain.User{ID: 3, Role: domain.RoleModerator, IsActive: true})
		}
		c.Next()
	})
	r.Use(CachePublic(mem, cache.PrefixPrompts, cache.TTLCatalog))
	r.GET("/prompts", func(c *gin.Context) {
		*hits++
		status := c.DefaultQuery("status", string(domain.StatusPublished))
		if status != string(domain.StatusPublished) && GetActor(c) == nil {
			c.JSON(http.StatusForbidden, gin.H{"success": false})
			return
		}
		if status == string(domain.StatusPending) {
			c.JSON(http.StatusOK, gin.H{"items": []string{"unreleased draft prompt"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": []string{"published prompt"}})
	})
	return r
}

func TestCachePublic_AnonymousPublishedListingCached(t *testing.T) {
	mem := newMemoryCache()
	hits := 0
	r := cacheTestRouter(mem, &hits)

	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/prompts", nil)
	r.ServeHTTP(w1, req1)

	if w1.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w1.Code)
	}
	if got := w1.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("expected X-Cache MISS on first request, got %q", got)
	}

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/prompts", nil)
	r.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w2.Code)
	}
	if got := w2.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("expected X-Cache HIT on second request, got %q", got)
	}
	if hits != 1 {
		t.Errorf("expected handler to run once, ran %d times", hits)
	}
}

func TestCachePublic_ModeratorListingNotServedToAnonymous(t *testing.T) {
	mem := newMemoryCache()
	hits := 0
	r := cacheTestRouter(mem, &hits)

	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/prompts?status=pending", nil)
	req1.Header.Set("X-Test-Role", "moderator")
	r.ServeHTTP(w1, req1)

	if w1.Code != http.StatusOK {
		t.Fatalf("moderator listing: expected 200, got %d", w1.Code)
	}
	if len(mem.entries) != 0 {
		t.Fatalf("moderator listing must not populate the cache, found %d entries", len(mem.entries))
	}

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/prompts?status=pending", nil)
	r.ServeHTTP(w2, req2)

	if w2.Code != http.StatusForbidden {
		t.Errorf("anonymous repeat of moderator URL: expected 403, got %d", w2.Code)
	}
	if w2.Header().Get("X-Cache") == "HIT" {
		t.Error("anonymous request must not be served from cache")
	}
	if strings.Contains(w2.Body.String(), "unreleased draft prompt") {
		t.Error("pending content leaked to anonymous caller")
	}
}

func TestCachePublic_AuthenticatedPublishedListingNotCached(t *testing.T) {
	mem := newMemoryCache()
	hits := 0
	r := cacheTestRouter(mem, &hits)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/prompts", nil)
	req.Header.Set("X-Test-Role", "moderator")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(mem.entries) != 0 {
		t.Errorf("authenticated response must not populate the cache, found %d entries", len(mem.entries))
	}
}

func TestCachePublic_NonPublishedFilterBypassesCache(t *testing.T) {
	mem := newMemoryCache()
	hits := 0
	r := cacheTestRouter(mem, &hits)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/prompts?status=draft", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if len(mem.entries) != 0 {
		t.Errorf("filtered listing must not populate the cache, found %d entries", len(mem.entries))
	}
}
