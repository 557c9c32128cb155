package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLCatalog = 1 * time.Minute  // public published listings, refreshed often
	TTLEntry   = 5 * time.Minute  // single published entries
	TTLDefault = 5 * time.Minute  // fallback
	TTLLong    = 30 * time.Minute // rarely changing data
)

// Cache key prefixes, one namespace per content kind
const (
	PrefixPrompts  = "catalog:prompts:"
	PrefixGuides   = "catalog:guides:"
	PrefixAgents   = "catalog:agents:"
	PrefixRulesets = "catalog:rulesets:"
)

// ErrCacheMiss is returned when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// Service is the Redis-backed cache used for public catalog listings.
// All methods are safe to skip when Redis is unavailable; callers treat
// any error as a miss.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// InvalidateCatalog drops every cached listing for one content kind.
	// Called after any mutation that can change public visibility.
	InvalidateCatalog(ctx context.Context, prefix string) error
}

type service struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given Redis client
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(val, dest)
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) InvalidateCatalog(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	return s.Delete(ctx, keys...)
}
