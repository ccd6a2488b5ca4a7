package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/config"
	"pantry-planner/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service caches built shopping lists in Redis. The cache is strictly
// best-effort: every backend failure degrades to a miss and the list is
// rebuilt from the recipes.
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService connects to Redis when caching is enabled. With caching
// disabled it returns a service whose lookups always miss.
func NewService(cfg *config.CacheConfig) (*Service, error) {
	if !cfg.Enabled {
		common.LogInfo("shopping list cache disabled")
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("shopping list cache connected",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("ttl", cfg.TTL),
	)
	return &Service{client: client, config: cfg}, nil
}

// Get returns a cached shopping list, or ok=false on miss, disabled
// cache, or backend error.
func (s *Service) Get(ctx context.Context, key string) ([]recipe.ShoppingItem, bool) {
	if !s.config.Enabled || s.client == nil {
		return nil, false
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("cache lookup failed", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}

	var items []recipe.ShoppingItem
	if err := json.Unmarshal(data, &items); err != nil {
		common.LogWarn("cache entry corrupt", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	return items, true
}

// Set stores a shopping list under key with the configured TTL. Failures
// are logged and swallowed.
func (s *Service) Set(ctx context.Context, key string, items []recipe.ShoppingItem) {
	if !s.config.Enabled || s.client == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		common.LogWarn("cache marshal failed", zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, key, data, s.config.TTL).Err(); err != nil {
		common.LogWarn("cache store failed", zap.Error(err), zap.String("key", key))
	}
}

// Close releases the Redis connection.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

var _ recipe.ListCache = (*Service)(nil)
