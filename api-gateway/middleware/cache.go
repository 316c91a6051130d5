package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/stockly/stock-management/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL time.Duration
	// PathTTLs overrides the TTL for paths matching a prefix. Catalog
	// listings tolerate longer staleness than stock reads.
	PathTTLs map[string]time.Duration
}

// DefaultCacheConfig returns the cache configuration used by the gateway
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL: 2 * time.Minute,
		PathTTLs: map[string]time.Duration{
			"/api/products/stats": 30 * time.Second,
			"/api/stocks":         15 * time.Second,
		},
	}
}

// CacheMiddleware caches GET responses in Redis, scoped per tenant. Any
// mutating request through the gateway drops the tenant's cached reads, so
// a tenant never sees its own stale write.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.Next()
		}

		tenant := tenantSegment(c)

		if c.Method() != fiber.MethodGet {
			err := c.Next()
			if c.Response().StatusCode() < 300 && isMutating(c.Method()) {
				invalidateTenant(context.Background(), redisClient, tenant)
			}
			return err
		}

		cacheKey := responseCacheKey(c, tenant)

		ctx := context.Background()
		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		err = c.Next()

		if c.Response().StatusCode() == fiber.StatusOK {
			body := c.Response().Body()
			ttl := ttlForPath(c.Path(), config)
			if cacheErr := redisClient.Set(ctx, cacheKey, body, ttl).Err(); cacheErr != nil {
				logger.Logger.Warn().
					Err(cacheErr).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			} else {
				logger.Logger.Debug().
					Str("path", c.Path()).
					Dur("ttl", ttl).
					Int("size", len(body)).
					Msg("Response cached")
			}
			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// tenantSegment returns the cache key segment for the caller's tenant.
// The auth middleware has already replaced any client-supplied header.
func tenantSegment(c *fiber.Ctx) string {
	if tenant := c.Get(TenantHeader); tenant != "" {
		return tenant
	}
	return "host"
}

func responseCacheKey(c *fiber.Ctx, tenant string) string {
	raw := fmt.Sprintf("%s:%s:%s",
		c.Path(),
		string(c.Request().URI().QueryString()),
		c.Get("Authorization"),
	)
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("gwcache:%s:%s", tenant, hex.EncodeToString(hash[:]))
}

func ttlForPath(path string, config CacheConfig) time.Duration {
	ttl := config.DefaultTTL
	longest := -1
	for prefix, override := range config.PathTTLs {
		if strings.HasPrefix(path, prefix) && len(prefix) > longest {
			longest = len(prefix)
			ttl = override
		}
	}
	return ttl
}

func isMutating(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}

// invalidateTenant drops every cached response belonging to one tenant.
// Best effort: a failed invalidation only means a shorter-than-TTL window
// of staleness for that tenant.
func invalidateTenant(ctx context.Context, redisClient *redis.Client, tenant string) {
	pattern := fmt.Sprintf("gwcache:%s:*", tenant)
	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation failed")
		return
	}
	logger.Logger.Debug().
		Int("count", len(keys)).
		Str("tenant", tenant).
		Msg("Tenant cache invalidated")
}
