package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/stockly/stock-management/pkg/logger"
)

// RateLimiter enforces a sliding-window request limit backed by Redis.
// Authenticated callers are counted per tenant and user, anonymous callers
// per tenant and IP, so one noisy tenant cannot starve the others.
type RateLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(redisClient *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:       redisClient,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := rl.windowKey(c)

		allowed, remaining, resetTime, err := rl.take(context.Background(), key)
		if err != nil {
			// Fail open: a broken limiter must not take the gateway down.
			logger.Logger.Error().
				Err(err).
				Str("key", key).
				Msg("Rate limiter error")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			logger.Logger.Warn().
				Str("key", key).
				Int("limit", rl.maxRequests).
				Msg("Rate limit exceeded")

			c.Set("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Rate limit exceeded",
				"retry_after": time.Until(resetTime).Seconds(),
			})
		}

		return c.Next()
	}
}

func (rl *RateLimiter) windowKey(c *fiber.Ctx) string {
	tenant := tenantSegment(c)
	if userID := c.Locals("user_id"); userID != nil {
		return fmt.Sprintf("ratelimit:%s:user:%v", tenant, userID)
	}
	return fmt.Sprintf("ratelimit:%s:ip:%s", tenant, c.IP())
}

// take records one request against the window and reports whether it fits.
func (rl *RateLimiter) take(ctx context.Context, key string) (bool, int, time.Time, error) {
	now := time.Now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(countCmd.Val())
	remaining := rl.maxRequests - count - 1
	if remaining < 0 {
		remaining = 0
	}

	return count < rl.maxRequests, remaining, now.Add(rl.window), nil
}

// GlobalRateLimiter limits every request through the gateway
func GlobalRateLimiter(redisClient *redis.Client) fiber.Handler {
	return NewRateLimiter(redisClient, 100, time.Minute).Middleware()
}
