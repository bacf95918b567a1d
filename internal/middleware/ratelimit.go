package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mstdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	// DefaultUnauthenticatedRateLimit is the per-minute limit for unauthenticated requests
	DefaultUnauthenticatedRateLimit = 100
	// DefaultAuthenticatedRateLimit is the per-minute limit for authenticated requests
	DefaultAuthenticatedRateLimit = 1000
)

// RedisRateLimiter wraps the Redis client backing the rate limit store
type RedisRateLimiter struct {
	client *redis.Client
}

// NewRedisRateLimiter creates a new Redis-backed rate limiter
func NewRedisRateLimiter(redisURL string) (*RedisRateLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRateLimiter{client: client}, nil
}

// Close closes the Redis connection
func (r *RedisRateLimiter) Close() error {
	return r.client.Close()
}

// Ping checks if Redis is reachable
func (r *RedisRateLimiter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// RateLimit creates per-client-IP rate limiting middleware backed by Redis.
// Counters live in Redis, so limits hold across multiple server instances.
func RateLimit(redisLimiter *RedisRateLimiter, requestsPerMinute int) (func(http.Handler) http.Handler, error) {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultUnauthenticatedRateLimit
	}

	store, err := sredis.NewStoreWithOptions(redisLimiter.client, limiter.StoreOptions{
		Prefix: "ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit store: %w", err)
	}

	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  int64(requestsPerMinute),
	}

	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(true))
	mw := mstdlib.NewMiddleware(instance)

	return mw.Handler, nil
}

// RateLimitAuthenticated creates rate limiting for authenticated endpoints
func RateLimitAuthenticated(redisLimiter *RedisRateLimiter) (func(http.Handler) http.Handler, error) {
	return RateLimit(redisLimiter, DefaultAuthenticatedRateLimit)
}

// RateLimitUnauthenticated creates rate limiting for unauthenticated endpoints
func RateLimitUnauthenticated(redisLimiter *RedisRateLimiter) (func(http.Handler) http.Handler, error) {
	return RateLimit(redisLimiter, DefaultUnauthenticatedRateLimit)
}
