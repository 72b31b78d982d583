package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "issue_rate:"

// counter - часть *redis.Client, нужная лимитеру
type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// Decision - результат проверки лимита
type Decision struct {
	Allowed    bool
	Count      int64
	RetryAfter time.Duration
}

// Limiter - ограничитель с фиксированным окном на ключ пользователя
type Limiter interface {
	Allow(ctx context.Context, userID string) (Decision, error)
}

// RedisLimiter считает запросы через INCR, окно задается EXPIRE на первом запросе
type RedisLimiter struct {
	client counter
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client counter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, userID string) (Decision, error) {
	key := keyPrefix + userID

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis error incrementing count: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("redis error setting TTL: %w", err)
		}
	}

	if count <= l.limit {
		return Decision{Allowed: true, Count: count}, nil
	}

	retryAfter, err := l.client.TTL(ctx, key).Result()
	if err != nil || retryAfter < 0 {
		retryAfter = l.window
	}
	return Decision{Allowed: false, Count: count, RetryAfter: retryAfter}, nil
}
