package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCounter хранит счетчики в памяти вместо Redis
type stubCounter struct {
	counts    map[string]int64
	expires   map[string]time.Duration
	incrErr   error
	expireErr error
}

func newStubCounter() *stubCounter {
	return &stubCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (s *stubCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if s.incrErr != nil {
		return redis.NewIntResult(0, s.incrErr)
	}
	s.counts[key]++
	return redis.NewIntResult(s.counts[key], nil)
}

func (s *stubCounter) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if s.expireErr != nil {
		return redis.NewBoolResult(false, s.expireErr)
	}
	s.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (s *stubCounter) TTL(_ context.Context, key string) *redis.DurationCmd {
	return redis.NewDurationResult(s.expires[key]-time.Minute, nil)
}

func TestRedisLimiter_AllowsUpToLimit(t *testing.T) {
	stub := newStubCounter()
	limiter := NewRedisLimiter(stub, 2, time.Hour)

	for i := 1; i <= 2; i++ {
		decision, err := limiter.Allow(context.Background(), "uid")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, int64(i), decision.Count)
	}
	assert.Equal(t, time.Hour, stub.expires[keyPrefix+"uid"])

	decision, err := limiter.Allow(context.Background(), "uid")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 59*time.Minute, decision.RetryAfter)
}

func TestRedisLimiter_PerUser(t *testing.T) {
	limiter := NewRedisLimiter(newStubCounter(), 1, time.Hour)

	first, err := limiter.Allow(context.Background(), "a")
	require.NoError(t, err)
	other, err := limiter.Allow(context.Background(), "b")
	require.NoError(t, err)

	assert.True(t, first.Allowed)
	assert.True(t, other.Allowed)
}

func TestRedisLimiter_RedisErrors(t *testing.T) {
	stub := newStubCounter()
	stub.incrErr = errors.New("connection refused")
	_, err := NewRedisLimiter(stub, 1, time.Hour).Allow(context.Background(), "uid")
	assert.ErrorContains(t, err, "incrementing count")

	stub = newStubCounter()
	stub.expireErr = errors.New("readonly")
	_, err = NewRedisLimiter(stub, 1, time.Hour).Allow(context.Background(), "uid")
	assert.ErrorContains(t, err, "setting TTL")
}
