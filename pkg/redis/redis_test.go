package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func TestPing_Success(t *testing.T) {
	assert.NoError(t, ping(context.Background(), stubPinger{}))
}

func TestPing_Error(t *testing.T) {
	err := ping(context.Background(), stubPinger{err: errors.New("connection refused")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
	assert.Contains(t, err.Error(), "connection refused")
}
