package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPusher struct {
	key    string
	values []interface{}
	err    error
}

func (s *stubPusher) LPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	s.key = key
	s.values = values
	return redis.NewIntResult(int64(len(values)), s.err)
}

func TestRedisEventPublisher_Publish(t *testing.T) {
	stub := &stubPusher{}
	publisher := NewRedisEventPublisher(stub)
	event := IssueEvent{
		Type:      EventIssueCreated,
		Issue:     &models.Issue{ID: 12345, Title: "T", UserID: "uid"},
		Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))
	assert.Equal(t, eventQueueKey, stub.key)
	require.Len(t, stub.values, 1)

	var decoded IssueEvent
	require.NoError(t, json.Unmarshal(stub.values[0].([]byte), &decoded))
	assert.Equal(t, EventIssueCreated, decoded.Type)
	assert.Equal(t, "uid", decoded.Issue.UserID)
	assert.True(t, event.Timestamp.Equal(decoded.Timestamp))
}

func TestRedisEventPublisher_RedisError(t *testing.T) {
	publisher := NewRedisEventPublisher(&stubPusher{err: errors.New("connection refused")})

	err := publisher.Publish(context.Background(), IssueEvent{Type: EventIssueCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), IssueEvent{}))
}
