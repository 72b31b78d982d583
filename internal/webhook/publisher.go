package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_gateway/internal/models"
)

const (
	eventQueueKey = "issue_events"

	EventIssueCreated = "issue.created"
)

// IssueEvent - событие, отправляемое подписчикам вебхука
type IssueEvent struct {
	Type      string        `json:"type"`
	Issue     *models.Issue `json:"issue"`
	Timestamp time.Time     `json:"timestamp"`
}

// IssueEventPublisher - интерфейс для публикации событий
type IssueEventPublisher interface {
	Publish(ctx context.Context, event IssueEvent) error
}

// listPusher - часть *redis.Client, нужная издателю
type listPusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisEventPublisher - реализация IssueEventPublisher поверх списка Redis
type RedisEventPublisher struct {
	redisClient listPusher
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client listPusher) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди, воркер забирает справа
func (p *RedisEventPublisher) Publish(ctx context.Context, event IssueEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal issue event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish issue event to Redis: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда Redis не настроен
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, IssueEvent) error {
	return nil
}
