package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_gateway/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// queueReader - часть *redis.Client, нужная воркеру
type queueReader interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// Worker забирает события из очереди Redis и доставляет их на WEBHOOK_URL
type Worker struct {
	redisClient queueReader
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient queueReader, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди; done закрывается после остановки
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting webhook worker...")

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}

			// 0 - бесконечное ожидание, выход по отмене контекста
			result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop issue event from Redis")
				sleepCtx(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			if len(result) < 2 {
				continue
			}
			w.handle(ctx, result[1])
		}
	}()

	return done
}

func (w *Worker) handle(ctx context.Context, payload string) {
	var event IssueEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal issue event from Redis")
		return
	}

	log := w.logger.WithField("event_type", event.Type)
	if event.Issue != nil {
		log = log.WithField("event_user_id", event.Issue.UserID)
	}

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	if err := w.deliver(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to deliver webhook")
		return
	}
	log.Info("Webhook delivered successfully.")
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *Worker) deliver(ctx context.Context, payload string) error {
	delay := w.cfg.WebhookBaseDelay
	var lastErr error

	for attempt := 1; attempt <= w.cfg.WebhookMaxRetries; attempt++ {
		lastErr = w.send(ctx, payload)
		if lastErr == nil {
			return nil
		}

		if attempt == w.cfg.WebhookMaxRetries {
			break
		}
		w.logger.WithError(lastErr).Warnf("Webhook attempt %d failed. Retrying in %v", attempt, delay)
		if !sleepCtx(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	return fmt.Errorf("webhook delivery failed after %d attempts: %w", w.cfg.WebhookMaxRetries, lastErr)
}

func (w *Worker) send(ctx context.Context, payload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint responded with status %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// sleepCtx ждет d или отмены контекста; false, если контекст отменен
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
