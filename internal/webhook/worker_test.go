package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_gateway/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQueue отдает заранее заданные payload, затем блокируется до отмены контекста
type stubQueue struct {
	payloads chan string
}

func (s *stubQueue) BRPop(ctx context.Context, _ time.Duration, keys ...string) *redis.StringSliceCmd {
	select {
	case payload := <-s.payloads:
		return redis.NewStringSliceResult([]string{keys[0], payload}, nil)
	case <-ctx.Done():
		return redis.NewStringSliceResult(nil, ctx.Err())
	}
}

func newTestWorker(cfg *config.Config, queue queueReader) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWorker(queue, logger, cfg)
}

func TestWorker_DeliverSignsPayload(t *testing.T) {
	payload := `{"type":"issue.created"}`
	var gotBody, gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	}, nil)

	require.NoError(t, w.deliver(context.Background(), payload))
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestWorker_DeliverRetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)

	require.NoError(t, w.deliver(context.Background(), "{}"))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWorker_DeliverGivesUp(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}, nil)

	err := w.deliver(context.Background(), "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWorker_StartDeliversQueuedEvent(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	queue := &stubQueue{payloads: make(chan string, 1)}
	payload := `{"type":"issue.created","issue":{"id":12345,"user_id":"uid"}}`
	queue.payloads <- payload

	w := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
	}, queue)

	ctx, cancel := context.WithCancel(context.Background())
	done := w.Start(ctx)

	select {
	case body := <-received:
		assert.Equal(t, payload, body)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorker_SkipsWithoutURL(t *testing.T) {
	w := newTestWorker(&config.Config{WebhookMaxRetries: 1}, nil)

	// Без URL и с битым payload воркер не должен паниковать
	w.handle(context.Background(), `{"type":"issue.created"}`)
	w.handle(context.Background(), `not json`)
}
