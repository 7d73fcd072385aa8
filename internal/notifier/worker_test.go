package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	if cfg.WebhookMaxRetries == 0 {
		cfg.WebhookMaxRetries = 3
	}
	if cfg.WebhookBaseDelay == 0 {
		cfg.WebhookBaseDelay = time.Millisecond
	}

	return NewWorker(nil, logger, cfg, observability.NewMetricsForTesting())
}

func sampleEvent() (AlertEvent, string) {
	event := AlertEvent{
		EventID:    uuid.New(),
		UserID:     1,
		RiskZoneID: 7,
		RiskLevel:  0.85,
		Message:    "High fire risk detected in Siberian Taiga. Risk level: 0.85",
		Timestamp:  time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestDeliver_Success(t *testing.T) {
	var received atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		var event AlertEvent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, int64(1), event.UserID)
		assert.Equal(t, int64(7), event.RiskZoneID)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{WebhookURL: server.URL})
	event, payload := sampleEvent()

	worker.deliver(context.Background(), event, payload)

	assert.Equal(t, int32(1), received.Load())
}

func TestDeliver_SignsPayloadWhenSecretSet(t *testing.T) {
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:    server.URL,
		WebhookSecret: "hook-secret",
	})
	event, payload := sampleEvent()

	worker.deliver(context.Background(), event, payload)

	require.NotEmpty(t, gotSignature)
	assert.Equal(t, generateHMACSHA256(payload, "hook-secret"), gotSignature)
}

func TestDeliver_NoSignatureWithoutSecret(t *testing.T) {
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{WebhookURL: server.URL})
	event, payload := sampleEvent()

	worker.deliver(context.Background(), event, payload)

	assert.Empty(t, gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookMaxRetries: 5,
	})
	event, payload := sampleEvent()

	worker.deliver(context.Background(), event, payload)

	assert.Equal(t, int32(3), attempts.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(t, &config.Config{
		WebhookURL:        server.URL,
		WebhookMaxRetries: 3,
	})
	event, payload := sampleEvent()

	worker.deliver(context.Background(), event, payload)

	assert.Equal(t, int32(3), attempts.Load())
}

func TestDeliver_SkipsWithoutWebhookURL(t *testing.T) {
	worker := newTestWorker(t, &config.Config{})
	event, payload := sampleEvent()

	// No URL configured: the event is dropped without an outbound request.
	worker.deliver(context.Background(), event, payload)
}
