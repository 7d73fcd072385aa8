package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/observability"
	"github.com/sirupsen/logrus"
)

// Worker drains the alert event queue and delivers events to the configured
// webhook endpoint. Email/SMS delivery is out of scope; the webhook is the
// only outbound channel.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *observability.Metrics
	httpClient  *http.Client
}

// NewWorker creates a new delivery Worker.
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		metrics:     metrics,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start runs the queue-draining goroutine until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert delivery worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert delivery worker.")
				return
			default:
				// 0 means block until an event arrives.
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] is the key, result[1] the payload.
				payload := result[1]
				var event AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event AlertEvent, rawPayload string) {
	log := w.logger.WithField("event_id", event.EventID).WithField("user_id", event.UserID)
	log.Debug("Delivering alert event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		if w.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send alert webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Alert webhook delivered successfully.")
			w.metrics.AlertEventsDelivered.WithLabelValues("success").Inc()
			return
		}
		log.Warnf("Alert webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	w.metrics.AlertEventsDelivered.WithLabelValues("failure").Inc()
	log.Errorf("Failed to deliver alert webhook after %d retries.", maxRetries)
}

// generateHMACSHA256 signs the payload so receivers can verify origin.
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
