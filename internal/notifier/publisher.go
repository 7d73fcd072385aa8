package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_risk_service/internal/observability"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent is the payload queued for downstream delivery when an alert
// record is created.
type AlertEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	UserID     int64     `json:"user_id"`
	RiskZoneID int64     `json:"risk_zone_id"`
	RiskLevel  float64   `json:"risk_level"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// AlertPublisher queues alert events for the delivery worker.
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher is an AlertPublisher backed by a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
	metrics     *observability.Metrics
}

// NewRedisAlertPublisher creates a new RedisAlertPublisher.
func NewRedisAlertPublisher(client *redis.Client, metrics *observability.Metrics) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
		metrics:     metrics,
	}
}

// Publish pushes an alert event onto the queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH pairs with the worker's BRPOP so events are delivered in order.
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	p.metrics.AlertEventsQueued.Inc()
	return nil
}
