package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-priority/internal/observability"
)

// Publisher is the subset of the go-redis client used by the relay.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisRelay forwards domain events to a Redis pub/sub channel as JSON.
type RedisRelay struct {
	client  Publisher
	channel string
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewRedisRelay builds a relay. metrics may be nil.
func NewRedisRelay(client Publisher, channel string, logger *zap.Logger, metrics *observability.Metrics) *RedisRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisRelay{client: client, channel: channel, logger: logger, metrics: metrics}
}

// Relay publishes one event.
func (r *RedisRelay) Relay(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		r.metrics.RecordEventRelay(string(event.Type), false)
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}
	receivers, err := r.client.Publish(ctx, r.channel, body).Result()
	r.metrics.RecordEventRelay(string(event.Type), err == nil)
	if err != nil {
		return fmt.Errorf("publish event %s to %s: %w", event.ID, r.channel, err)
	}
	r.logger.Debug("event relayed",
		zap.String("event_id", event.ID),
		zap.String("channel", r.channel),
		zap.Int64("receivers", receivers),
	)
	return nil
}
