package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisSink publishes events as JSON on a Redis channel.
type RedisSink struct {
	rdb     *redis.Client
	channel string
}

func NewRedisSink(rdb *redis.Client, channel string) *RedisSink {
	return &RedisSink{rdb: rdb, channel: channel}
}

func (s *RedisSink) Write(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling audit event: %w", err)
	}

	if err := s.rdb.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("publishing audit event: %w", err)
	}

	return nil
}

// LogSink writes events to the structured log.
type LogSink struct{}

func (LogSink) Write(_ context.Context, e Event) error {
	slog.Info("audit",
		"actor", e.Actor,
		"action", e.Action,
		"entity_type", e.EntityType,
		"entity_id", e.EntityID,
		"status", e.Status,
		"timestamp", e.Timestamp,
	)

	return nil
}
