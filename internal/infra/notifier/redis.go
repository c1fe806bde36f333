// Package notifier publishes capacity changes to external observers over
// Redis pub/sub. Everything here is best-effort: a lost notification costs
// a UI refresh, never a transaction.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"swim-academy-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type capacityEvent struct {
	LessonID  uuid.UUID `json:"lesson_id"`
	Remaining int       `json:"remaining"`
	Closed    bool      `json:"closed"`
	At        time.Time `json:"at"`
}

type RedisCapacityNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisCapacityNotifier(client *redis.Client, cfg config.RedisConfig) *RedisCapacityNotifier {
	return &RedisCapacityNotifier{
		client:  client,
		channel: cfg.CapacityChannel,
	}
}

func (n *RedisCapacityNotifier) LessonCapacityChanged(ctx context.Context, lessonID uuid.UUID, remaining int, closed bool) {
	payload, err := json.Marshal(capacityEvent{
		LessonID:  lessonID,
		Remaining: remaining,
		Closed:    closed,
		At:        time.Now(),
	})
	if err != nil {
		slog.Warn("failed to encode capacity event", "lesson_id", lessonID, "error", err)
		return
	}

	// Bounded so a slow Redis cannot stall the request path.
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		slog.Warn("failed to publish capacity event",
			"lesson_id", lessonID, "channel", n.channel, "error", err)
	}
}

// NewRedisClient builds and verifies the shared Redis connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}
